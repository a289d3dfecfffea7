// Package resource resolves transaction-resource URIs of the form
// /{collection}/{id} into concrete entity types.
//
//	ref, err := resource.Parse("/deposits/SP0123456789")
//	// ref.Collection == "deposits", ref.ID == "SP0123456789", ref.IDPrefix == "SP"
//
// Two resolution strategies coexist because different callers need them:
//
//   - Entity looks the collection segment up in a collection→entity table.
//     This is the simple case where the collection name is unambiguous.
//
//   - EntityByCategory ignores the collection and dispatches on the first two
//     characters of the ID, scoped to an entry type. This is required where
//     one collection backs several entity types (commissions, for example)
//     and only the ledger direction disambiguates them.
//
// Both return the entity name and a boolean; an unrecognized collection or
// prefix is a validation signal for the caller, not a silent default.
// ParseKnown additionally rejects references whose ID prefix appears in no
// registered prefix list at all, separating "foreign or malformed id" from
// "recognized id, ambiguous category".
//
// The default tables match the production resource layout and are read-only;
// everything in the package is safe for concurrent use.
package resource
