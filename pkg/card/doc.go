// Package card validates payment-card numbers and resolves their issuing
// bank.
//
// Validation is a staged pipeline: character class, length, Luhn checksum,
// brand detection, BIN lookup. Each stage fails with its own error so a
// caller can tell "this is not a card number" (ErrNotDigits, ErrInvalidLength,
// ErrLuhnChecksum) apart from "this is a card number whose bank we do not
// know" (*BINError). The stages are composed by Parse; ParseStrict runs the
// same pipeline and additionally requires the BIN to be present in the
// registry.
//
//	cn, err := card.Parse("4772130000000003")
//	if err != nil {
//	    // malformed input
//	}
//	cn.BIN()    // "477213"
//	cn.Last4()  // "0003"
//	cn.Masked() // "477213******0003"
//
// The default registry covers Mexican debit BINs; deployments with their own
// table can load one from YAML or build one in code and pass it through
// WithRegistry. Brand detection ships with Visa and Mastercard rules and
// accepts custom rule sets through WithBrandRules.
//
// CardNumber values are immutable and the registries are read-only after
// construction, so everything here is safe for concurrent use.
package card
