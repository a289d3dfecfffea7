// Package identifier generates the prefixed opaque IDs used across resource
// collections: a two-letter type prefix followed by a 22-character URL-safe
// base64 rendering of a random UUID.
//
//	newTransferID := identifier.NewGenerator("TR")
//	id := newTransferID() // "TR" + 22 random characters
//
// The two-letter prefix doubles as the dispatch key the resource package
// uses to resolve an ID back to its entity type.
package identifier
