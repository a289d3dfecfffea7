package identifier

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// EncodedLen is the length of the random part of an ID: 16 UUID bytes in
// unpadded URL-safe base64.
const EncodedLen = 22

// New returns a fresh ID with the given prefix.
func New(prefix string) string {
	id := uuid.New()
	return prefix + base64.RawURLEncoding.EncodeToString(id[:])
}

// NewGenerator returns a function producing fresh IDs with the given prefix.
// Useful as a default-value hook on model fields.
func NewGenerator(prefix string) func() string {
	return func() string {
		return New(prefix)
	}
}

// Prefix returns the leading two characters of id, the dispatch key shared
// with the resource package. IDs shorter than two characters are returned
// unchanged.
func Prefix(id string) string {
	if len(id) <= 2 {
		return id
	}
	return id[:2]
}
