package resource

import "errors"

var (
	// ErrInvalidURI is returned when the input does not match
	// /{collection}/{id}.
	ErrInvalidURI = errors.New("invalid resource URI format")

	// ErrUnknownIDPrefix is returned by ParseKnown when the ID prefix is not
	// registered under any category.
	ErrUnknownIDPrefix = errors.New("resource ID prefix is not registered")
)
