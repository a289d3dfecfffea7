package sanitize

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedType is returned when a value cannot be converted to a
// JSON-safe representation and no fallback hook was supplied.
var ErrUnsupportedType = errors.New("value cannot be sanitized")

// UnsupportedTypeError reports the concrete type that could not be converted.
// It unwraps to ErrUnsupportedType for errors.Is checks.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("sanitize: unsupported type %s", e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// ErrNonStringKey is returned when a map with non-string keys reaches the
// sanitizer; JSON objects require string keys.
var ErrNonStringKey = errors.New("map key is not a string")
