package sanitize

import (
	"encoding/base64"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// isoLayout renders the offset as +00:00 rather than Z so timestamps are
// byte-compatible with the ISO-8601 form the upstream API has always emitted.
const isoLayout = "2006-01-02T15:04:05-07:00"

// Enum is implemented by enumeration types that carry an underlying scalar
// value. The sanitizer replaces the enum with that scalar so the wire format
// never depends on Go type names.
type Enum interface {
	EnumValue() any
}

// Representable is implemented by domain objects that know how to render
// themselves as a JSON-safe map. The sanitizer calls ToRepresentation and
// trusts its result; implementations must return only sanitized values.
type Representable interface {
	ToRepresentation() map[string]any
}

// Fallback converts a value the dispatch table does not recognize. Returning
// an error aborts the whole sanitization.
type Fallback func(item any) (any, error)

// Value converts item into a JSON-safe representation. The dispatch order is
// documented on the package; fallback may be nil, in which case unrecognized
// types fail with *UnsupportedTypeError.
func Value(item any, fallback Fallback) (any, error) {
	if item == nil {
		return nil, nil
	}

	switch v := item.(type) {
	case time.Time:
		return v.UTC().Format(isoLayout), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(v), nil
	case decimal.Decimal:
		return v.String(), nil
	}

	// Interface checks come before reflection so named scalar types that opt
	// into Enum or Representable are not misclassified as plain primitives.
	if e, ok := item.(Enum); ok {
		return e.EnumValue(), nil
	}
	if r, ok := item.(Representable); ok {
		return r.ToRepresentation(), nil
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			sanitized, err := Value(rv.Index(i).Interface(), fallback)
			if err != nil {
				return nil, err
			}
			out[i] = sanitized
		}
		return out, nil
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok {
				if iter.Key().Kind() == reflect.String {
					key = iter.Key().String()
				} else {
					return nil, ErrNonStringKey
				}
			}
			sanitized, err := Value(iter.Value().Interface(), fallback)
			if err != nil {
				return nil, err
			}
			out[key] = sanitized
		}
		return out, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Value(rv.Elem().Interface(), fallback)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return item, nil
	}

	if fallback != nil {
		return fallback(item)
	}
	return nil, &UnsupportedTypeError{Type: reflect.TypeOf(item)}
}

// Map sanitizes every value of d in place and returns d. Keys are untouched.
func Map(d map[string]any) (map[string]any, error) {
	return MapWith(d, nil)
}

// MapWith is Map with a fallback hook for types outside the dispatch table.
func MapWith(d map[string]any, fallback Fallback) (map[string]any, error) {
	for k, v := range d {
		sanitized, err := Value(v, fallback)
		if err != nil {
			return nil, err
		}
		d[k] = sanitized
	}
	return d, nil
}
