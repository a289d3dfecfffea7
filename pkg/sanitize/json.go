package sanitize

import "encoding/json"

// Marshal sanitizes v and encodes the result as JSON. It is the drop-in
// replacement for json.Marshal on response-body paths: dates, byte blobs,
// decimals and enums come out in their wire form instead of Go's defaults.
func Marshal(v any) ([]byte, error) {
	return MarshalWith(v, nil)
}

// MarshalWith is Marshal with a fallback hook for types outside the dispatch
// table.
func MarshalWith(v any, fallback Fallback) ([]byte, error) {
	sanitized, err := Value(v, fallback)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sanitized)
}
