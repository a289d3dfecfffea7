// Package sanitize converts arbitrary nested Go values into trees that are
// safe to hand to any JSON encoder or query-string builder: strings, numbers,
// booleans, nil, []any and map[string]any only.
//
// The conversion is a single dispatch table applied depth-first. The order of
// the cases is part of the contract:
//
//  1. time.Time — formatted as an ISO-8601 (RFC 3339) string. Values are
//     normalized to UTC first; a timestamp that was built without an explicit
//     zone is treated as UTC, never as local time.
//  2. []byte — standard base64 string.
//  3. decimal.Decimal — exact decimal string, so monetary amounts never pass
//     through a float.
//  4. Enum — replaced by its underlying scalar value, not its Go name.
//  5. Representable — replaced by the result of ToRepresentation. The result
//     is not re-sanitized; the implementing type is responsible for returning
//     an already-safe structure. Run it through Map again if you do not trust
//     the implementation.
//  6. Slices, arrays and string-keyed maps — rebuilt with every element
//     sanitized recursively.
//  7. Primitives (strings, booleans, integers, floats, nil) — unchanged.
//
// Anything else is routed through the optional Fallback hook. Without a hook
// the value is rejected with *UnsupportedTypeError: silently passing an
// unrepresentable type down a financial serialization path hides bugs, so the
// default is to fail loudly.
//
// Two entry points cover the common callers. Map sanitizes a parameter map in
// place before it is turned into a query string:
//
//	params, err := sanitize.Map(map[string]any{
//	    "created_after": createdAfter, // time.Time
//	    "status":        enums.TransactionSucceeded,
//	})
//
// Marshal is the JSON-encoding entry point and plays the role of an encoder
// default hook, sanitizing the whole value tree before encoding:
//
//	body, err := sanitize.Marshal(payload)
//
// All functions are pure apart from the in-place map mutation and are safe
// for concurrent use.
package sanitize
