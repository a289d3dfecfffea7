// Package enums defines the shared enumerations used across the validation
// toolkit: entry types, transaction statuses, card attributes and transfer
// networks.
//
// Every enumeration is a string-typed constant set with a Valid method, so a
// value arriving from the wire can be checked before use:
//
//	status := enums.TransactionStatus(raw)
//	if !status.Valid() {
//	    // reject the field
//	}
//
// All types also expose EnumValue, which returns the underlying scalar and
// makes them safe to pass through the sanitize package without leaking Go
// type names into serialized payloads.
//
// The package has no state and no dependencies; values are plain strings and
// may be compared, mapped and shared freely between goroutines.
package enums
