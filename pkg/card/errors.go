package card

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDigits is returned when the card number contains anything other
	// than ASCII digits.
	ErrNotDigits = errors.New("card number must contain only digits")

	// ErrInvalidLength is returned when the card number does not have the
	// expected number of digits.
	ErrInvalidLength = errors.New("card number has invalid length")

	// ErrLuhnChecksum is returned when the card number fails Luhn checksum
	// verification.
	ErrLuhnChecksum = errors.New("card number failed checksum verification")

	// ErrUnknownBIN is returned by ParseStrict when the BIN has no known
	// bank association. Use errors.As to recover the *BINError details.
	ErrUnknownBIN = errors.New("card number BIN has no known bank association")
)

// BINErrorCode is the stable machine-readable code carried by *BINError.
// Client tooling matches on it to distinguish "this bank is not onboarded"
// from "this is not a card number".
const BINErrorCode = "payment_card_number.bin"

// BINError reports a structurally valid card number whose BIN is missing
// from the registry. It unwraps to ErrUnknownBIN.
type BINError struct {
	BIN string
}

func (e *BINError) Error() string {
	return fmt.Sprintf(
		"card number contains a BIN (%s) that does not have a known association with a Mexican bank; "+
			"to add the association, please file an issue: https://github.com/fintechmx/validations/issues",
		e.BIN,
	)
}

// Code returns BINErrorCode.
func (e *BINError) Code() string { return BINErrorCode }

func (e *BINError) Unwrap() error { return ErrUnknownBIN }
