package curp

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidFormat is returned when the input does not match the CURP
	// structure: 4 letters, 6 digits, 6 letters, 1 letter or digit, 1 digit.
	ErrInvalidFormat = errors.New("invalid CURP format")

	// ErrInvalidBirthDate is returned when the six digits encoding the birth
	// date do not form a real calendar date.
	ErrInvalidBirthDate = errors.New("CURP encodes an invalid birth date")

	// ErrAgeRequirement is returned when the holder does not meet the
	// minimum age. Use errors.As to recover the *AgeError details.
	ErrAgeRequirement = errors.New("user does not meet age requirement")
)

// AgeError reports a failed age-requirement check. It unwraps to
// ErrAgeRequirement.
type AgeError struct {
	BirthDate    time.Time
	MinimumYears int
	Years        int
}

func (e *AgeError) Error() string {
	return fmt.Sprintf("user does not meet age requirement: %d of %d years", e.Years, e.MinimumYears)
}

func (e *AgeError) Unwrap() error { return ErrAgeRequirement }
