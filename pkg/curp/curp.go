package curp

import (
	"regexp"
	"strconv"
	"time"
)

// MinimumAge is the account-opening age requirement.
const MinimumAge = 18

var curpRegex = regexp.MustCompile(`^[A-Z]{4}[0-9]{6}[A-Z]{6}[A-Z0-9][0-9]$`)

// CURP is a validated CURP identifier. Construct one with Parse.
type CURP string

// Parse validates that raw is exactly 18 characters matching the CURP
// structure. It does not verify the check digit against the holder's name;
// that verification belongs to the national registry, not this library.
func Parse(raw string) (CURP, error) {
	if len(raw) != 18 || !curpRegex.MatchString(raw) {
		return "", ErrInvalidFormat
	}
	return CURP(raw), nil
}

func (c CURP) String() string { return string(c) }

// BirthDate decodes the YYMMDD birth date. The century is resolved against
// reference: an encoded year greater than reference's two-digit year is 19xx,
// otherwise 20xx. See the package documentation for the limits of this
// heuristic.
func (c CURP) BirthDate(reference time.Time) (time.Time, error) {
	encoded := string(c)[4:10]
	yy, _ := strconv.Atoi(encoded[:2])
	month, _ := strconv.Atoi(encoded[2:4])
	day, _ := strconv.Atoi(encoded[4:6])

	year := 2000 + yy
	if yy > reference.Year()%100 {
		year = 1900 + yy
	}

	// time.Date normalizes out-of-range components (e.g. Feb 30 becomes
	// Mar 1), so a round-trip mismatch means the encoded date is not real.
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || birth.Month() != time.Month(month) || birth.Day() != day {
		return time.Time{}, ErrInvalidBirthDate
	}
	return birth, nil
}

// ValidateAge decodes the birth date and checks the age requirement against
// reference.
func (c CURP) ValidateAge(reference time.Time, minYears int) error {
	birth, err := c.BirthDate(reference)
	if err != nil {
		return err
	}
	return ValidateAgeRequirement(birth, reference, minYears)
}

// Years returns the number of whole calendar years between birthDate and
// reference, adjusting for whether the birthday has occurred in reference's
// year.
func Years(birthDate, reference time.Time) int {
	years := reference.Year() - birthDate.Year()
	if reference.Month() < birthDate.Month() ||
		(reference.Month() == birthDate.Month() && reference.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// ValidateAgeRequirement checks that birthDate is at least minYears before
// reference, failing with *AgeError otherwise. A birthday falling exactly on
// reference passes.
func ValidateAgeRequirement(birthDate, reference time.Time, minYears int) error {
	years := Years(birthDate, reference)
	if years < minYears {
		return &AgeError{BirthDate: birthDate, MinimumYears: minYears, Years: years}
	}
	return nil
}
