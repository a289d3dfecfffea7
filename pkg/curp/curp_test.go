package curp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechmx/validations/pkg/curp"
)

const validCURP = "ABCD920313HDFRRN09"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		c, err := curp.Parse(validCURP)
		require.NoError(t, err)
		assert.Equal(t, validCURP, c.String())

		// Last-but-one position may be a digit instead of a letter.
		_, err = curp.Parse("GOMC060112MDFRRL07")
		assert.NoError(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		inputs := []string{
			"",
			"ABCD920313HDFRRN0",    // 17 chars
			"ABCD920313HDFRRN099",  // 19 chars
			"abcd920313HDFRRN09",   // lowercase
			"AB1D920313HDFRRN09",   // digit in name block
			"ABCD9203X3HDFRRN09",   // letter in date block
			"ABCD920313HD4RRN09",   // digit in consonant block
			"ABCD920313HDFRRN0A",   // letter check digit
			"ABCD 20313HDFRRN09",   // space
		}
		for _, input := range inputs {
			_, err := curp.Parse(input)
			assert.ErrorIs(t, err, curp.ErrInvalidFormat, "input %q", input)
		}
	})
}

func TestBirthDate(t *testing.T) {
	t.Parallel()

	reference := date(2022, time.June, 15)

	t.Run("century resolution", func(t *testing.T) {
		tests := []struct {
			encoded string
			want    time.Time
		}{
			// Encoded year above the reference's two-digit year is 19xx.
			{"650210", date(1965, time.February, 10)},
			{"230101", date(1923, time.January, 1)},
			// At or below it is 20xx.
			{"060112", date(2006, time.January, 12)},
			{"220131", date(2022, time.January, 31)},
			{"000229", date(2000, time.February, 29)},
		}
		for _, tt := range tests {
			c, err := curp.Parse("ABCD" + tt.encoded + "HDFRRN09")
			require.NoError(t, err)

			birth, err := c.BirthDate(reference)
			require.NoError(t, err, "encoded %s", tt.encoded)
			assert.Equal(t, tt.want, birth, "encoded %s", tt.encoded)
		}
	})

	t.Run("invalid calendar dates", func(t *testing.T) {
		encoded := []string{
			"921332", // month 13
			"920230", // Feb 30
			"920400", // day 0
			"930229", // 1993 not a leap year
		}
		for _, enc := range encoded {
			c, err := curp.Parse("ABCD" + enc + "HDFRRN09")
			require.NoError(t, err)

			_, err = c.BirthDate(reference)
			assert.ErrorIs(t, err, curp.ErrInvalidBirthDate, "encoded %s", enc)
		}
	})
}

func TestYears(t *testing.T) {
	t.Parallel()

	reference := date(2022, time.January, 1)

	assert.Equal(t, 18, curp.Years(date(2004, time.January, 1), reference))
	assert.Equal(t, 17, curp.Years(date(2004, time.January, 2), reference))
	assert.Equal(t, 17, curp.Years(date(2004, time.February, 1), reference))
	assert.Equal(t, 18, curp.Years(date(2003, time.December, 31), reference))
	assert.Equal(t, 0, curp.Years(date(2021, time.June, 1), reference))
}

func TestValidateAgeRequirement(t *testing.T) {
	t.Parallel()

	reference := date(2022, time.January, 1)

	t.Run("exactly at the boundary passes", func(t *testing.T) {
		err := curp.ValidateAgeRequirement(date(2004, time.January, 1), reference, curp.MinimumAge)
		assert.NoError(t, err)
	})

	t.Run("one day short fails", func(t *testing.T) {
		err := curp.ValidateAgeRequirement(date(2004, time.January, 2), reference, curp.MinimumAge)
		require.Error(t, err)
		assert.ErrorIs(t, err, curp.ErrAgeRequirement)

		var ageErr *curp.AgeError
		require.ErrorAs(t, err, &ageErr)
		assert.Equal(t, 17, ageErr.Years)
		assert.Equal(t, 18, ageErr.MinimumYears)
	})

	t.Run("custom minimum", func(t *testing.T) {
		err := curp.ValidateAgeRequirement(date(2004, time.January, 2), reference, 16)
		assert.NoError(t, err)

		err = curp.ValidateAgeRequirement(date(2010, time.January, 1), reference, 21)
		assert.ErrorIs(t, err, curp.ErrAgeRequirement)
	})
}

func TestValidateAge(t *testing.T) {
	t.Parallel()

	reference := date(2022, time.June, 15)

	t.Run("adult holder", func(t *testing.T) {
		c, err := curp.Parse("ABCD920313HDFRRN09")
		require.NoError(t, err)
		assert.NoError(t, c.ValidateAge(reference, curp.MinimumAge))
	})

	t.Run("underage holder", func(t *testing.T) {
		c, err := curp.Parse("GOMC060112MDFRRL07")
		require.NoError(t, err)

		err = c.ValidateAge(reference, curp.MinimumAge)
		assert.ErrorIs(t, err, curp.ErrAgeRequirement)
	})

	t.Run("invalid encoded date surfaces", func(t *testing.T) {
		c, err := curp.Parse("ABCD920230HDFRRN09")
		require.NoError(t, err)

		err = c.ValidateAge(reference, curp.MinimumAge)
		assert.ErrorIs(t, err, curp.ErrInvalidBirthDate)
	})
}
