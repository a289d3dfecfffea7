package card

import "strings"

// Length is the expected number of digits for cards issued on the platform.
const Length = 16

// CardNumber is a validated payment-card number. Construct one with Parse;
// the zero value is not valid.
type CardNumber struct {
	number   string
	brand    Brand
	bankCode string
	hasBank  bool
}

// StrictCardNumber is a CardNumber whose BIN is guaranteed to resolve to a
// bank code. Construct one with ParseStrict.
type StrictCardNumber struct {
	CardNumber
}

type options struct {
	length   int
	rules    []BrandRule
	registry *BinRegistry
}

// Option adjusts the validation pipeline.
type Option func(*options)

// WithLength overrides the expected digit count.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithBrandRules replaces the brand detection rule set.
func WithBrandRules(rules ...BrandRule) Option {
	return func(o *options) { o.rules = rules }
}

// WithRegistry replaces the BIN registry used for bank lookup.
func WithRegistry(r *BinRegistry) Option {
	return func(o *options) { o.registry = r }
}

func defaultOptions() *options {
	return &options{
		length:   Length,
		rules:    DefaultBrandRules(),
		registry: DefaultRegistry(),
	}
}

// Parse validates raw with the default pipeline. Surrounding whitespace is
// stripped; the remainder must be exactly Length digits with a valid Luhn
// checksum. The BIN lookup never fails here, it only decides whether
// BankCode reports a value.
func Parse(raw string) (CardNumber, error) {
	return ParseWith(raw)
}

// ParseWith is Parse with pipeline overrides.
func ParseWith(raw string, opts ...Option) (CardNumber, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	number := strings.TrimSpace(raw)

	// Structural checks run in declaration order; the first failure wins so
	// every rejection maps to exactly one stage.
	checks := []func(string) error{
		checkDigits,
		cfg.checkLength,
		checkLuhn,
	}
	for _, check := range checks {
		if err := check(number); err != nil {
			return CardNumber{}, err
		}
	}

	cn := CardNumber{
		number: number,
		brand:  brandOf(number, cfg.rules),
	}
	cn.bankCode, cn.hasBank = cfg.registry.BankCode(cn.BIN())
	return cn, nil
}

// ParseStrict runs the same pipeline as ParseWith and additionally requires
// the BIN to be present in the registry, failing with *BINError otherwise.
func ParseStrict(raw string, opts ...Option) (StrictCardNumber, error) {
	cn, err := ParseWith(raw, opts...)
	if err != nil {
		return StrictCardNumber{}, err
	}
	if !cn.hasBank {
		return StrictCardNumber{}, &BINError{BIN: cn.BIN()}
	}
	return StrictCardNumber{CardNumber: cn}, nil
}

func checkDigits(number string) error {
	if number == "" {
		return ErrNotDigits
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return ErrNotDigits
		}
	}
	return nil
}

func (o *options) checkLength(number string) error {
	if len(number) != o.length {
		return ErrInvalidLength
	}
	return nil
}

// checkLuhn doubles every second digit from the right, folds two-digit
// results, and requires the sum to be divisible by ten.
func checkLuhn(number string) error {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	if sum%10 != 0 {
		return ErrLuhnChecksum
	}
	return nil
}

// String returns the full card number. Prefer Masked for anything that may
// be logged or displayed.
func (c CardNumber) String() string { return c.number }

// BIN returns the first six digits.
func (c CardNumber) BIN() string { return c.number[:6] }

// Last4 returns the last four digits.
func (c CardNumber) Last4() string { return c.number[len(c.number)-4:] }

// Brand returns the detected card scheme, BrandUnknown if no rule matched.
func (c CardNumber) Brand() Brand { return c.brand }

// BankCode returns the issuing bank's code when the BIN is registered.
func (c CardNumber) BankCode() (string, bool) { return c.bankCode, c.hasBank }

// Masked returns the number with the middle digits hidden, e.g.
// "477213******0003".
func (c CardNumber) Masked() string {
	return c.BIN() + strings.Repeat("*", len(c.number)-10) + c.Last4()
}

// BankCode returns the issuing bank's code, always present for a strict card
// number.
func (c StrictCardNumber) BankCode() string { return c.bankCode }
