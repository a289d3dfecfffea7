package card

import "strconv"

// Brand is the card scheme derived from the number's leading digits.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandUnknown    Brand = "unknown"
)

func (b Brand) String() string { return string(b) }

// EnumValue returns the underlying scalar for serialization.
func (b Brand) EnumValue() any { return string(b) }

// PrefixRange is an inclusive numeric range of leading digits. The width of
// High determines how many digits are compared, so {Low: 2221, High: 2720}
// matches on the first four digits.
type PrefixRange struct {
	Low  int
	High int
}

// BrandRule matches a brand by prefix ranges and permitted lengths. Rules are
// evaluated in order; the first match wins.
type BrandRule struct {
	Brand   Brand
	Ranges  []PrefixRange
	Lengths []int
}

// DefaultBrandRules returns the rules for the two schemes issued on the
// platform. Callers with wider acceptance pass their own set through
// WithBrandRules.
func DefaultBrandRules() []BrandRule {
	return []BrandRule{
		{
			Brand:   BrandVisa,
			Ranges:  []PrefixRange{{Low: 4, High: 4}},
			Lengths: []int{16},
		},
		{
			Brand:   BrandMastercard,
			Ranges:  []PrefixRange{{Low: 51, High: 55}, {Low: 2221, High: 2720}},
			Lengths: []int{16},
		},
	}
}

func brandOf(number string, rules []BrandRule) Brand {
	for _, rule := range rules {
		if !containsInt(rule.Lengths, len(number)) {
			continue
		}
		for _, r := range rule.Ranges {
			width := len(strconv.Itoa(r.High))
			if len(number) < width {
				continue
			}
			prefix, err := strconv.Atoi(number[:width])
			if err != nil {
				continue
			}
			if prefix >= r.Low && prefix <= r.High {
				return rule.Brand
			}
		}
	}
	return BrandUnknown
}

func containsInt(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
