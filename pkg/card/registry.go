package card

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrInvalidBIN is returned when a registry is built with a key that is not
// exactly six digits.
var ErrInvalidBIN = errors.New("registry key must be exactly six digits")

var binKeyRegex = regexp.MustCompile(`^[0-9]{6}$`)

// BinRegistry maps six-digit bank identification numbers to the issuing
// bank's code. It is immutable after construction and safe to share across
// goroutines without locking.
type BinRegistry struct {
	bins map[string]string
}

// NewRegistry copies bins into a registry, rejecting malformed keys.
func NewRegistry(bins map[string]string) (*BinRegistry, error) {
	copied := make(map[string]string, len(bins))
	for bin, bankCode := range bins {
		if !binKeyRegex.MatchString(bin) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBIN, bin)
		}
		copied[bin] = bankCode
	}
	return &BinRegistry{bins: copied}, nil
}

// LoadRegistryFile reads a YAML mapping of BIN to bank code, the format
// deployments use to supply their own table:
//
//	"477213": "40012"
//	"554629": "40014"
func LoadRegistryFile(path string) (*BinRegistry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bin table: %w", err)
	}
	var bins map[string]string
	if err := yaml.Unmarshal(raw, &bins); err != nil {
		return nil, fmt.Errorf("parse bin table: %w", err)
	}
	return NewRegistry(bins)
}

// BankCode looks up the bank code for a six-digit BIN.
func (r *BinRegistry) BankCode(bin string) (string, bool) {
	bankCode, ok := r.bins[bin]
	return bankCode, ok
}

// Len reports the number of registered BINs.
func (r *BinRegistry) Len() int { return len(r.bins) }

// BINs returns the registered BINs in sorted order.
func (r *BinRegistry) BINs() []string {
	out := make([]string, 0, len(r.bins))
	for bin := range r.bins {
		out = append(out, bin)
	}
	sort.Strings(out)
	return out
}
