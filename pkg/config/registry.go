package config

import "github.com/fintechmx/validations/pkg/card"

// RegistryConfig points the library at deployment-supplied lookup data.
type RegistryConfig struct {
	// BinTablePath is the YAML file mapping BINs to bank codes. Empty means
	// the built-in table.
	BinTablePath string `env:"CARD_BIN_TABLE_PATH"`

	// MinimumAge is the age requirement in years.
	MinimumAge int `env:"MINIMUM_AGE" envDefault:"18"`
}

// BinRegistry builds the BIN registry this deployment should use: the file
// named by BinTablePath, or the built-in table when none is configured.
func (c RegistryConfig) BinRegistry() (*card.BinRegistry, error) {
	if c.BinTablePath == "" {
		return card.DefaultRegistry(), nil
	}
	return card.LoadRegistryFile(c.BinTablePath)
}
