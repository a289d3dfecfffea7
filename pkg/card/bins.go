package card

import "sync"

// defaultBins is the built-in table of Mexican debit BINs. Bank codes are the
// SPEI institution codes used for interbank routing. The table is extended on
// request; see the message carried by *BINError.
var defaultBins = map[string]string{
	// Citibanamex
	"402766": "40002",
	"407843": "40002",
	"545660": "40002",
	// BBVA
	"455500": "40012",
	"455504": "40012",
	"455529": "40012",
	"477212": "40012",
	"477213": "40012",
	"493160": "40012",
	// Santander
	"546378": "40014",
	"554629": "40014",
	// HSBC
	"421394": "40021",
	"515599": "40021",
	// Inbursa
	"466937": "40036",
	// Scotiabank
	"404577": "40044",
	"410180": "40044",
	// Banregio
	"491316": "40058",
	// Banorte
	"487339": "40072",
	"491580": "40072",
	// Banco Azteca
	"535875": "40127",
	// BanCoppel
	"506273": "40137",
	// STP
	"646180": "90646",
}

var (
	defaultRegistry     *BinRegistry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the built-in BIN table. The registry is built once
// and shared; it is never mutated.
func DefaultRegistry() *BinRegistry {
	defaultRegistryOnce.Do(func() {
		registry, err := NewRegistry(defaultBins)
		if err != nil {
			panic("card: built-in bin table is malformed: " + err.Error())
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}
