package resource

import "github.com/fintechmx/validations/pkg/enums"

// DefaultCollections returns the collection→entity table for the production
// resource layout. The map is freshly allocated on each call so callers may
// extend their copy safely.
func DefaultCollections() map[string]string {
	return map[string]string{
		"bill_payments":      "BillPayment",
		"card_transactions":  "CardTransaction",
		"commissions":        "Commission",
		"deposits":           "Deposit",
		"transfers":          "Transfer",
		"whatsapp_transfers": "WhatsappTransfer",
	}
}

// DefaultCategories returns the entry-type scoped prefix table. Deposits and
// transfers share the TR/SP/LT prefixes, which is exactly why resolution is
// scoped to a category: the same ID prefix is a Deposit when it credits the
// account and a Transfer when it debits it.
func DefaultCategories() CategoryTable {
	return CategoryTable{
		enums.EntryTypeCredit: {
			"Deposit":         {"TR", "SP", "LT", "CD"},
			"CardTransaction": {"CT"},
		},
		enums.EntryTypeDebit: {
			"BillPayment":      {"ST"},
			"Transfer":         {"TR", "SP", "LT"},
			"WhatsappTransfer": {"SW"},
			"Commission":       {"CO"},
			"CardTransaction":  {"CT"},
		},
		enums.EntryTypeCommission: {
			"Deposit":  {"TR", "SP", "LT", "CD"},
			"Transfer": {"TR", "SP", "LT"},
		},
	}
}
