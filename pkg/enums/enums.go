package enums

// EntryType classifies a ledger entry as money in or money out. Commission is
// a separate category because commission entries resolve related transactions
// through their own prefix table.
type EntryType string

const (
	EntryTypeCredit     EntryType = "credit"
	EntryTypeDebit      EntryType = "debit"
	EntryTypeCommission EntryType = "commission"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeCredit, EntryTypeDebit, EntryTypeCommission:
		return true
	}
	return false
}

// EnumValue returns the underlying scalar for serialization.
func (t EntryType) EnumValue() any { return string(t) }

func (t EntryType) String() string { return string(t) }

// TransactionStatus is the lifecycle state of a money movement.
type TransactionStatus string

const (
	TransactionCreated   TransactionStatus = "created"
	TransactionSubmitted TransactionStatus = "submitted"
	TransactionInReview  TransactionStatus = "in_review"
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionCreated, TransactionSubmitted, TransactionInReview,
		TransactionSucceeded, TransactionFailed:
		return true
	}
	return false
}

func (s TransactionStatus) EnumValue() any { return string(s) }

func (s TransactionStatus) String() string { return string(s) }

// CardStatus is the lifecycle state of a payment card.
type CardStatus string

const (
	CardCreated     CardStatus = "created"
	CardPrinting    CardStatus = "printing"
	CardActive      CardStatus = "active"
	CardBlocked     CardStatus = "blocked"
	CardDeactivated CardStatus = "deactivated"
)

func (s CardStatus) Valid() bool {
	switch s {
	case CardCreated, CardPrinting, CardActive, CardBlocked, CardDeactivated:
		return true
	}
	return false
}

func (s CardStatus) EnumValue() any { return string(s) }

func (s CardStatus) String() string { return string(s) }

// CardType distinguishes physical plastic from virtual cards.
type CardType string

const (
	CardPhysical CardType = "physical"
	CardVirtual  CardType = "virtual"
)

func (t CardType) Valid() bool {
	return t == CardPhysical || t == CardVirtual
}

func (t CardType) EnumValue() any { return string(t) }

func (t CardType) String() string { return string(t) }

// TransferNetwork identifies the rail an outgoing transfer rides on.
type TransferNetwork string

const (
	TransferInternal TransferNetwork = "internal"
	TransferSpei     TransferNetwork = "spei"
)

func (n TransferNetwork) Valid() bool {
	return n == TransferInternal || n == TransferSpei
}

func (n TransferNetwork) EnumValue() any { return string(n) }

func (n TransferNetwork) String() string { return string(n) }

// DepositNetwork identifies how an incoming deposit arrived.
type DepositNetwork string

const (
	DepositCash     DepositNetwork = "cash"
	DepositInternal DepositNetwork = "internal"
	DepositSpei     DepositNetwork = "spei"
)

func (n DepositNetwork) Valid() bool {
	switch n {
	case DepositCash, DepositInternal, DepositSpei:
		return true
	}
	return false
}

func (n DepositNetwork) EnumValue() any { return string(n) }

func (n DepositNetwork) String() string { return string(n) }
