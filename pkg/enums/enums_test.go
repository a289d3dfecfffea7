package enums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintechmx/validations/pkg/enums"
)

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, enums.EntryTypeCredit.Valid())
	assert.True(t, enums.EntryTypeDebit.Valid())
	assert.True(t, enums.EntryTypeCommission.Valid())
	assert.False(t, enums.EntryType("refund").Valid())

	assert.True(t, enums.TransactionSucceeded.Valid())
	assert.False(t, enums.TransactionStatus("done").Valid())

	assert.True(t, enums.CardActive.Valid())
	assert.False(t, enums.CardStatus("lost").Valid())

	assert.True(t, enums.CardPhysical.Valid())
	assert.False(t, enums.CardType("metal").Valid())

	assert.True(t, enums.TransferSpei.Valid())
	assert.False(t, enums.TransferNetwork("swift").Valid())

	assert.True(t, enums.DepositCash.Valid())
	assert.False(t, enums.DepositNetwork("wire").Valid())
}

func TestEnumValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "credit", enums.EntryTypeCredit.EnumValue())
	assert.Equal(t, "succeeded", enums.TransactionSucceeded.EnumValue())
	assert.Equal(t, "active", enums.CardActive.EnumValue())
	assert.Equal(t, "virtual", enums.CardVirtual.EnumValue())
	assert.Equal(t, "spei", enums.TransferSpei.EnumValue())
	assert.Equal(t, "cash", enums.DepositCash.EnumValue())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "debit", enums.EntryTypeDebit.String())
	assert.Equal(t, "in_review", enums.TransactionInReview.String())
}
