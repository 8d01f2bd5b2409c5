package mapper

import (
	"testing"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWalletMapperScalesBalancesOnce(t *testing.T) {
	m := NewWalletMapper()

	e := &entity.Wallet{
		Id:            uuid.New(),
		AccountId:     "ACCT-0001",
		Currency:      entity.CurrencyNGN,
		Balance:       150.00,
		LedgerBalance: 175.25,
		Status:        entity.WalletStatusActive,
	}

	stored := m.ToModel(e)
	assert.Equal(t, int64(15000), stored.Balance)
	assert.Equal(t, int64(17525), stored.LedgerBalance)

	back := m.ToEntity(stored)
	assert.Equal(t, 150.00, back.Balance)
	assert.Equal(t, 175.25, back.LedgerBalance)
	assert.Equal(t, e.AccountId, back.AccountId)
	assert.Equal(t, e.Currency, back.Currency)
}

func TestWalletMapperNil(t *testing.T) {
	m := NewWalletMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestHistoryMapperScalesAmounts(t *testing.T) {
	m := NewWalletMapper()

	stored := &model.WalletHistory{
		Id:            uuid.New(),
		Direction:     "CREDIT",
		Amount:        500000,
		BalanceBefore: 2075050,
		BalanceAfter:  2575050,
	}

	e := m.HistoryToEntity(stored)
	assert.Equal(t, 5000.00, e.Amount)
	assert.Equal(t, 20750.50, e.BalanceBefore)
	assert.Equal(t, 25750.50, e.BalanceAfter)
	assert.Equal(t, entity.DirectionCredit, e.Direction)

	back := m.HistoryToModel(e)
	assert.Equal(t, stored.Amount, back.Amount)
	assert.Equal(t, stored.BalanceBefore, back.BalanceBefore)
	assert.Equal(t, stored.BalanceAfter, back.BalanceAfter)
}
