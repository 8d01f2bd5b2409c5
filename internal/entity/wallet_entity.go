package entity

import (
	"time"

	"github.com/google/uuid"
)

type WalletStatus string
type Currency string

const (
	WalletStatusActive WalletStatus = "ACTIVE"
	WalletStatusFrozen WalletStatus = "FROZEN"
	WalletStatusClosed WalletStatus = "CLOSED"

	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
	CurrencyGHS Currency = "GHS"
	CurrencyKES Currency = "KES"
)

// Wallet balances are display units here; the storage layer keeps them as
// integer minor units.
type Wallet struct {
	Id            uuid.UUID
	UserId        string
	AccountId     string
	Currency      Currency
	Balance       float64
	LedgerBalance float64
	Status        WalletStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type EntryDirection string

const (
	DirectionCredit EntryDirection = "CREDIT"
	DirectionDebit  EntryDirection = "DEBIT"
)

type WalletHistory struct {
	Id            uuid.UUID
	WalletId      string
	UserId        string
	TransactionId string
	Direction     EntryDirection
	Amount        float64
	BalanceBefore float64
	BalanceAfter  float64
	Narration     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
