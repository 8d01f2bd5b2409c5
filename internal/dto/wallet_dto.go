package dto

import (
	"time"

	"github.com/google/uuid"
)

type WalletResponse struct {
	Id            uuid.UUID `json:"id"`
	UserId        string    `json:"user_id"`
	AccountId     string    `json:"account_id"`
	Currency      string    `json:"currency"`
	Balance       float64   `json:"balance"`
	LedgerBalance float64   `json:"ledger_balance"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WalletHistoryResponse struct {
	Id            uuid.UUID `json:"id"`
	WalletId      string    `json:"wallet_id"`
	UserId        string    `json:"user_id"`
	TransactionId string    `json:"transaction_id"`
	Direction     string    `json:"direction"`
	Amount        float64   `json:"amount"`
	BalanceBefore float64   `json:"balance_before"`
	BalanceAfter  float64   `json:"balance_after"`
	Narration     string    `json:"narration"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
