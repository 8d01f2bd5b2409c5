package dto

import (
	"time"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	Id                uuid.UUID `json:"id"`
	UserId            string    `json:"user_id"`
	WalletId          string    `json:"wallet_id"`
	Reference         string    `json:"reference"`
	TransactionType   string    `json:"transaction_type"`
	TransactionStatus string    `json:"transaction_status"`
	Amount            float64   `json:"amount"`
	Fee               float64   `json:"fee"`
	Currency          string    `json:"currency"`
	Narration         string    `json:"narration"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type TransactionEntryResponse struct {
	Id            uuid.UUID `json:"id"`
	TransactionId string    `json:"transaction_id"`
	AccountId     string    `json:"account_id"`
	Direction     string    `json:"direction"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type VendorResponseTrailResponse struct {
	Id             uuid.UUID `json:"id"`
	TransactionId  string    `json:"transaction_id"`
	Vendor         string    `json:"vendor"`
	Reference      string    `json:"reference"`
	StatusCode     string    `json:"status_code"`
	VendorStatus   string    `json:"vendor_status"`
	RequestPayload string    `json:"request_payload"`
	SignatureValid bool      `json:"signature_valid"`
	CreatedAt      time.Time `json:"created_at"`
}
