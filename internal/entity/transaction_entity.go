package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string
type TransactionStatus string

const (
	TransactionTypeTransfer    TransactionType = "TRANSFER"
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeBillPayment TransactionType = "BILL_PAYMENT"
	TransactionTypeAirtime     TransactionType = "AIRTIME"

	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusSuccessful TransactionStatus = "SUCCESSFUL"
	TransactionStatusFailed     TransactionStatus = "FAILED"
	TransactionStatusReversed   TransactionStatus = "REVERSED"
)

type Transaction struct {
	Id                uuid.UUID
	UserId            string
	WalletId          string
	Reference         string
	TransactionType   TransactionType
	TransactionStatus TransactionStatus
	Amount            float64
	Fee               float64
	Currency          Currency
	Narration         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TransactionEntry is one leg of a transaction's double entry. Creating a
// transaction and its entries are independent writes with no cross-entity
// transaction; a partial failure leaves one side written.
type TransactionEntry struct {
	Id            uuid.UUID
	TransactionId string
	AccountId     string
	Direction     EntryDirection
	Amount        float64
	Currency      Currency
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VendorResponseTrail records every callback received from the payment vendor
// verbatim, whether or not the referenced transaction exists.
type VendorResponseTrail struct {
	Id             uuid.UUID
	TransactionId  string
	Vendor         string
	Reference      string
	StatusCode     string
	VendorStatus   string
	RequestPayload string
	SignatureValid bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
