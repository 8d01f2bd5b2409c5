package model

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            string    `gorm:"type:varchar(64);index"`
	WalletId          string    `gorm:"type:varchar(64);index"`
	Reference         string    `gorm:"type:varchar(64);uniqueIndex"`
	TransactionType   string    `gorm:"type:varchar(50);not null"`
	TransactionStatus string    `gorm:"type:varchar(50);not null;default:'PENDING'"`
	// Integer minor units (x100)
	Amount    int64     `gorm:"not null;default:0"`
	Fee       int64     `gorm:"not null;default:0"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'NGN'"`
	Narration string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionEntry struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionId string    `gorm:"type:varchar(64);index"`
	AccountId     string    `gorm:"type:varchar(64);index"`
	Direction     string    `gorm:"type:varchar(10);not null"`
	// Integer minor units (x100)
	Amount    int64     `gorm:"not null;default:0"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'NGN'"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TransactionEntry) TableName() string {
	return "transaction_entries"
}

type VendorResponseTrail struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionId  string    `gorm:"type:varchar(64);index"`
	Vendor         string    `gorm:"type:varchar(50);not null"`
	Reference      string    `gorm:"type:varchar(64);index"`
	StatusCode     string    `gorm:"type:varchar(10)"`
	VendorStatus   string    `gorm:"type:varchar(50)"`
	RequestPayload string    `gorm:"type:text"`
	SignatureValid bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (VendorResponseTrail) TableName() string {
	return "vendor_response_trails"
}
