package model

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string    `gorm:"type:varchar(64);index"`
	AccountId string    `gorm:"type:varchar(64);index"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'NGN'"`
	// Integer minor units (x100)
	Balance       int64     `gorm:"not null;default:0"`
	LedgerBalance int64     `gorm:"not null;default:0"`
	Status        string    `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;index"`
}

func (Wallet) TableName() string {
	return "wallets"
}

type WalletHistory struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WalletId      string    `gorm:"type:varchar(64);index"`
	UserId        string    `gorm:"type:varchar(64);index"`
	TransactionId string    `gorm:"type:varchar(64);index"`
	Direction     string    `gorm:"type:varchar(10);not null"`
	// Integer minor units (x100)
	Amount        int64     `gorm:"not null;default:0"`
	BalanceBefore int64     `gorm:"not null;default:0"`
	BalanceAfter  int64     `gorm:"not null;default:0"`
	Narration     string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;index"`
}

func (WalletHistory) TableName() string {
	return "wallet_histories"
}
