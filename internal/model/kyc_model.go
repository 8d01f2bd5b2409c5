package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserKyc struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string    `gorm:"type:varchar(64);index"`
	KycLevel  string    `gorm:"type:varchar(50);not null;default:'TIER_1'"`
	Status    string    `gorm:"type:varchar(50);not null;default:'PENDING';index"`
	Remarks   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserKyc) TableName() string {
	return "user_kycs"
}

type UserKycDetail struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         string    `gorm:"type:varchar(64);index"`
	KycId          string    `gorm:"type:varchar(64);index"`
	DocumentType   string    `gorm:"type:varchar(50);not null"`
	DocumentNumber string    `gorm:"type:varchar(64)"`
	DocumentUrl    string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(50);not null;default:'PENDING'"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UserKycDetail) TableName() string {
	return "user_kyc_details"
}

type KycLevel struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Level int       `gorm:"not null;default:1"`
	// Integer minor units (x100)
	DailyLimit   int64          `gorm:"not null;default:0"`
	MaxBalance   int64          `gorm:"not null;default:0"`
	Requirements datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (KycLevel) TableName() string {
	return "kyc_levels"
}
