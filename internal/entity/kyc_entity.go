package entity

import (
	"time"

	"github.com/google/uuid"
)

type KycStatus string
type KycTier string

const (
	KycStatusPending   KycStatus = "PENDING"
	KycStatusCompleted KycStatus = "COMPLETED"
	KycStatusRejected  KycStatus = "REJECTED"

	KycTierOne   KycTier = "TIER_1"
	KycTierTwo   KycTier = "TIER_2"
	KycTierThree KycTier = "TIER_3"
)

type UserKyc struct {
	Id        uuid.UUID
	UserId    string
	KycLevel  KycTier
	Status    KycStatus
	Remarks   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentType string

const (
	DocumentPassport       DocumentType = "PASSPORT"
	DocumentNationalId     DocumentType = "NATIONAL_ID"
	DocumentDriversLicense DocumentType = "DRIVERS_LICENSE"
	DocumentUtilityBill    DocumentType = "UTILITY_BILL"
)

type UserKycDetail struct {
	Id             uuid.UUID
	UserId         string
	KycId          string
	DocumentType   DocumentType
	DocumentNumber string
	DocumentUrl    string
	Status         KycStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// KycLevel declares a tier's limits and the documents required to reach it.
// Limits are display units; stored as minor units.
type KycLevel struct {
	Id           uuid.UUID
	Name         KycTier
	Level        int
	DailyLimit   float64
	MaxBalance   float64
	Requirements []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
