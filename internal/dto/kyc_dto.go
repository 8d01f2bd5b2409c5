package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserKycResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    string    `json:"user_id"`
	KycLevel  string    `json:"kyc_level"`
	Status    string    `json:"status"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserKycDetailResponse struct {
	Id             uuid.UUID `json:"id"`
	UserId         string    `json:"user_id"`
	KycId          string    `json:"kyc_id"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	DocumentUrl    string    `json:"document_url"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type KycLevelResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Level        int       `json:"level"`
	DailyLimit   float64   `json:"daily_limit"`
	MaxBalance   float64   `json:"max_balance"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"created_at"`
}
