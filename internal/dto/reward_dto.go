package dto

import (
	"time"

	"github.com/google/uuid"
)

type RewardCriterionResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	RewardAmount float64   `json:"reward_amount"`
	Threshold    float64   `json:"threshold"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
