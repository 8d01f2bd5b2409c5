package entity

import (
	"time"

	"github.com/google/uuid"
)

type RewardCriterion struct {
	Id           uuid.UUID
	Name         string
	Description  string
	RewardAmount float64 // display units; stored as minor units
	Threshold    float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
