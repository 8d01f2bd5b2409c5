package model

import (
	"time"

	"github.com/google/uuid"
)

type RewardCriterion struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	// Integer minor units (x100)
	RewardAmount int64     `gorm:"not null;default:0"`
	Threshold    float64   `gorm:"not null;default:0"`
	Active       bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (RewardCriterion) TableName() string {
	return "reward_criteria"
}
