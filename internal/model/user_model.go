package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  *string   `gorm:"type:varchar(255)"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32)"`
	Status        string    `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	UserGroup     string    `gorm:"type:varchar(50);not null;default:'STANDARD'"`
	EmailVerified bool      `gorm:"default:false"`
	PhoneVerified bool      `gorm:"default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserAuth struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           string    `gorm:"type:varchar(64);index"`
	PinHash          *string   `gorm:"type:varchar(255)"`
	TwoFactorEnabled bool      `gorm:"default:false"`
	DeviceId         string    `gorm:"type:varchar(128)"`
	LastLoginAt      *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (UserAuth) TableName() string {
	return "user_auths"
}

type RecentUserActivity struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string    `gorm:"type:varchar(64);index"`
	Activity  string    `gorm:"type:varchar(50);not null"`
	Detail    string    `gorm:"type:text"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RecentUserActivity) TableName() string {
	return "recent_user_activities"
}

type UserReferral struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         string    `gorm:"type:varchar(64);index"`
	ReferredUserId string    `gorm:"type:varchar(64);index"`
	ReferralCode   string    `gorm:"type:varchar(32);index"`
	Status         string    `gorm:"type:varchar(50);not null;default:'PENDING'"`
	// Integer minor units (x100)
	RewardAmount int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserReferral) TableName() string {
	return "user_referrals"
}
