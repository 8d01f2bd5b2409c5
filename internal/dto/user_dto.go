package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	UserGroup     string    `json:"user_group"`
	EmailVerified bool      `json:"email_verified"`
	PhoneVerified bool      `json:"phone_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserAuthResponse struct {
	Id               uuid.UUID  `json:"id"`
	UserId           string     `json:"user_id"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	DeviceId         string     `json:"device_id"`
	LastLoginAt      *time.Time `json:"last_login_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

type RecentActivityResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    string    `json:"user_id"`
	Activity  string    `json:"activity"`
	Detail    string    `json:"detail"`
	IpAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

type UserReferralResponse struct {
	Id             uuid.UUID `json:"id"`
	UserId         string    `json:"user_id"`
	ReferredUserId string    `json:"referred_user_id"`
	ReferralCode   string    `json:"referral_code"`
	Status         string    `json:"status"`
	RewardAmount   float64   `json:"reward_amount"`
	CreatedAt      time.Time `json:"created_at"`
}
