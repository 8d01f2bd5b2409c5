package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string
type UserGroup string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"

	UserGroupStandard UserGroup = "STANDARD"
	UserGroupMerchant UserGroup = "MERCHANT"
	UserGroupStaff    UserGroup = "STAFF"
)

type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  *string
	FullName      string
	Phone         string
	Status        UserStatus
	UserGroup     UserGroup
	EmailVerified bool
	PhoneVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserAuth tracks per-user authentication state beyond the password itself.
// UserId is a free-form identifier; the owning user may not exist.
type UserAuth struct {
	Id               uuid.UUID
	UserId           string
	PinHash          *string
	TwoFactorEnabled bool
	DeviceId         string
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ActivityType string

const (
	ActivityLogin          ActivityType = "LOGIN"
	ActivityTransfer       ActivityType = "TRANSFER"
	ActivityProfileUpdate  ActivityType = "PROFILE_UPDATE"
	ActivityPasswordChange ActivityType = "PASSWORD_CHANGE"
)

type RecentUserActivity struct {
	Id        uuid.UUID
	UserId    string
	Activity  ActivityType
	Detail    string
	IpAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "PENDING"
	ReferralStatusCompleted ReferralStatus = "COMPLETED"
)

type UserReferral struct {
	Id             uuid.UUID
	UserId         string
	ReferredUserId string
	ReferralCode   string
	Status         ReferralStatus
	RewardAmount   float64 // display units; stored as minor units
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
