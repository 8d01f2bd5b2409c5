package mapper

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/model"
	"fintech-admin-be/pkg/money"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Phone:         u.Phone,
		Status:        entity.UserStatus(u.Status),
		UserGroup:     entity.UserGroup(u.UserGroup),
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Phone:         u.Phone,
		Status:        string(u.Status),
		UserGroup:     string(u.UserGroup),
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// Auth mappers

func (m *UserMapper) AuthToEntity(a *model.UserAuth) *entity.UserAuth {
	if a == nil {
		return nil
	}
	return &entity.UserAuth{
		Id:               a.Id,
		UserId:           a.UserId,
		PinHash:          a.PinHash,
		TwoFactorEnabled: a.TwoFactorEnabled,
		DeviceId:         a.DeviceId,
		LastLoginAt:      a.LastLoginAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *UserMapper) AuthToModel(a *entity.UserAuth) *model.UserAuth {
	if a == nil {
		return nil
	}
	return &model.UserAuth{
		Id:               a.Id,
		UserId:           a.UserId,
		PinHash:          a.PinHash,
		TwoFactorEnabled: a.TwoFactorEnabled,
		DeviceId:         a.DeviceId,
		LastLoginAt:      a.LastLoginAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *UserMapper) AuthToEntities(auths []*model.UserAuth) []*entity.UserAuth {
	entities := make([]*entity.UserAuth, len(auths))
	for i, a := range auths {
		entities[i] = m.AuthToEntity(a)
	}
	return entities
}

// Activity mappers

func (m *UserMapper) ActivityToEntity(a *model.RecentUserActivity) *entity.RecentUserActivity {
	if a == nil {
		return nil
	}
	return &entity.RecentUserActivity{
		Id:        a.Id,
		UserId:    a.UserId,
		Activity:  entity.ActivityType(a.Activity),
		Detail:    a.Detail,
		IpAddress: a.IpAddress,
		UserAgent: a.UserAgent,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *UserMapper) ActivityToModel(a *entity.RecentUserActivity) *model.RecentUserActivity {
	if a == nil {
		return nil
	}
	return &model.RecentUserActivity{
		Id:        a.Id,
		UserId:    a.UserId,
		Activity:  string(a.Activity),
		Detail:    a.Detail,
		IpAddress: a.IpAddress,
		UserAgent: a.UserAgent,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *UserMapper) ActivityToEntities(activities []*model.RecentUserActivity) []*entity.RecentUserActivity {
	entities := make([]*entity.RecentUserActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ActivityToEntity(a)
	}
	return entities
}

// Referral mappers. RewardAmount crosses the minor-unit boundary here.

func (m *UserMapper) ReferralToEntity(r *model.UserReferral) *entity.UserReferral {
	if r == nil {
		return nil
	}
	return &entity.UserReferral{
		Id:             r.Id,
		UserId:         r.UserId,
		ReferredUserId: r.ReferredUserId,
		ReferralCode:   r.ReferralCode,
		Status:         entity.ReferralStatus(r.Status),
		RewardAmount:   money.FromMinor(r.RewardAmount),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *UserMapper) ReferralToModel(r *entity.UserReferral) *model.UserReferral {
	if r == nil {
		return nil
	}
	return &model.UserReferral{
		Id:             r.Id,
		UserId:         r.UserId,
		ReferredUserId: r.ReferredUserId,
		ReferralCode:   r.ReferralCode,
		Status:         string(r.Status),
		RewardAmount:   money.ToMinor(r.RewardAmount),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *UserMapper) ReferralToEntities(referrals []*model.UserReferral) []*entity.UserReferral {
	entities := make([]*entity.UserReferral, len(referrals))
	for i, r := range referrals {
		entities[i] = m.ReferralToEntity(r)
	}
	return entities
}
