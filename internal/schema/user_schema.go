package schema

import (
	"strings"
	"time"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/pkg/money"
)

func UserSchema() Schema[entity.User] {
	return Schema[entity.User]{
		Entity: "User",
		Fields: []FieldSpec[entity.User]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(u *entity.User) any { return u.Id.String() },
			},
			{
				Name: "fullName", Label: "Full Name", Kind: FieldText, Placeholder: "Jane Doe",
				Get: func(u *entity.User) any { return u.FullName },
				Set: func(u *entity.User, v any) { u.FullName = v.(string) },
			},
			{
				Name: "email", Label: "Email", Kind: FieldText, Placeholder: "user@example.com",
				Get: func(u *entity.User) any { return u.Email },
				// Emails are unique case-insensitively; every write path must
				// store the canonical lowercase form.
				Set: func(u *entity.User, v any) { u.Email = strings.ToLower(strings.TrimSpace(v.(string))) },
			},
			{
				Name: "phone", Label: "Phone", Kind: FieldText,
				Get: func(u *entity.User) any { return u.Phone },
				Set: func(u *entity.User, v any) { u.Phone = v.(string) },
			},
			{
				Name: "status", Label: "Status", Kind: FieldSelect,
				Options: []string{
					string(entity.UserStatusActive),
					string(entity.UserStatusInactive),
					string(entity.UserStatusSuspended),
				},
				Get: func(u *entity.User) any { return string(u.Status) },
				Set: func(u *entity.User, v any) { u.Status = entity.UserStatus(v.(string)) },
			},
			{
				Name: "userGroup", Label: "User Group", Kind: FieldSelect,
				Options: []string{
					string(entity.UserGroupStandard),
					string(entity.UserGroupMerchant),
					string(entity.UserGroupStaff),
				},
				Get: func(u *entity.User) any { return string(u.UserGroup) },
				Set: func(u *entity.User, v any) { u.UserGroup = entity.UserGroup(v.(string)) },
			},
			{
				Name: "emailVerified", Label: "Email Verified", Kind: FieldSwitch,
				Get: func(u *entity.User) any { return u.EmailVerified },
				Set: func(u *entity.User, v any) { u.EmailVerified = v.(bool) },
			},
			{
				Name: "phoneVerified", Label: "Phone Verified", Kind: FieldSwitch,
				Get: func(u *entity.User) any { return u.PhoneVerified },
				Set: func(u *entity.User, v any) { u.PhoneVerified = v.(bool) },
			},
			{
				Name: "createdAt", Label: "Created", Kind: FieldDate, ReadOnly: true,
				Get: func(u *entity.User) any { return u.CreatedAt },
			},
		},
		Columns: []ColumnSpec[entity.User]{
			{Key: "fullName", Header: "Full Name", Sortable: true, Value: func(u *entity.User) any { return u.FullName }},
			{Key: "email", Header: "Email", Sortable: true, Value: func(u *entity.User) any { return u.Email }},
			{Key: "phone", Header: "Phone", Value: func(u *entity.User) any { return u.Phone }},
			{Key: "status", Header: "Status", Sortable: true, Value: func(u *entity.User) any { return string(u.Status) }},
			{Key: "userGroup", Header: "Group", Sortable: true, Value: func(u *entity.User) any { return string(u.UserGroup) }},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(u *entity.User) any { return u.CreatedAt }},
		},
	}
}

func UserAuthSchema() Schema[entity.UserAuth] {
	return Schema[entity.UserAuth]{
		Entity: "UserAuth",
		Fields: []FieldSpec[entity.UserAuth]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(a *entity.UserAuth) any { return a.Id.String() },
			},
			{
				Name: "userId", Label: "User ID", Kind: FieldText,
				Get: func(a *entity.UserAuth) any { return a.UserId },
				Set: func(a *entity.UserAuth, v any) { a.UserId = v.(string) },
			},
			{
				Name: "twoFactorEnabled", Label: "Two-Factor", Kind: FieldSwitch,
				Get: func(a *entity.UserAuth) any { return a.TwoFactorEnabled },
				Set: func(a *entity.UserAuth, v any) { a.TwoFactorEnabled = v.(bool) },
			},
			{
				Name: "deviceId", Label: "Device ID", Kind: FieldText,
				Get: func(a *entity.UserAuth) any { return a.DeviceId },
				Set: func(a *entity.UserAuth, v any) { a.DeviceId = v.(string) },
			},
			{
				Name: "lastLoginAt", Label: "Last Login", Kind: FieldDate,
				Get: func(a *entity.UserAuth) any {
					if a.LastLoginAt == nil {
						return ""
					}
					return *a.LastLoginAt
				},
				Set: func(a *entity.UserAuth, v any) {
					t := v.(time.Time)
					a.LastLoginAt = &t
				},
			},
		},
		Columns: []ColumnSpec[entity.UserAuth]{
			{Key: "userId", Header: "User ID", Sortable: true, Value: func(a *entity.UserAuth) any { return a.UserId }},
			{Key: "twoFactorEnabled", Header: "2FA", Value: func(a *entity.UserAuth) any { return a.TwoFactorEnabled }},
			{Key: "deviceId", Header: "Device", Value: func(a *entity.UserAuth) any { return a.DeviceId }},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(a *entity.UserAuth) any { return a.CreatedAt }},
		},
	}
}

func RecentActivitySchema() Schema[entity.RecentUserActivity] {
	return Schema[entity.RecentUserActivity]{
		Entity: "RecentUserActivity",
		Fields: []FieldSpec[entity.RecentUserActivity]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(a *entity.RecentUserActivity) any { return a.Id.String() },
			},
			{
				Name: "userId", Label: "User ID", Kind: FieldText,
				Get: func(a *entity.RecentUserActivity) any { return a.UserId },
				Set: func(a *entity.RecentUserActivity, v any) { a.UserId = v.(string) },
			},
			{
				Name: "activity", Label: "Activity", Kind: FieldSelect,
				Options: []string{
					string(entity.ActivityLogin),
					string(entity.ActivityTransfer),
					string(entity.ActivityProfileUpdate),
					string(entity.ActivityPasswordChange),
				},
				Get: func(a *entity.RecentUserActivity) any { return string(a.Activity) },
				Set: func(a *entity.RecentUserActivity, v any) { a.Activity = entity.ActivityType(v.(string)) },
			},
			{
				Name: "detail", Label: "Detail", Kind: FieldTextarea,
				Get: func(a *entity.RecentUserActivity) any { return a.Detail },
				Set: func(a *entity.RecentUserActivity, v any) { a.Detail = v.(string) },
			},
			{
				Name: "ipAddress", Label: "IP Address", Kind: FieldText, ReadOnly: true,
				Get: func(a *entity.RecentUserActivity) any { return a.IpAddress },
			},
		},
		Columns: []ColumnSpec[entity.RecentUserActivity]{
			{Key: "userId", Header: "User ID", Sortable: true, Value: func(a *entity.RecentUserActivity) any { return a.UserId }},
			{Key: "activity", Header: "Activity", Sortable: true, Value: func(a *entity.RecentUserActivity) any { return string(a.Activity) }},
			{Key: "detail", Header: "Detail", Value: func(a *entity.RecentUserActivity) any { return a.Detail }},
			{Key: "ipAddress", Header: "IP", Value: func(a *entity.RecentUserActivity) any { return a.IpAddress }},
			{Key: "createdAt", Header: "When", Sortable: true, Value: func(a *entity.RecentUserActivity) any { return a.CreatedAt }},
		},
	}
}

func UserReferralSchema() Schema[entity.UserReferral] {
	return Schema[entity.UserReferral]{
		Entity: "UserReferral",
		Fields: []FieldSpec[entity.UserReferral]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(r *entity.UserReferral) any { return r.Id.String() },
			},
			{
				Name: "userId", Label: "Referrer ID", Kind: FieldText,
				Get: func(r *entity.UserReferral) any { return r.UserId },
				Set: func(r *entity.UserReferral, v any) { r.UserId = v.(string) },
			},
			{
				Name: "referredUserId", Label: "Referred User ID", Kind: FieldText,
				Get: func(r *entity.UserReferral) any { return r.ReferredUserId },
				Set: func(r *entity.UserReferral, v any) { r.ReferredUserId = v.(string) },
			},
			{
				Name: "referralCode", Label: "Code", Kind: FieldText,
				Get: func(r *entity.UserReferral) any { return r.ReferralCode },
				Set: func(r *entity.UserReferral, v any) { r.ReferralCode = v.(string) },
			},
			{
				Name: "status", Label: "Status", Kind: FieldSelect,
				Options: []string{
					string(entity.ReferralStatusPending),
					string(entity.ReferralStatusCompleted),
				},
				Get: func(r *entity.UserReferral) any { return string(r.Status) },
				Set: func(r *entity.UserReferral, v any) { r.Status = entity.ReferralStatus(v.(string)) },
			},
			{
				Name: "rewardAmount", Label: "Reward", Kind: FieldNumber,
				Get: func(r *entity.UserReferral) any { return r.RewardAmount },
				Set: func(r *entity.UserReferral, v any) { r.RewardAmount = v.(float64) },
			},
		},
		Columns: []ColumnSpec[entity.UserReferral]{
			{Key: "userId", Header: "Referrer", Sortable: true, Value: func(r *entity.UserReferral) any { return r.UserId }},
			{Key: "referralCode", Header: "Code", Value: func(r *entity.UserReferral) any { return r.ReferralCode }},
			{Key: "status", Header: "Status", Sortable: true, Value: func(r *entity.UserReferral) any { return string(r.Status) }},
			{
				Key: "rewardAmount", Header: "Reward", Sortable: true,
				Value:  func(r *entity.UserReferral) any { return r.RewardAmount },
				Render: func(r *entity.UserReferral) string { return money.Format(r.RewardAmount) },
			},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(r *entity.UserReferral) any { return r.CreatedAt }},
		},
	}
}
