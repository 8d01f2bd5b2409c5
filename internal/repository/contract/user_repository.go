package contract

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/repository/specification"
)

// UserRepository covers users together with their auth records, activity
// feed and referrals.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	UpdateUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	FindOneUser(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindUsers(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	CountUsers(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateAuth(ctx context.Context, auth *entity.UserAuth) error
	UpdateAuth(ctx context.Context, auth *entity.UserAuth) error
	DeleteAuth(ctx context.Context, id uuid.UUID) error
	FindOneAuth(ctx context.Context, specs ...specification.Specification) (*entity.UserAuth, error)
	FindAuths(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAuth, error)

	CreateActivity(ctx context.Context, activity *entity.RecentUserActivity) error
	UpdateActivity(ctx context.Context, activity *entity.RecentUserActivity) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	FindActivities(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentUserActivity, error)
	FindOneActivity(ctx context.Context, specs ...specification.Specification) (*entity.RecentUserActivity, error)

	CreateReferral(ctx context.Context, referral *entity.UserReferral) error
	UpdateReferral(ctx context.Context, referral *entity.UserReferral) error
	DeleteReferral(ctx context.Context, id uuid.UUID) error
	FindReferrals(ctx context.Context, specs ...specification.Specification) ([]*entity.UserReferral, error)
	FindOneReferral(ctx context.Context, specs ...specification.Specification) (*entity.UserReferral, error)
}
