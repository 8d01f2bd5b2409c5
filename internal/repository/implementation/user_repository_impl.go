package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/mapper"
	"fintech-admin-be/internal/model"
	"fintech-admin-be/internal/repository/contract"
	"fintech-admin-be/internal/repository/specification"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := createModel(ctx, r.db, m, "user"); err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := saveModel(ctx, r.db, m, "user"); err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.User](ctx, r.db, id, "user")
}

func (r *UserRepositoryImpl) FindOneUser(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	m, err := findOne[model.User](ctx, r.db, "user", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *UserRepositoryImpl) FindUsers(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	ms, err := findAll[model.User](ctx, r.db, "users", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countModels[model.User](ctx, r.db, "users", specs...)
}

// --- Auth records ---

func (r *UserRepositoryImpl) CreateAuth(ctx context.Context, auth *entity.UserAuth) error {
	m := r.mapper.AuthToModel(auth)
	if err := createModel(ctx, r.db, m, "user auth"); err != nil {
		return err
	}
	*auth = *r.mapper.AuthToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) UpdateAuth(ctx context.Context, auth *entity.UserAuth) error {
	m := r.mapper.AuthToModel(auth)
	if err := saveModel(ctx, r.db, m, "user auth"); err != nil {
		return err
	}
	*auth = *r.mapper.AuthToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) DeleteAuth(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.UserAuth](ctx, r.db, id, "user auth")
}

func (r *UserRepositoryImpl) FindOneAuth(ctx context.Context, specs ...specification.Specification) (*entity.UserAuth, error) {
	m, err := findOne[model.UserAuth](ctx, r.db, "user auth", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.AuthToEntity(m), nil
}

func (r *UserRepositoryImpl) FindAuths(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAuth, error) {
	ms, err := findAll[model.UserAuth](ctx, r.db, "user auths", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.AuthToEntities(ms), nil
}

// --- Activity feed ---

func (r *UserRepositoryImpl) CreateActivity(ctx context.Context, activity *entity.RecentUserActivity) error {
	m := r.mapper.ActivityToModel(activity)
	if err := createModel(ctx, r.db, m, "activity"); err != nil {
		return err
	}
	*activity = *r.mapper.ActivityToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) UpdateActivity(ctx context.Context, activity *entity.RecentUserActivity) error {
	m := r.mapper.ActivityToModel(activity)
	if err := saveModel(ctx, r.db, m, "activity"); err != nil {
		return err
	}
	*activity = *r.mapper.ActivityToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.RecentUserActivity](ctx, r.db, id, "activity")
}

func (r *UserRepositoryImpl) FindActivities(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentUserActivity, error) {
	ms, err := findAll[model.RecentUserActivity](ctx, r.db, "activities", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ActivityToEntities(ms), nil
}

func (r *UserRepositoryImpl) FindOneActivity(ctx context.Context, specs ...specification.Specification) (*entity.RecentUserActivity, error) {
	m, err := findOne[model.RecentUserActivity](ctx, r.db, "activity", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ActivityToEntity(m), nil
}

// --- Referrals ---

func (r *UserRepositoryImpl) CreateReferral(ctx context.Context, referral *entity.UserReferral) error {
	m := r.mapper.ReferralToModel(referral)
	if err := createModel(ctx, r.db, m, "referral"); err != nil {
		return err
	}
	*referral = *r.mapper.ReferralToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) UpdateReferral(ctx context.Context, referral *entity.UserReferral) error {
	m := r.mapper.ReferralToModel(referral)
	if err := saveModel(ctx, r.db, m, "referral"); err != nil {
		return err
	}
	*referral = *r.mapper.ReferralToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.UserReferral](ctx, r.db, id, "referral")
}

func (r *UserRepositoryImpl) FindReferrals(ctx context.Context, specs ...specification.Specification) ([]*entity.UserReferral, error) {
	ms, err := findAll[model.UserReferral](ctx, r.db, "referrals", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ReferralToEntities(ms), nil
}

func (r *UserRepositoryImpl) FindOneReferral(ctx context.Context, specs ...specification.Specification) (*entity.UserReferral, error) {
	m, err := findOne[model.UserReferral](ctx, r.db, "referral", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ReferralToEntity(m), nil
}
