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

type RewardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RewardMapper
}

func NewRewardRepository(db *gorm.DB) contract.RewardRepository {
	return &RewardRepositoryImpl{
		db:     db,
		mapper: mapper.NewRewardMapper(),
	}
}

func (r *RewardRepositoryImpl) CreateCriterion(ctx context.Context, criterion *entity.RewardCriterion) error {
	m := r.mapper.ToModel(criterion)
	if err := createModel(ctx, r.db, m, "reward criterion"); err != nil {
		return err
	}
	*criterion = *r.mapper.ToEntity(m)
	return nil
}

func (r *RewardRepositoryImpl) UpdateCriterion(ctx context.Context, criterion *entity.RewardCriterion) error {
	m := r.mapper.ToModel(criterion)
	if err := saveModel(ctx, r.db, m, "reward criterion"); err != nil {
		return err
	}
	*criterion = *r.mapper.ToEntity(m)
	return nil
}

func (r *RewardRepositoryImpl) DeleteCriterion(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.RewardCriterion](ctx, r.db, id, "reward criterion")
}

func (r *RewardRepositoryImpl) FindOneCriterion(ctx context.Context, specs ...specification.Specification) (*entity.RewardCriterion, error) {
	m, err := findOne[model.RewardCriterion](ctx, r.db, "reward criterion", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *RewardRepositoryImpl) FindCriteria(ctx context.Context, specs ...specification.Specification) ([]*entity.RewardCriterion, error) {
	ms, err := findAll[model.RewardCriterion](ctx, r.db, "reward criteria", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}
