package contract

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/repository/specification"
)

type RewardRepository interface {
	CreateCriterion(ctx context.Context, criterion *entity.RewardCriterion) error
	UpdateCriterion(ctx context.Context, criterion *entity.RewardCriterion) error
	DeleteCriterion(ctx context.Context, id uuid.UUID) error
	FindOneCriterion(ctx context.Context, specs ...specification.Specification) (*entity.RewardCriterion, error)
	FindCriteria(ctx context.Context, specs ...specification.Specification) ([]*entity.RewardCriterion, error)
}
