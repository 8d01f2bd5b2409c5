package contract

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/repository/specification"
)

type KycRepository interface {
	CreateKyc(ctx context.Context, kyc *entity.UserKyc) error
	UpdateKyc(ctx context.Context, kyc *entity.UserKyc) error
	DeleteKyc(ctx context.Context, id uuid.UUID) error
	FindOneKyc(ctx context.Context, specs ...specification.Specification) (*entity.UserKyc, error)
	FindKycs(ctx context.Context, specs ...specification.Specification) ([]*entity.UserKyc, error)
	CountKycs(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateDetail(ctx context.Context, detail *entity.UserKycDetail) error
	UpdateDetail(ctx context.Context, detail *entity.UserKycDetail) error
	DeleteDetail(ctx context.Context, id uuid.UUID) error
	FindOneDetail(ctx context.Context, specs ...specification.Specification) (*entity.UserKycDetail, error)
	FindDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.UserKycDetail, error)

	CreateLevel(ctx context.Context, level *entity.KycLevel) error
	UpdateLevel(ctx context.Context, level *entity.KycLevel) error
	DeleteLevel(ctx context.Context, id uuid.UUID) error
	FindOneLevel(ctx context.Context, specs ...specification.Specification) (*entity.KycLevel, error)
	FindLevels(ctx context.Context, specs ...specification.Specification) ([]*entity.KycLevel, error)
}
