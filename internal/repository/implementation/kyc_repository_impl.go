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

type KycRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KycMapper
}

func NewKycRepository(db *gorm.DB) contract.KycRepository {
	return &KycRepositoryImpl{
		db:     db,
		mapper: mapper.NewKycMapper(),
	}
}

func (r *KycRepositoryImpl) CreateKyc(ctx context.Context, kyc *entity.UserKyc) error {
	m := r.mapper.ToModel(kyc)
	if err := createModel(ctx, r.db, m, "kyc record"); err != nil {
		return err
	}
	*kyc = *r.mapper.ToEntity(m)
	return nil
}

func (r *KycRepositoryImpl) UpdateKyc(ctx context.Context, kyc *entity.UserKyc) error {
	m := r.mapper.ToModel(kyc)
	if err := saveModel(ctx, r.db, m, "kyc record"); err != nil {
		return err
	}
	*kyc = *r.mapper.ToEntity(m)
	return nil
}

func (r *KycRepositoryImpl) DeleteKyc(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.UserKyc](ctx, r.db, id, "kyc record")
}

func (r *KycRepositoryImpl) FindOneKyc(ctx context.Context, specs ...specification.Specification) (*entity.UserKyc, error) {
	m, err := findOne[model.UserKyc](ctx, r.db, "kyc record", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *KycRepositoryImpl) FindKycs(ctx context.Context, specs ...specification.Specification) ([]*entity.UserKyc, error) {
	ms, err := findAll[model.UserKyc](ctx, r.db, "kyc records", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *KycRepositoryImpl) CountKycs(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countModels[model.UserKyc](ctx, r.db, "kyc records", specs...)
}

// --- Documents ---

func (r *KycRepositoryImpl) CreateDetail(ctx context.Context, detail *entity.UserKycDetail) error {
	m := r.mapper.DetailToModel(detail)
	if err := createModel(ctx, r.db, m, "kyc document"); err != nil {
		return err
	}
	*detail = *r.mapper.DetailToEntity(m)
	return nil
}

func (r *KycRepositoryImpl) UpdateDetail(ctx context.Context, detail *entity.UserKycDetail) error {
	m := r.mapper.DetailToModel(detail)
	if err := saveModel(ctx, r.db, m, "kyc document"); err != nil {
		return err
	}
	*detail = *r.mapper.DetailToEntity(m)
	return nil
}

func (r *KycRepositoryImpl) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.UserKycDetail](ctx, r.db, id, "kyc document")
}

func (r *KycRepositoryImpl) FindOneDetail(ctx context.Context, specs ...specification.Specification) (*entity.UserKycDetail, error) {
	m, err := findOne[model.UserKycDetail](ctx, r.db, "kyc document", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.DetailToEntity(m), nil
}

func (r *KycRepositoryImpl) FindDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.UserKycDetail, error) {
	ms, err := findAll[model.UserKycDetail](ctx, r.db, "kyc documents", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.DetailToEntities(ms), nil
}

// --- Levels ---

func (r *KycRepositoryImpl) CreateLevel(ctx context.Context, level *entity.KycLevel) error {
	m := r.mapper.LevelToModel(level)
	if err := createModel(ctx, r.db, m, "kyc level"); err != nil {
		return err
	}
	*level = *r.mapper.LevelToEntity(m)
	return nil
}

func (r *KycRepositoryImpl) UpdateLevel(ctx context.Context, level *entity.KycLevel) error {
	m := r.mapper.LevelToModel(level)
	if err := saveModel(ctx, r.db, m, "kyc level"); err != nil {
		return err
	}
	*level = *r.mapper.LevelToEntity(m)
	return nil
}

func (r *KycRepositoryImpl) DeleteLevel(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.KycLevel](ctx, r.db, id, "kyc level")
}

func (r *KycRepositoryImpl) FindOneLevel(ctx context.Context, specs ...specification.Specification) (*entity.KycLevel, error) {
	m, err := findOne[model.KycLevel](ctx, r.db, "kyc level", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.LevelToEntity(m), nil
}

func (r *KycRepositoryImpl) FindLevels(ctx context.Context, specs ...specification.Specification) ([]*entity.KycLevel, error) {
	ms, err := findAll[model.KycLevel](ctx, r.db, "kyc levels", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.LevelToEntities(ms), nil
}
