package implementation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/repository/specification"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// wrapErr maps driver errors onto the service-level failure taxonomy.
// Requires the gorm TranslateError option so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func wrapErr(what string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(fmt.Sprintf("%s not found", what))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Duplicate(fmt.Sprintf("%s already exists", what))
	default:
		return apperror.BackendUnavailable(fmt.Sprintf("%s query failed", what), err)
	}
}

func createModel[M any](ctx context.Context, db *gorm.DB, m *M, what string) error {
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return wrapErr(what, err)
	}
	return nil
}

// saveModel updates all columns of an existing row. An update that matches
// no row reports NotFound instead of silently writing nothing.
func saveModel[M any](ctx context.Context, db *gorm.DB, m *M, what string) error {
	tx := db.WithContext(ctx).Save(m)
	if tx.Error != nil {
		return wrapErr(what, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound(fmt.Sprintf("%s not found", what))
	}
	return nil
}

func deleteModel[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, what string) error {
	var m M
	tx := db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if tx.Error != nil {
		return wrapErr(what, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound(fmt.Sprintf("%s not found", what))
	}
	return nil
}

func findOne[M any](ctx context.Context, db *gorm.DB, what string, specs ...specification.Specification) (*M, error) {
	var m M
	query := applySpecifications(db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		return nil, wrapErr(what, err)
	}
	return &m, nil
}

func findAll[M any](ctx context.Context, db *gorm.DB, what string, specs ...specification.Specification) ([]*M, error) {
	var ms []*M
	query := applySpecifications(db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, wrapErr(what, err)
	}
	return ms, nil
}

func countModels[M any](ctx context.Context, db *gorm.DB, what string, specs ...specification.Specification) (int64, error) {
	var m M
	var count int64
	query := applySpecifications(db.WithContext(ctx).Model(&m), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, wrapErr(what, err)
	}
	return count, nil
}
