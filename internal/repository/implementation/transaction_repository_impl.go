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
	"fintech-admin-be/pkg/money"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.ToModel(tx)
	if err := createModel(ctx, r.db, m, "transaction"); err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) UpdateTransaction(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.ToModel(tx)
	if err := saveModel(ctx, r.db, m, "transaction"); err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.Transaction](ctx, r.db, id, "transaction")
}

func (r *TransactionRepositoryImpl) FindOneTransaction(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	m, err := findOne[model.Transaction](ctx, r.db, "transaction", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *TransactionRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	ms, err := findAll[model.Transaction](ctx, r.db, "transactions", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *TransactionRepositoryImpl) CountTransactions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countModels[model.Transaction](ctx, r.db, "transactions", specs...)
}

// SumTransactionAmounts totals the amount column. The sum is computed over
// minor units and converted once at the boundary.
func (r *TransactionRepositoryImpl) SumTransactionAmounts(ctx context.Context, specs ...specification.Specification) (float64, error) {
	var total int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Transaction{}), specs...)
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, wrapErr("transaction totals", err)
	}
	return money.FromMinor(total), nil
}

// --- Entries ---

func (r *TransactionRepositoryImpl) CreateEntry(ctx context.Context, entry *entity.TransactionEntry) error {
	m := r.mapper.EntryToModel(entry)
	if err := createModel(ctx, r.db, m, "transaction entry"); err != nil {
		return err
	}
	*entry = *r.mapper.EntryToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) UpdateEntry(ctx context.Context, entry *entity.TransactionEntry) error {
	m := r.mapper.EntryToModel(entry)
	if err := saveModel(ctx, r.db, m, "transaction entry"); err != nil {
		return err
	}
	*entry = *r.mapper.EntryToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.TransactionEntry](ctx, r.db, id, "transaction entry")
}

func (r *TransactionRepositoryImpl) FindOneEntry(ctx context.Context, specs ...specification.Specification) (*entity.TransactionEntry, error) {
	m, err := findOne[model.TransactionEntry](ctx, r.db, "transaction entry", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.EntryToEntity(m), nil
}

func (r *TransactionRepositoryImpl) FindEntries(ctx context.Context, specs ...specification.Specification) ([]*entity.TransactionEntry, error) {
	ms, err := findAll[model.TransactionEntry](ctx, r.db, "transaction entries", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.EntryToEntities(ms), nil
}

// --- Vendor response trails ---

func (r *TransactionRepositoryImpl) CreateTrail(ctx context.Context, trail *entity.VendorResponseTrail) error {
	m := r.mapper.TrailToModel(trail)
	if err := createModel(ctx, r.db, m, "vendor trail"); err != nil {
		return err
	}
	*trail = *r.mapper.TrailToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) UpdateTrail(ctx context.Context, trail *entity.VendorResponseTrail) error {
	m := r.mapper.TrailToModel(trail)
	if err := saveModel(ctx, r.db, m, "vendor trail"); err != nil {
		return err
	}
	*trail = *r.mapper.TrailToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) DeleteTrail(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.VendorResponseTrail](ctx, r.db, id, "vendor trail")
}

func (r *TransactionRepositoryImpl) FindOneTrail(ctx context.Context, specs ...specification.Specification) (*entity.VendorResponseTrail, error) {
	m, err := findOne[model.VendorResponseTrail](ctx, r.db, "vendor trail", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.TrailToEntity(m), nil
}

func (r *TransactionRepositoryImpl) FindTrails(ctx context.Context, specs ...specification.Specification) ([]*entity.VendorResponseTrail, error) {
	ms, err := findAll[model.VendorResponseTrail](ctx, r.db, "vendor trails", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.TrailToEntities(ms), nil
}
