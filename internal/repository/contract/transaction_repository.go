package contract

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/repository/specification"
)

// TransactionRepository covers transactions, their double-entry legs and the
// vendor callback trail.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *entity.Transaction) error
	UpdateTransaction(ctx context.Context, tx *entity.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	FindOneTransaction(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	CountTransactions(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumTransactionAmounts(ctx context.Context, specs ...specification.Specification) (float64, error)

	CreateEntry(ctx context.Context, entry *entity.TransactionEntry) error
	UpdateEntry(ctx context.Context, entry *entity.TransactionEntry) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	FindOneEntry(ctx context.Context, specs ...specification.Specification) (*entity.TransactionEntry, error)
	FindEntries(ctx context.Context, specs ...specification.Specification) ([]*entity.TransactionEntry, error)

	CreateTrail(ctx context.Context, trail *entity.VendorResponseTrail) error
	UpdateTrail(ctx context.Context, trail *entity.VendorResponseTrail) error
	DeleteTrail(ctx context.Context, id uuid.UUID) error
	FindOneTrail(ctx context.Context, specs ...specification.Specification) (*entity.VendorResponseTrail, error)
	FindTrails(ctx context.Context, specs ...specification.Specification) ([]*entity.VendorResponseTrail, error)
}
