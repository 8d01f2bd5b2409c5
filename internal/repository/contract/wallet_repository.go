package contract

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/repository/specification"
)

type WalletRepository interface {
	CreateWallet(ctx context.Context, wallet *entity.Wallet) error
	UpdateWallet(ctx context.Context, wallet *entity.Wallet) error
	DeleteWallet(ctx context.Context, id uuid.UUID) error
	FindOneWallet(ctx context.Context, specs ...specification.Specification) (*entity.Wallet, error)
	FindWallets(ctx context.Context, specs ...specification.Specification) ([]*entity.Wallet, error)
	CountWallets(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateHistory(ctx context.Context, history *entity.WalletHistory) error
	UpdateHistory(ctx context.Context, history *entity.WalletHistory) error
	DeleteHistory(ctx context.Context, id uuid.UUID) error
	FindOneHistory(ctx context.Context, specs ...specification.Specification) (*entity.WalletHistory, error)
	FindHistories(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletHistory, error)
}
