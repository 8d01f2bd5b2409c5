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

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WalletMapper
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &WalletRepositoryImpl{
		db:     db,
		mapper: mapper.NewWalletMapper(),
	}
}

func (r *WalletRepositoryImpl) CreateWallet(ctx context.Context, wallet *entity.Wallet) error {
	m := r.mapper.ToModel(wallet)
	if err := createModel(ctx, r.db, m, "wallet"); err != nil {
		return err
	}
	*wallet = *r.mapper.ToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) UpdateWallet(ctx context.Context, wallet *entity.Wallet) error {
	m := r.mapper.ToModel(wallet)
	if err := saveModel(ctx, r.db, m, "wallet"); err != nil {
		return err
	}
	*wallet = *r.mapper.ToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.Wallet](ctx, r.db, id, "wallet")
}

func (r *WalletRepositoryImpl) FindOneWallet(ctx context.Context, specs ...specification.Specification) (*entity.Wallet, error) {
	m, err := findOne[model.Wallet](ctx, r.db, "wallet", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *WalletRepositoryImpl) FindWallets(ctx context.Context, specs ...specification.Specification) ([]*entity.Wallet, error) {
	ms, err := findAll[model.Wallet](ctx, r.db, "wallets", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *WalletRepositoryImpl) CountWallets(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countModels[model.Wallet](ctx, r.db, "wallets", specs...)
}

// --- Histories ---

func (r *WalletRepositoryImpl) CreateHistory(ctx context.Context, history *entity.WalletHistory) error {
	m := r.mapper.HistoryToModel(history)
	if err := createModel(ctx, r.db, m, "wallet history"); err != nil {
		return err
	}
	*history = *r.mapper.HistoryToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) UpdateHistory(ctx context.Context, history *entity.WalletHistory) error {
	m := r.mapper.HistoryToModel(history)
	if err := saveModel(ctx, r.db, m, "wallet history"); err != nil {
		return err
	}
	*history = *r.mapper.HistoryToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	return deleteModel[model.WalletHistory](ctx, r.db, id, "wallet history")
}

func (r *WalletRepositoryImpl) FindOneHistory(ctx context.Context, specs ...specification.Specification) (*entity.WalletHistory, error) {
	m, err := findOne[model.WalletHistory](ctx, r.db, "wallet history", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.HistoryToEntity(m), nil
}

func (r *WalletRepositoryImpl) FindHistories(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletHistory, error) {
	ms, err := findAll[model.WalletHistory](ctx, r.db, "wallet histories", specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.HistoryToEntities(ms), nil
}
