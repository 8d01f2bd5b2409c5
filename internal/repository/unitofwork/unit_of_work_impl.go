package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fintech-admin-be/internal/repository/contract"
	"fintech-admin-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WalletRepository() contract.WalletRepository {
	return implementation.NewWalletRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TransactionRepository() contract.TransactionRepository {
	return implementation.NewTransactionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KycRepository() contract.KycRepository {
	return implementation.NewKycRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RewardRepository() contract.RewardRepository {
	return implementation.NewRewardRepository(u.getDB())
}
