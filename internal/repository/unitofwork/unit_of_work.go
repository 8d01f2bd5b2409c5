package unitofwork

import (
	"context"

	"fintech-admin-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one request, optionally inside a single
// database transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WalletRepository() contract.WalletRepository
	TransactionRepository() contract.TransactionRepository
	KycRepository() contract.KycRepository
	RewardRepository() contract.RewardRepository
}
