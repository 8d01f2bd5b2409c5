package service

import (
	"context"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/contract"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
)

// Test fakes. Only the methods a test exercises are overridden; calling
// anything else panics through the embedded nil interface, which is what we
// want.

type fakeUserRepo struct {
	contract.UserRepository
	findOneUser    func(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	findUsers      func(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	countUsers     func(ctx context.Context, specs ...specification.Specification) (int64, error)
	createUser     func(ctx context.Context, user *entity.User) error
	updateUser     func(ctx context.Context, user *entity.User) error
	findActivities func(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentUserActivity, error)
	activities     []*entity.RecentUserActivity
}

func (f *fakeUserRepo) FindOneUser(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return f.findOneUser(ctx, specs...)
}

func (f *fakeUserRepo) FindUsers(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return f.findUsers(ctx, specs...)
}

func (f *fakeUserRepo) CountUsers(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return f.countUsers(ctx, specs...)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	return f.createUser(ctx, user)
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) error {
	return f.updateUser(ctx, user)
}

func (f *fakeUserRepo) FindActivities(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentUserActivity, error) {
	return f.findActivities(ctx, specs...)
}

func (f *fakeUserRepo) CreateActivity(ctx context.Context, activity *entity.RecentUserActivity) error {
	f.activities = append(f.activities, activity)
	return nil
}

type fakeTxRepo struct {
	contract.TransactionRepository
	countTransactions func(ctx context.Context, specs ...specification.Specification) (int64, error)
	sumAmounts        func(ctx context.Context, specs ...specification.Specification) (float64, error)
	findTransactions  func(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	created           []*entity.Transaction
}

func (f *fakeTxRepo) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeTxRepo) CountTransactions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return f.countTransactions(ctx, specs...)
}

func (f *fakeTxRepo) SumTransactionAmounts(ctx context.Context, specs ...specification.Specification) (float64, error) {
	return f.sumAmounts(ctx, specs...)
}

func (f *fakeTxRepo) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	return f.findTransactions(ctx, specs...)
}

type fakeKycRepo struct {
	contract.KycRepository
	countKycs func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (f *fakeKycRepo) CountKycs(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return f.countKycs(ctx, specs...)
}

type fakeUow struct {
	unitofwork.UnitOfWork
	users *fakeUserRepo
	txs   *fakeTxRepo
	kycs  *fakeKycRepo
}

func (f *fakeUow) UserRepository() contract.UserRepository               { return f.users }
func (f *fakeUow) TransactionRepository() contract.TransactionRepository { return f.txs }
func (f *fakeUow) KycRepository() contract.KycRepository                 { return f.kycs }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeFallback struct {
	fallback.Provider
	users []*entity.User
	txs   []*entity.Transaction
	kycs  []*entity.UserKyc
	acts  []*entity.RecentUserActivity
}

func (f *fakeFallback) Users() []*entity.User                    { return f.users }
func (f *fakeFallback) Transactions() []*entity.Transaction      { return f.txs }
func (f *fakeFallback) Kycs() []*entity.UserKyc                  { return f.kycs }
func (f *fakeFallback) Activities() []*entity.RecentUserActivity { return f.acts }

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }
