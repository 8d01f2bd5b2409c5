package service

import (
	"context"
	"sync/atomic"
	"testing"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newDashboardFixture(users *fakeUserRepo, txs *fakeTxRepo, kycs *fakeKycRepo, fb fallback.Provider) DashboardService {
	return NewDashboardService(&fakeFactory{uow: &fakeUow{users: users, txs: txs, kycs: kycs}}, fb, noopLogger{})
}

func healthyRepos() (*fakeUserRepo, *fakeTxRepo, *fakeKycRepo) {
	users := &fakeUserRepo{
		countUsers: func(ctx context.Context, specs ...specification.Specification) (int64, error) {
			if len(specs) == 0 {
				return 10, nil
			}
			return 7, nil
		},
		findActivities: func(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentUserActivity, error) {
			return []*entity.RecentUserActivity{
				{Id: uuid.New(), UserId: "u-1", Activity: entity.ActivityLogin},
			}, nil
		},
	}
	txs := &fakeTxRepo{
		countTransactions: func(ctx context.Context, specs ...specification.Specification) (int64, error) {
			return 42, nil
		},
		sumAmounts: func(ctx context.Context, specs ...specification.Specification) (float64, error) {
			return 1250.75, nil
		},
		findTransactions: func(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
			return []*entity.Transaction{
				{Id: uuid.New(), Reference: "TXN-1", Amount: 500, TransactionStatus: entity.TransactionStatusSuccessful},
				{Id: uuid.New(), Reference: "TXN-2", Amount: 750.75, TransactionStatus: entity.TransactionStatusPending},
			}, nil
		},
	}
	kycs := &fakeKycRepo{
		countKycs: func(ctx context.Context, specs ...specification.Specification) (int64, error) {
			for _, s := range specs {
				if f, ok := s.(specification.FilterBy); ok && f.Value == string(entity.KycStatusPending) {
					return 3, nil
				}
			}
			return 5, nil
		},
	}
	return users, txs, kycs
}

func TestDashboardStatsAggregates(t *testing.T) {
	users, txs, kycs := healthyRepos()
	svc := newDashboardFixture(users, txs, kycs, &fakeFallback{})

	stats, err := svc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(7), stats.ActiveUsers)
	assert.Equal(t, int64(42), stats.TotalTransactions)
	assert.Equal(t, 1250.75, stats.TotalAmount)
	assert.Equal(t, int64(3), stats.PendingKyc)
	assert.Equal(t, int64(5), stats.CompletedKyc)
	assert.Len(t, stats.RecentTransactions, 2)
	assert.Equal(t, "TXN-1", stats.RecentTransactions[0].Reference)
	assert.Len(t, stats.RecentActivities, 1)
	assert.False(t, stats.Degraded)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestDashboardStatsCachedWithinTTL(t *testing.T) {
	users, txs, kycs := healthyRepos()
	var countCalls atomic.Int64
	inner := users.countUsers
	users.countUsers = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		countCalls.Add(1)
		return inner(ctx, specs...)
	}
	svc := newDashboardFixture(users, txs, kycs, &fakeFallback{})

	first, err := svc.GetStats(context.Background())
	assert.NoError(t, err)
	second, err := svc.GetStats(context.Background())
	assert.NoError(t, err)

	// Two count calls per compute (total and active); the second GetStats
	// served the cached snapshot and never touched the repositories.
	assert.Equal(t, int64(2), countCalls.Load())
	assert.Same(t, first, second)
}

func TestDashboardStatsDegradedUsesFallbackAndSkipsCache(t *testing.T) {
	var countCalls atomic.Int64
	users := &fakeUserRepo{
		countUsers: func(ctx context.Context, specs ...specification.Specification) (int64, error) {
			countCalls.Add(1)
			return 0, apperror.BackendUnavailable("db down", nil)
		},
	}
	fb := &fakeFallback{
		users: []*entity.User{
			{Id: uuid.New(), Status: entity.UserStatusActive},
			{Id: uuid.New(), Status: entity.UserStatusInactive},
		},
		txs: []*entity.Transaction{
			{Id: uuid.New(), Reference: "TXN-FB", Amount: 100.5},
			{Id: uuid.New(), Reference: "TXN-FB-2", Amount: 49.5},
		},
		kycs: []*entity.UserKyc{
			{Id: uuid.New(), Status: entity.KycStatusPending},
			{Id: uuid.New(), Status: entity.KycStatusCompleted},
			{Id: uuid.New(), Status: entity.KycStatusCompleted},
		},
		acts: []*entity.RecentUserActivity{
			{Id: uuid.New(), UserId: "u-1", Activity: entity.ActivityLogin},
		},
	}
	svc := newDashboardFixture(users, nil, nil, fb)

	stats, err := svc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.True(t, stats.Degraded)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(2), stats.TotalTransactions)
	assert.Equal(t, 150.0, stats.TotalAmount)
	assert.Equal(t, int64(1), stats.PendingKyc)
	assert.Equal(t, int64(2), stats.CompletedKyc)
	assert.Len(t, stats.RecentTransactions, 2)
	assert.Len(t, stats.RecentActivities, 1)

	// Degraded snapshots bypass the cache, so the next call hits the
	// repository again.
	_, err = svc.GetStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), countCalls.Load())
}

func TestDashboardStatsNonDegradedErrorSurfaces(t *testing.T) {
	users := &fakeUserRepo{
		countUsers: func(ctx context.Context, specs ...specification.Specification) (int64, error) {
			return 0, assert.AnError
		},
	}
	svc := newDashboardFixture(users, nil, nil, &fakeFallback{})

	_, err := svc.GetStats(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
