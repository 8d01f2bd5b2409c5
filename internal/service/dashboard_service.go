package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
	recentLimit   = 5
)

type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetLogs(level string, limit, offset int) ([]dto.LogListResponse, error)
	GetLogById(id string) (*dto.LogDetailResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	cache      *cache.Cache
	log        logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, log logger.ILogger) DashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		fallback:   fb,
		cache:      cache.New(statsCacheTTL, time.Minute),
		log:        log,
	}
}

// GetStats aggregates the landing-screen numbers. The result is cached
// briefly; the dashboard polls and the counts are expensive together.
func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if cached, found := s.cache.Get(statsCacheKey); found {
		return cached.(*dto.DashboardStatsResponse), nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	// Degraded snapshots are not cached so recovery is picked up immediately.
	if !stats.Degraded {
		s.cache.Set(statsCacheKey, stats, cache.DefaultExpiration)
	}
	return stats, nil
}

func (s *dashboardService) computeStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()
	txs := uow.TransactionRepository()
	kycs := uow.KycRepository()

	totalUsers, err := users.CountUsers(ctx)
	if err != nil {
		if !degradedRead(err) {
			return nil, err
		}
		s.log.Warn("dashboard", "database unreachable, computing stats from fallback data", map[string]interface{}{"error": err.Error()})
		return s.fallbackStats(), nil
	}

	activeUsers, err := users.CountUsers(ctx, specification.ByStatus{Status: string(entity.UserStatusActive)})
	if err != nil {
		return nil, err
	}
	totalTransactions, err := txs.CountTransactions(ctx)
	if err != nil {
		return nil, err
	}
	totalAmount, err := txs.SumTransactionAmounts(ctx)
	if err != nil {
		return nil, err
	}
	pendingKyc, err := kycs.CountKycs(ctx, specification.FilterBy{Field: "status", Value: string(entity.KycStatusPending)})
	if err != nil {
		return nil, err
	}
	completedKyc, err := kycs.CountKycs(ctx, specification.FilterBy{Field: "status", Value: string(entity.KycStatusCompleted)})
	if err != nil {
		return nil, err
	}

	recentTxs, err := txs.FindTransactions(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentLimit})
	if err != nil {
		return nil, err
	}
	recentActs, err := users.FindActivities(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentLimit})
	if err != nil {
		return nil, err
	}

	return s.buildStats(totalUsers, activeUsers, totalTransactions, totalAmount, pendingKyc, completedKyc, recentTxs, recentActs, false), nil
}

// fallbackStats derives the same shape from the static dataset.
func (s *dashboardService) fallbackStats() *dto.DashboardStatsResponse {
	users := s.fallback.Users()
	txs := s.fallback.Transactions()
	kycs := s.fallback.Kycs()
	acts := s.fallback.Activities()

	var activeUsers int64
	for _, u := range users {
		if u.Status == entity.UserStatusActive {
			activeUsers++
		}
	}
	var totalAmount float64
	for _, t := range txs {
		totalAmount += t.Amount
	}
	var pendingKyc, completedKyc int64
	for _, k := range kycs {
		switch k.Status {
		case entity.KycStatusPending:
			pendingKyc++
		case entity.KycStatusCompleted:
			completedKyc++
		}
	}

	if len(txs) > recentLimit {
		txs = txs[:recentLimit]
	}
	if len(acts) > recentLimit {
		acts = acts[:recentLimit]
	}
	return s.buildStats(int64(len(users)), activeUsers, int64(len(s.fallback.Transactions())), totalAmount, pendingKyc, completedKyc, txs, acts, true)
}

func (s *dashboardService) buildStats(totalUsers, activeUsers, totalTransactions int64, totalAmount float64, pendingKyc, completedKyc int64, recentTxs []*entity.Transaction, recentActs []*entity.RecentUserActivity, degraded bool) *dto.DashboardStatsResponse {
	txOut := make([]dto.TransactionResponse, 0, len(recentTxs))
	for _, t := range recentTxs {
		txOut = append(txOut, toTransactionResponse(t))
	}
	actOut := make([]dto.RecentActivityResponse, 0, len(recentActs))
	for _, a := range recentActs {
		actOut = append(actOut, toActivityResponse(a))
	}
	return &dto.DashboardStatsResponse{
		TotalUsers:         totalUsers,
		ActiveUsers:        activeUsers,
		TotalTransactions:  totalTransactions,
		TotalAmount:        totalAmount,
		PendingKyc:         pendingKyc,
		CompletedKyc:       completedKyc,
		RecentTransactions: txOut,
		RecentActivities:   actOut,
		Degraded:           degraded,
		GeneratedAt:        time.Now().UTC(),
	}
}

func (s *dashboardService) GetLogs(level string, limit, offset int) ([]dto.LogListResponse, error) {
	entries, err := s.log.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLogResponse(e))
	}
	return out, nil
}

func (s *dashboardService) GetLogById(id string) (*dto.LogDetailResponse, error) {
	entry, err := s.log.GetLogById(id)
	if err != nil {
		return nil, err
	}
	res := dto.LogDetailResponse{
		LogListResponse: toLogResponse(*entry),
		Details:         entry.Details,
	}
	return &res, nil
}

func toLogResponse(e logger.LogEntry) dto.LogListResponse {
	createdAt, _ := time.Parse(time.RFC3339, e.Timestamp)
	return dto.LogListResponse{
		Id:        e.Id,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		CreatedAt: createdAt,
	}
}
