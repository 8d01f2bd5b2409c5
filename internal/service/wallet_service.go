package service

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
	"fintech-admin-be/internal/schema"
)

type WalletService interface {
	ListWallets(ctx context.Context, req dto.ListRequest) ([]dto.WalletResponse, bool, error)
	GetWallet(ctx context.Context, id uuid.UUID) (*dto.WalletResponse, error)
	CreateWallet(ctx context.Context, input map[string]any) (*dto.WalletResponse, error)
	UpdateWallet(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.WalletResponse, error)
	DeleteWallet(ctx context.Context, id uuid.UUID) error

	ListHistories(ctx context.Context, req dto.ListRequest) ([]dto.WalletHistoryResponse, bool, error)
	CreateHistory(ctx context.Context, input map[string]any) (*dto.WalletHistoryResponse, error)
	UpdateHistory(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.WalletHistoryResponse, error)
	DeleteHistory(ctx context.Context, id uuid.UUID) error
}

type walletService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	audit      AuditPublisher
	log        logger.ILogger
}

func NewWalletService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, audit AuditPublisher, log logger.ILogger) WalletService {
	return &walletService{
		uowFactory: uowFactory,
		fallback:   fb,
		audit:      audit,
		log:        log,
	}
}

func (s *walletService) publishWrite(ctx context.Context, entityName, recordId, op string) {
	publishWriteEvent(ctx, s.audit, s.log, entityName, recordId, op)
}

// Wallet screens show the most recently touched balances first, so ordering
// is by updated_at rather than created_at.

func (s *walletService) ListWallets(ctx context.Context, req dto.ListRequest) ([]dto.WalletResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	wallets, err := uow.WalletRepository().FindWallets(ctx, specification.OrderBy{Field: "updated_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("wallet", "database unreachable, serving fallback wallets", map[string]interface{}{"error": err.Error()})
		wallets = s.fallback.Wallets()
		degraded = true
	}

	wallets = applyTable(schema.WalletSchema(), wallets, req)
	out := make([]dto.WalletResponse, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, toWalletResponse(w))
	}
	return out, degraded, nil
}

func (s *walletService) GetWallet(ctx context.Context, id uuid.UUID) (*dto.WalletResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	wallet, err := uow.WalletRepository().FindOneWallet(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	res := toWalletResponse(wallet)
	return &res, nil
}

func (s *walletService) CreateWallet(ctx context.Context, input map[string]any) (*dto.WalletResponse, error) {
	draft, err := applyForm(schema.WalletSchema(), entity.Wallet{
		Currency: entity.CurrencyNGN,
		Status:   entity.WalletStatusActive,
	}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WalletRepository().CreateWallet(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "wallets", draft.Id.String(), "create")

	res := toWalletResponse(&draft)
	return &res, nil
}

func (s *walletService) UpdateWallet(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.WalletResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.WalletRepository().FindOneWallet(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.WalletSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.WalletRepository().UpdateWallet(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "wallets", draft.Id.String(), "update")

	res := toWalletResponse(&draft)
	return &res, nil
}

func (s *walletService) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WalletRepository().DeleteWallet(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "wallets", id.String(), "delete")
	return nil
}

// --- Histories ---

func (s *walletService) ListHistories(ctx context.Context, req dto.ListRequest) ([]dto.WalletHistoryResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	histories, err := uow.WalletRepository().FindHistories(ctx, specification.OrderBy{Field: "updated_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("wallet", "database unreachable, serving fallback histories", map[string]interface{}{"error": err.Error()})
		histories = s.fallback.Histories()
		degraded = true
	}

	histories = applyTable(schema.WalletHistorySchema(), histories, req)
	out := make([]dto.WalletHistoryResponse, 0, len(histories))
	for _, h := range histories {
		out = append(out, toHistoryResponse(h))
	}
	return out, degraded, nil
}

func (s *walletService) CreateHistory(ctx context.Context, input map[string]any) (*dto.WalletHistoryResponse, error) {
	draft, err := applyForm(schema.WalletHistorySchema(), entity.WalletHistory{Direction: entity.DirectionCredit}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WalletRepository().CreateHistory(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "wallet_histories", draft.Id.String(), "create")

	res := toHistoryResponse(&draft)
	return &res, nil
}

func (s *walletService) UpdateHistory(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.WalletHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.WalletRepository().FindOneHistory(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.WalletHistorySchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.WalletRepository().UpdateHistory(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "wallet_histories", draft.Id.String(), "update")

	res := toHistoryResponse(&draft)
	return &res, nil
}

func (s *walletService) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WalletRepository().DeleteHistory(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "wallet_histories", id.String(), "delete")
	return nil
}

func toWalletResponse(w *entity.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		Id:            w.Id,
		UserId:        w.UserId,
		AccountId:     w.AccountId,
		Currency:      string(w.Currency),
		Balance:       w.Balance,
		LedgerBalance: w.LedgerBalance,
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func toHistoryResponse(h *entity.WalletHistory) dto.WalletHistoryResponse {
	return dto.WalletHistoryResponse{
		Id:            h.Id,
		WalletId:      h.WalletId,
		UserId:        h.UserId,
		TransactionId: h.TransactionId,
		Direction:     string(h.Direction),
		Amount:        h.Amount,
		BalanceBefore: h.BalanceBefore,
		BalanceAfter:  h.BalanceAfter,
		Narration:     h.Narration,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}
