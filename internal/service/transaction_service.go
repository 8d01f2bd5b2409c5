package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
	"fintech-admin-be/internal/schema"
)

type TransactionService interface {
	ListTransactions(ctx context.Context, req dto.ListRequest) ([]dto.TransactionResponse, bool, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	CreateTransaction(ctx context.Context, input map[string]any) (*dto.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	ListEntries(ctx context.Context, req dto.ListRequest) ([]dto.TransactionEntryResponse, bool, error)
	CreateEntry(ctx context.Context, input map[string]any) (*dto.TransactionEntryResponse, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.TransactionEntryResponse, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	ListTrails(ctx context.Context, req dto.ListRequest) ([]dto.VendorResponseTrailResponse, bool, error)
}

type transactionService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	audit      AuditPublisher
	log        logger.ILogger
}

func NewTransactionService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, audit AuditPublisher, log logger.ILogger) TransactionService {
	return &transactionService{
		uowFactory: uowFactory,
		fallback:   fb,
		audit:      audit,
		log:        log,
	}
}

func (s *transactionService) publishWrite(ctx context.Context, entityName, recordId, op string) {
	publishWriteEvent(ctx, s.audit, s.log, entityName, recordId, op)
}

// newTransactionReference builds a reference in the same shape the seed data
// uses, with a random suffix instead of a sequence.
func newTransactionReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

func (s *transactionService) ListTransactions(ctx context.Context, req dto.ListRequest) ([]dto.TransactionResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, err := uow.TransactionRepository().FindTransactions(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("transaction", "database unreachable, serving fallback transactions", map[string]interface{}{"error": err.Error()})
		txs = s.fallback.Transactions()
		degraded = true
	}

	txs = applyTable(schema.TransactionSchema(), txs, req)
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	return out, degraded, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx, err := uow.TransactionRepository().FindOneTransaction(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	res := toTransactionResponse(tx)
	return &res, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, input map[string]any) (*dto.TransactionResponse, error) {
	// Reference is read-only in the form, so it must be assigned here. It is
	// the key vendor callbacks match on and carries a unique index.
	draft, err := applyForm(schema.TransactionSchema(), entity.Transaction{
		Reference:         newTransactionReference(),
		TransactionType:   entity.TransactionTypeTransfer,
		TransactionStatus: entity.TransactionStatusPending,
		Currency:          entity.CurrencyNGN,
	}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TransactionRepository().CreateTransaction(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "transactions", draft.Id.String(), "create")

	res := toTransactionResponse(&draft)
	return &res, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.TransactionRepository().FindOneTransaction(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.TransactionSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.TransactionRepository().UpdateTransaction(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "transactions", draft.Id.String(), "update")

	res := toTransactionResponse(&draft)
	return &res, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TransactionRepository().DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "transactions", id.String(), "delete")
	return nil
}

// --- Entries ---

func (s *transactionService) ListEntries(ctx context.Context, req dto.ListRequest) ([]dto.TransactionEntryResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.TransactionRepository().FindEntries(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("transaction", "database unreachable, serving fallback entries", map[string]interface{}{"error": err.Error()})
		entries = s.fallback.Entries()
		degraded = true
	}

	entries = applyTable(schema.TransactionEntrySchema(), entries, req)
	out := make([]dto.TransactionEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out, degraded, nil
}

func (s *transactionService) CreateEntry(ctx context.Context, input map[string]any) (*dto.TransactionEntryResponse, error) {
	draft, err := applyForm(schema.TransactionEntrySchema(), entity.TransactionEntry{
		Direction: entity.DirectionCredit,
		Currency:  entity.CurrencyNGN,
	}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TransactionRepository().CreateEntry(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "transaction_entries", draft.Id.String(), "create")

	res := toEntryResponse(&draft)
	return &res, nil
}

func (s *transactionService) UpdateEntry(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.TransactionEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.TransactionRepository().FindOneEntry(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.TransactionEntrySchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.TransactionRepository().UpdateEntry(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "transaction_entries", draft.Id.String(), "update")

	res := toEntryResponse(&draft)
	return &res, nil
}

func (s *transactionService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TransactionRepository().DeleteEntry(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "transaction_entries", id.String(), "delete")
	return nil
}

// --- Vendor trails (read only from the admin surface) ---

func (s *transactionService) ListTrails(ctx context.Context, req dto.ListRequest) ([]dto.VendorResponseTrailResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	trails, err := uow.TransactionRepository().FindTrails(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("transaction", "database unreachable, serving fallback trails", map[string]interface{}{"error": err.Error()})
		trails = s.fallback.Trails()
		degraded = true
	}

	trails = applyTable(schema.VendorResponseTrailSchema(), trails, req)
	out := make([]dto.VendorResponseTrailResponse, 0, len(trails))
	for _, t := range trails {
		out = append(out, toTrailResponse(t))
	}
	return out, degraded, nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:                t.Id,
		UserId:            t.UserId,
		WalletId:          t.WalletId,
		Reference:         t.Reference,
		TransactionType:   string(t.TransactionType),
		TransactionStatus: string(t.TransactionStatus),
		Amount:            t.Amount,
		Fee:               t.Fee,
		Currency:          string(t.Currency),
		Narration:         t.Narration,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func toEntryResponse(e *entity.TransactionEntry) dto.TransactionEntryResponse {
	return dto.TransactionEntryResponse{
		Id:            e.Id,
		TransactionId: e.TransactionId,
		AccountId:     e.AccountId,
		Direction:     string(e.Direction),
		Amount:        e.Amount,
		Currency:      string(e.Currency),
		CreatedAt:     e.CreatedAt,
	}
}

func toTrailResponse(t *entity.VendorResponseTrail) dto.VendorResponseTrailResponse {
	return dto.VendorResponseTrailResponse{
		Id:             t.Id,
		TransactionId:  t.TransactionId,
		Vendor:         t.Vendor,
		Reference:      t.Reference,
		StatusCode:     t.StatusCode,
		VendorStatus:   t.VendorStatus,
		RequestPayload: t.RequestPayload,
		SignatureValid: t.SignatureValid,
		CreatedAt:      t.CreatedAt,
	}
}
