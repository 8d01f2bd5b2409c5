package mapper

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/model"
	"fintech-admin-be/pkg/money"
)

// WalletMapper is the only place wallet balances cross the minor-unit
// boundary. Services and controllers above it never rescale.
type WalletMapper struct{}

func NewWalletMapper() *WalletMapper {
	return &WalletMapper{}
}

func (m *WalletMapper) ToEntity(w *model.Wallet) *entity.Wallet {
	if w == nil {
		return nil
	}
	return &entity.Wallet{
		Id:            w.Id,
		UserId:        w.UserId,
		AccountId:     w.AccountId,
		Currency:      entity.Currency(w.Currency),
		Balance:       money.FromMinor(w.Balance),
		LedgerBalance: money.FromMinor(w.LedgerBalance),
		Status:        entity.WalletStatus(w.Status),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func (m *WalletMapper) ToModel(w *entity.Wallet) *model.Wallet {
	if w == nil {
		return nil
	}
	return &model.Wallet{
		Id:            w.Id,
		UserId:        w.UserId,
		AccountId:     w.AccountId,
		Currency:      string(w.Currency),
		Balance:       money.ToMinor(w.Balance),
		LedgerBalance: money.ToMinor(w.LedgerBalance),
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func (m *WalletMapper) ToEntities(wallets []*model.Wallet) []*entity.Wallet {
	entities := make([]*entity.Wallet, len(wallets))
	for i, w := range wallets {
		entities[i] = m.ToEntity(w)
	}
	return entities
}

func (m *WalletMapper) HistoryToEntity(h *model.WalletHistory) *entity.WalletHistory {
	if h == nil {
		return nil
	}
	return &entity.WalletHistory{
		Id:            h.Id,
		WalletId:      h.WalletId,
		UserId:        h.UserId,
		TransactionId: h.TransactionId,
		Direction:     entity.EntryDirection(h.Direction),
		Amount:        money.FromMinor(h.Amount),
		BalanceBefore: money.FromMinor(h.BalanceBefore),
		BalanceAfter:  money.FromMinor(h.BalanceAfter),
		Narration:     h.Narration,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func (m *WalletMapper) HistoryToModel(h *entity.WalletHistory) *model.WalletHistory {
	if h == nil {
		return nil
	}
	return &model.WalletHistory{
		Id:            h.Id,
		WalletId:      h.WalletId,
		UserId:        h.UserId,
		TransactionId: h.TransactionId,
		Direction:     string(h.Direction),
		Amount:        money.ToMinor(h.Amount),
		BalanceBefore: money.ToMinor(h.BalanceBefore),
		BalanceAfter:  money.ToMinor(h.BalanceAfter),
		Narration:     h.Narration,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func (m *WalletMapper) HistoryToEntities(histories []*model.WalletHistory) []*entity.WalletHistory {
	entities := make([]*entity.WalletHistory, len(histories))
	for i, h := range histories {
		entities[i] = m.HistoryToEntity(h)
	}
	return entities
}
