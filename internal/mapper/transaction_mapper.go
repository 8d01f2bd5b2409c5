package mapper

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/model"
	"fintech-admin-be/pkg/money"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:                t.Id,
		UserId:            t.UserId,
		WalletId:          t.WalletId,
		Reference:         t.Reference,
		TransactionType:   entity.TransactionType(t.TransactionType),
		TransactionStatus: entity.TransactionStatus(t.TransactionStatus),
		Amount:            money.FromMinor(t.Amount),
		Fee:               money.FromMinor(t.Fee),
		Currency:          entity.Currency(t.Currency),
		Narration:         t.Narration,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:                t.Id,
		UserId:            t.UserId,
		WalletId:          t.WalletId,
		Reference:         t.Reference,
		TransactionType:   string(t.TransactionType),
		TransactionStatus: string(t.TransactionStatus),
		Amount:            money.ToMinor(t.Amount),
		Fee:               money.ToMinor(t.Fee),
		Currency:          string(t.Currency),
		Narration:         t.Narration,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToEntities(txs []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(txs))
	for i, t := range txs {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TransactionMapper) EntryToEntity(e *model.TransactionEntry) *entity.TransactionEntry {
	if e == nil {
		return nil
	}
	return &entity.TransactionEntry{
		Id:            e.Id,
		TransactionId: e.TransactionId,
		AccountId:     e.AccountId,
		Direction:     entity.EntryDirection(e.Direction),
		Amount:        money.FromMinor(e.Amount),
		Currency:      entity.Currency(e.Currency),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *TransactionMapper) EntryToModel(e *entity.TransactionEntry) *model.TransactionEntry {
	if e == nil {
		return nil
	}
	return &model.TransactionEntry{
		Id:            e.Id,
		TransactionId: e.TransactionId,
		AccountId:     e.AccountId,
		Direction:     string(e.Direction),
		Amount:        money.ToMinor(e.Amount),
		Currency:      string(e.Currency),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *TransactionMapper) EntryToEntities(entries []*model.TransactionEntry) []*entity.TransactionEntry {
	entities := make([]*entity.TransactionEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.EntryToEntity(e)
	}
	return entities
}

func (m *TransactionMapper) TrailToEntity(t *model.VendorResponseTrail) *entity.VendorResponseTrail {
	if t == nil {
		return nil
	}
	return &entity.VendorResponseTrail{
		Id:             t.Id,
		TransactionId:  t.TransactionId,
		Vendor:         t.Vendor,
		Reference:      t.Reference,
		StatusCode:     t.StatusCode,
		VendorStatus:   t.VendorStatus,
		RequestPayload: t.RequestPayload,
		SignatureValid: t.SignatureValid,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *TransactionMapper) TrailToModel(t *entity.VendorResponseTrail) *model.VendorResponseTrail {
	if t == nil {
		return nil
	}
	return &model.VendorResponseTrail{
		Id:             t.Id,
		TransactionId:  t.TransactionId,
		Vendor:         t.Vendor,
		Reference:      t.Reference,
		StatusCode:     t.StatusCode,
		VendorStatus:   t.VendorStatus,
		RequestPayload: t.RequestPayload,
		SignatureValid: t.SignatureValid,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *TransactionMapper) TrailToEntities(trails []*model.VendorResponseTrail) []*entity.VendorResponseTrail {
	entities := make([]*entity.VendorResponseTrail, len(trails))
	for i, t := range trails {
		entities[i] = m.TrailToEntity(t)
	}
	return entities
}
