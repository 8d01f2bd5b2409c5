package schema

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/pkg/money"
)

var currencyOptions = []string{
	string(entity.CurrencyNGN),
	string(entity.CurrencyUSD),
	string(entity.CurrencyGHS),
	string(entity.CurrencyKES),
}

var directionOptions = []string{
	string(entity.DirectionCredit),
	string(entity.DirectionDebit),
}

func WalletSchema() Schema[entity.Wallet] {
	return Schema[entity.Wallet]{
		Entity: "Wallet",
		Fields: []FieldSpec[entity.Wallet]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(w *entity.Wallet) any { return w.Id.String() },
			},
			{
				Name: "userId", Label: "User ID", Kind: FieldText,
				Get: func(w *entity.Wallet) any { return w.UserId },
				Set: func(w *entity.Wallet, v any) { w.UserId = v.(string) },
			},
			{
				Name: "accountId", Label: "Account ID", Kind: FieldText,
				Get: func(w *entity.Wallet) any { return w.AccountId },
				Set: func(w *entity.Wallet, v any) { w.AccountId = v.(string) },
			},
			{
				Name: "currency", Label: "Currency", Kind: FieldSelect, Options: currencyOptions,
				Get: func(w *entity.Wallet) any { return string(w.Currency) },
				Set: func(w *entity.Wallet, v any) { w.Currency = entity.Currency(v.(string)) },
			},
			{
				Name: "balance", Label: "Balance", Kind: FieldNumber,
				Get: func(w *entity.Wallet) any { return w.Balance },
				Set: func(w *entity.Wallet, v any) { w.Balance = v.(float64) },
			},
			{
				Name: "ledgerBalance", Label: "Ledger Balance", Kind: FieldNumber,
				Get: func(w *entity.Wallet) any { return w.LedgerBalance },
				Set: func(w *entity.Wallet, v any) { w.LedgerBalance = v.(float64) },
			},
			{
				Name: "status", Label: "Status", Kind: FieldSelect,
				Options: []string{
					string(entity.WalletStatusActive),
					string(entity.WalletStatusFrozen),
					string(entity.WalletStatusClosed),
				},
				Get: func(w *entity.Wallet) any { return string(w.Status) },
				Set: func(w *entity.Wallet, v any) { w.Status = entity.WalletStatus(v.(string)) },
			},
		},
		Columns: []ColumnSpec[entity.Wallet]{
			{Key: "userId", Header: "User ID", Sortable: true, Value: func(w *entity.Wallet) any { return w.UserId }},
			{Key: "accountId", Header: "Account", Value: func(w *entity.Wallet) any { return w.AccountId }},
			{Key: "currency", Header: "Currency", Sortable: true, Value: func(w *entity.Wallet) any { return string(w.Currency) }},
			{
				Key: "balance", Header: "Balance", Sortable: true,
				Value:  func(w *entity.Wallet) any { return w.Balance },
				Render: func(w *entity.Wallet) string { return money.Format(w.Balance) },
			},
			{Key: "status", Header: "Status", Sortable: true, Value: func(w *entity.Wallet) any { return string(w.Status) }},
			{Key: "updatedAt", Header: "Updated", Sortable: true, Value: func(w *entity.Wallet) any { return w.UpdatedAt }},
		},
	}
}

func WalletHistorySchema() Schema[entity.WalletHistory] {
	return Schema[entity.WalletHistory]{
		Entity: "WalletHistory",
		Fields: []FieldSpec[entity.WalletHistory]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(h *entity.WalletHistory) any { return h.Id.String() },
			},
			{
				Name: "walletId", Label: "Wallet ID", Kind: FieldText,
				Get: func(h *entity.WalletHistory) any { return h.WalletId },
				Set: func(h *entity.WalletHistory, v any) { h.WalletId = v.(string) },
			},
			{
				Name: "transactionId", Label: "Transaction ID", Kind: FieldText,
				Get: func(h *entity.WalletHistory) any { return h.TransactionId },
				Set: func(h *entity.WalletHistory, v any) { h.TransactionId = v.(string) },
			},
			{
				Name: "direction", Label: "Direction", Kind: FieldSelect, Options: directionOptions,
				Get: func(h *entity.WalletHistory) any { return string(h.Direction) },
				Set: func(h *entity.WalletHistory, v any) { h.Direction = entity.EntryDirection(v.(string)) },
			},
			{
				Name: "amount", Label: "Amount", Kind: FieldNumber,
				Get: func(h *entity.WalletHistory) any { return h.Amount },
				Set: func(h *entity.WalletHistory, v any) { h.Amount = v.(float64) },
			},
			{
				Name: "narration", Label: "Narration", Kind: FieldTextarea,
				Get: func(h *entity.WalletHistory) any { return h.Narration },
				Set: func(h *entity.WalletHistory, v any) { h.Narration = v.(string) },
			},
		},
		Columns: []ColumnSpec[entity.WalletHistory]{
			{Key: "walletId", Header: "Wallet", Sortable: true, Value: func(h *entity.WalletHistory) any { return h.WalletId }},
			{Key: "direction", Header: "Direction", Sortable: true, Value: func(h *entity.WalletHistory) any { return string(h.Direction) }},
			{
				Key: "amount", Header: "Amount", Sortable: true,
				Value:  func(h *entity.WalletHistory) any { return h.Amount },
				Render: func(h *entity.WalletHistory) string { return money.Format(h.Amount) },
			},
			{
				Key: "balanceAfter", Header: "Balance After", Sortable: true,
				Value:  func(h *entity.WalletHistory) any { return h.BalanceAfter },
				Render: func(h *entity.WalletHistory) string { return money.Format(h.BalanceAfter) },
			},
			{Key: "narration", Header: "Narration", Value: func(h *entity.WalletHistory) any { return h.Narration }},
			{Key: "updatedAt", Header: "Updated", Sortable: true, Value: func(h *entity.WalletHistory) any { return h.UpdatedAt }},
		},
	}
}
