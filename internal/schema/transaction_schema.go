package schema

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/pkg/money"
)

func TransactionSchema() Schema[entity.Transaction] {
	return Schema[entity.Transaction]{
		Entity: "Transaction",
		Fields: []FieldSpec[entity.Transaction]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.Transaction) any { return t.Id.String() },
			},
			{
				Name: "userId", Label: "User ID", Kind: FieldText,
				Get: func(t *entity.Transaction) any { return t.UserId },
				Set: func(t *entity.Transaction, v any) { t.UserId = v.(string) },
			},
			{
				Name: "walletId", Label: "Wallet ID", Kind: FieldText,
				Get: func(t *entity.Transaction) any { return t.WalletId },
				Set: func(t *entity.Transaction, v any) { t.WalletId = v.(string) },
			},
			{
				Name: "reference", Label: "Reference", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.Transaction) any { return t.Reference },
			},
			{
				Name: "transactionType", Label: "Type", Kind: FieldSelect,
				Options: []string{
					string(entity.TransactionTypeTransfer),
					string(entity.TransactionTypeDeposit),
					string(entity.TransactionTypeWithdrawal),
					string(entity.TransactionTypeBillPayment),
					string(entity.TransactionTypeAirtime),
				},
				Get: func(t *entity.Transaction) any { return string(t.TransactionType) },
				Set: func(t *entity.Transaction, v any) { t.TransactionType = entity.TransactionType(v.(string)) },
			},
			{
				Name: "transactionStatus", Label: "Status", Kind: FieldSelect,
				Options: []string{
					string(entity.TransactionStatusPending),
					string(entity.TransactionStatusSuccessful),
					string(entity.TransactionStatusFailed),
					string(entity.TransactionStatusReversed),
				},
				Get: func(t *entity.Transaction) any { return string(t.TransactionStatus) },
				Set: func(t *entity.Transaction, v any) { t.TransactionStatus = entity.TransactionStatus(v.(string)) },
			},
			{
				Name: "amount", Label: "Amount", Kind: FieldNumber,
				Get: func(t *entity.Transaction) any { return t.Amount },
				Set: func(t *entity.Transaction, v any) { t.Amount = v.(float64) },
			},
			{
				Name: "fee", Label: "Fee", Kind: FieldNumber,
				Get: func(t *entity.Transaction) any { return t.Fee },
				Set: func(t *entity.Transaction, v any) { t.Fee = v.(float64) },
			},
			{
				Name: "currency", Label: "Currency", Kind: FieldSelect, Options: currencyOptions,
				Get: func(t *entity.Transaction) any { return string(t.Currency) },
				Set: func(t *entity.Transaction, v any) { t.Currency = entity.Currency(v.(string)) },
			},
			{
				Name: "narration", Label: "Narration", Kind: FieldTextarea,
				Get: func(t *entity.Transaction) any { return t.Narration },
				Set: func(t *entity.Transaction, v any) { t.Narration = v.(string) },
			},
			{
				Name: "createdAt", Label: "Created", Kind: FieldDate, ReadOnly: true,
				Get: func(t *entity.Transaction) any { return t.CreatedAt },
			},
		},
		Columns: []ColumnSpec[entity.Transaction]{
			{Key: "reference", Header: "Reference", Sortable: true, Value: func(t *entity.Transaction) any { return t.Reference }},
			{Key: "userId", Header: "User ID", Sortable: true, Value: func(t *entity.Transaction) any { return t.UserId }},
			{Key: "transactionType", Header: "Type", Sortable: true, Value: func(t *entity.Transaction) any { return string(t.TransactionType) }},
			{Key: "transactionStatus", Header: "Status", Sortable: true, Value: func(t *entity.Transaction) any { return string(t.TransactionStatus) }},
			{
				Key: "amount", Header: "Amount", Sortable: true,
				Value:  func(t *entity.Transaction) any { return t.Amount },
				Render: func(t *entity.Transaction) string { return money.Format(t.Amount) },
			},
			{Key: "currency", Header: "Currency", Value: func(t *entity.Transaction) any { return string(t.Currency) }},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(t *entity.Transaction) any { return t.CreatedAt }},
		},
	}
}

func TransactionEntrySchema() Schema[entity.TransactionEntry] {
	return Schema[entity.TransactionEntry]{
		Entity: "TransactionEntry",
		Fields: []FieldSpec[entity.TransactionEntry]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(e *entity.TransactionEntry) any { return e.Id.String() },
			},
			{
				Name: "transactionId", Label: "Transaction ID", Kind: FieldText,
				Get: func(e *entity.TransactionEntry) any { return e.TransactionId },
				Set: func(e *entity.TransactionEntry, v any) { e.TransactionId = v.(string) },
			},
			{
				Name: "accountId", Label: "Account ID", Kind: FieldText,
				Get: func(e *entity.TransactionEntry) any { return e.AccountId },
				Set: func(e *entity.TransactionEntry, v any) { e.AccountId = v.(string) },
			},
			{
				Name: "direction", Label: "Direction", Kind: FieldSelect, Options: directionOptions,
				Get: func(e *entity.TransactionEntry) any { return string(e.Direction) },
				Set: func(e *entity.TransactionEntry, v any) { e.Direction = entity.EntryDirection(v.(string)) },
			},
			{
				Name: "amount", Label: "Amount", Kind: FieldNumber,
				Get: func(e *entity.TransactionEntry) any { return e.Amount },
				Set: func(e *entity.TransactionEntry, v any) { e.Amount = v.(float64) },
			},
			{
				Name: "currency", Label: "Currency", Kind: FieldSelect, Options: currencyOptions,
				Get: func(e *entity.TransactionEntry) any { return string(e.Currency) },
				Set: func(e *entity.TransactionEntry, v any) { e.Currency = entity.Currency(v.(string)) },
			},
		},
		Columns: []ColumnSpec[entity.TransactionEntry]{
			{Key: "transactionId", Header: "Transaction", Sortable: true, Value: func(e *entity.TransactionEntry) any { return e.TransactionId }},
			{Key: "accountId", Header: "Account", Value: func(e *entity.TransactionEntry) any { return e.AccountId }},
			{Key: "direction", Header: "Direction", Sortable: true, Value: func(e *entity.TransactionEntry) any { return string(e.Direction) }},
			{
				Key: "amount", Header: "Amount", Sortable: true,
				Value:  func(e *entity.TransactionEntry) any { return e.Amount },
				Render: func(e *entity.TransactionEntry) string { return money.Format(e.Amount) },
			},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(e *entity.TransactionEntry) any { return e.CreatedAt }},
		},
	}
}

func VendorResponseTrailSchema() Schema[entity.VendorResponseTrail] {
	return Schema[entity.VendorResponseTrail]{
		Entity: "VendorResponseTrail",
		Fields: []FieldSpec[entity.VendorResponseTrail]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.Id.String() },
			},
			{
				Name: "transactionId", Label: "Transaction ID", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.TransactionId },
			},
			{
				Name: "vendor", Label: "Vendor", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.Vendor },
			},
			{
				Name: "reference", Label: "Reference", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.Reference },
			},
			{
				Name: "vendorStatus", Label: "Vendor Status", Kind: FieldText, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.VendorStatus },
			},
			{
				Name: "requestPayload", Label: "Payload", Kind: FieldTextarea, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.RequestPayload },
			},
			{
				Name: "signatureValid", Label: "Signature Valid", Kind: FieldSwitch, ReadOnly: true,
				Get: func(t *entity.VendorResponseTrail) any { return t.SignatureValid },
			},
		},
		Columns: []ColumnSpec[entity.VendorResponseTrail]{
			{Key: "vendor", Header: "Vendor", Sortable: true, Value: func(t *entity.VendorResponseTrail) any { return t.Vendor }},
			{Key: "reference", Header: "Reference", Sortable: true, Value: func(t *entity.VendorResponseTrail) any { return t.Reference }},
			{Key: "vendorStatus", Header: "Status", Sortable: true, Value: func(t *entity.VendorResponseTrail) any { return t.VendorStatus }},
			{Key: "signatureValid", Header: "Signature", Value: func(t *entity.VendorResponseTrail) any { return t.SignatureValid }},
			{Key: "createdAt", Header: "Received", Sortable: true, Value: func(t *entity.VendorResponseTrail) any { return t.CreatedAt }},
		},
	}
}
