package service

import (
	"testing"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/schema"

	"github.com/stretchr/testify/assert"
)

type ledgerRow struct {
	Name    string
	Balance float64
	Group   string
}

func ledgerSchema() schema.Schema[ledgerRow] {
	return schema.Schema[ledgerRow]{
		Entity: "ledger",
		Fields: []schema.FieldSpec[ledgerRow]{
			{Name: "name", Kind: schema.FieldText,
				Get: func(r *ledgerRow) any { return r.Name },
				Set: func(r *ledgerRow, v any) { r.Name = v.(string) }},
			{Name: "balance", Kind: schema.FieldNumber,
				Get: func(r *ledgerRow) any { return r.Balance },
				Set: func(r *ledgerRow, v any) { r.Balance = v.(float64) }},
			{Name: "group", Kind: schema.FieldSelect, Options: []string{"STANDARD", "MERCHANT"},
				Get: func(r *ledgerRow) any { return r.Group },
				Set: func(r *ledgerRow, v any) { r.Group = v.(string) }},
			{Name: "id", Kind: schema.FieldText, ReadOnly: true,
				Get: func(r *ledgerRow) any { return "fixed" }},
		},
		Columns: []schema.ColumnSpec[ledgerRow]{
			{Key: "name", Header: "Name", Sortable: true, Value: func(r *ledgerRow) any { return r.Name }},
			{Key: "balance", Header: "Balance", Sortable: true, Value: func(r *ledgerRow) any { return r.Balance }},
		},
	}
}

func ledgerRows() []*ledgerRow {
	return []*ledgerRow{
		{Name: "charlie", Balance: 30},
		{Name: "alice", Balance: 10},
		{Name: "bob", Balance: 20},
	}
}

func TestApplyTableSortsThenFilters(t *testing.T) {
	sc := ledgerSchema()

	out := applyTable(sc, ledgerRows(), dto.ListRequest{SortBy: "name"})
	assert.Len(t, out, 3)
	assert.Equal(t, "alice", out[0].Name)
	assert.Equal(t, "charlie", out[2].Name)

	out = applyTable(sc, ledgerRows(), dto.ListRequest{SortBy: "balance", SortDir: "desc", Search: "b"})
	assert.Len(t, out, 1)
	assert.Equal(t, "bob", out[0].Name)
}

func TestApplyTableLeavesInputUntouched(t *testing.T) {
	rows := ledgerRows()
	applyTable(ledgerSchema(), rows, dto.ListRequest{SortBy: "name"})
	assert.Equal(t, "charlie", rows[0].Name)
}

func TestApplyFormWritesEditableFields(t *testing.T) {
	initial := ledgerRow{Name: "old", Balance: 5, Group: "STANDARD"}

	out, err := applyForm(ledgerSchema(), initial, map[string]any{
		"name":    "new name",
		"balance": "42.5",
		"group":   "MERCHANT",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new name", out.Name)
	assert.Equal(t, 42.5, out.Balance)
	assert.Equal(t, "MERCHANT", out.Group)
}

func TestApplyFormDropsUnknownAndReadOnly(t *testing.T) {
	initial := ledgerRow{Name: "keep"}

	out, err := applyForm(ledgerSchema(), initial, map[string]any{
		"id":        "tamper",
		"no_such":   "value",
		"balance":   1,
		"__proto__": "junk",
	})

	assert.NoError(t, err)
	assert.Equal(t, "keep", out.Name)
	assert.Equal(t, float64(1), out.Balance)
}

func TestApplyFormCoercionFailureIsValidation(t *testing.T) {
	_, err := applyForm(ledgerSchema(), ledgerRow{}, map[string]any{"group": "ADMIN"})
	assert.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
