package datatable

import (
	"testing"
	"time"

	"fintech-admin-be/internal/schema"

	"github.com/stretchr/testify/assert"
)

type account struct {
	Name    string
	Balance float64
	Opened  time.Time
}

func accountColumns() []schema.ColumnSpec[account] {
	return []schema.ColumnSpec[account]{
		{Key: "name", Header: "Name", Sortable: true, Value: func(a *account) any { return a.Name }},
		{Key: "balance", Header: "Balance", Sortable: true, Value: func(a *account) any { return a.Balance }},
		{Key: "opened", Header: "Opened", Sortable: true, Value: func(a *account) any { return a.Opened }},
	}
}

func sampleAccounts() []account {
	return []account{
		{Name: "Charlie", Balance: 50, Opened: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "alice", Balance: 200, Opened: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Bob", Balance: 125.50, Opened: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func names(rows []account) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestRowsNoState(t *testing.T) {
	tbl := New(accountColumns())
	data := sampleAccounts()

	rows := tbl.Rows(data)

	assert.Equal(t, names(data), names(rows))
	// The input is copied, never reordered in place.
	rows[0] = account{Name: "mutated"}
	assert.Equal(t, "Charlie", data[0].Name)
}

func TestToggleSortCycles(t *testing.T) {
	tbl := New(accountColumns())
	data := sampleAccounts()

	tbl.ToggleSort("balance")
	assert.Equal(t, []string{"Charlie", "Bob", "alice"}, names(tbl.Rows(data)))

	tbl.ToggleSort("balance")
	assert.Equal(t, []string{"alice", "Bob", "Charlie"}, names(tbl.Rows(data)))

	// Third toggle is back to ascending.
	tbl.ToggleSort("balance")
	assert.Equal(t, []string{"Charlie", "Bob", "alice"}, names(tbl.Rows(data)))
}

func TestToggleSortSwitchingColumnResetsAscending(t *testing.T) {
	tbl := New(accountColumns())
	data := sampleAccounts()

	tbl.ToggleSort("balance")
	tbl.ToggleSort("balance") // balance desc
	tbl.ToggleSort("opened")  // new column, ascending again

	assert.Equal(t, []string{"alice", "Bob", "Charlie"}, names(tbl.Rows(data)))
}

func TestToggleSortUnknownOrNonSortableIgnored(t *testing.T) {
	cols := accountColumns()
	cols[0].Sortable = false
	tbl := New(cols)
	data := sampleAccounts()

	tbl.ToggleSort("name")
	tbl.ToggleSort("missing")

	assert.Equal(t, names(data), names(tbl.Rows(data)))
}

func TestSearchCaseInsensitiveAcrossColumns(t *testing.T) {
	tbl := New(accountColumns())
	data := sampleAccounts()

	tbl.SetSearch("ALICE")
	assert.Equal(t, []string{"alice"}, names(tbl.Rows(data)))

	// Numeric cells are searched through their string form.
	tbl.SetSearch("125.5")
	assert.Equal(t, []string{"Bob"}, names(tbl.Rows(data)))
}

func TestSearchNoMatchReturnsEmptyNonNil(t *testing.T) {
	tbl := New(accountColumns())
	tbl.SetSearch("zebra")

	rows := tbl.Rows(sampleAccounts())

	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestSortAppliedBeforeFilter(t *testing.T) {
	tbl := New(accountColumns())
	data := append(sampleAccounts(), account{Name: "Bobby", Balance: 10})

	tbl.SetSort("balance", false)
	tbl.SetSearch("bob")

	assert.Equal(t, []string{"Bobby", "Bob"}, names(tbl.Rows(data)))
}

func TestActionsFollowCallbacks(t *testing.T) {
	tbl := New(accountColumns())
	assert.Empty(t, tbl.Actions())

	var edited, deleted string
	tbl.OnEdit = func(a account) { edited = a.Name }
	tbl.OnDelete = func(a account) { deleted = a.Name }

	assert.Equal(t, []Action{ActionEdit, ActionDelete}, tbl.Actions())

	tbl.Invoke(ActionEdit, account{Name: "alice"})
	tbl.Invoke(ActionDelete, account{Name: "Bob"})
	tbl.Invoke(ActionView, account{Name: "Charlie"}) // nil callback, no-op

	assert.Equal(t, "alice", edited)
	assert.Equal(t, "Bob", deleted)
}
