// Package datatable is the generic list viewer behind every entity screen:
// one free-text search across all columns, single-column toggle sort and a
// per-row action menu that delegates to caller-supplied callbacks.
package datatable

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fintech-admin-be/internal/schema"
)

type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

type Table[T any] struct {
	columns []schema.ColumnSpec[T]

	search   string
	sortKey  string
	sortDesc bool

	// Row action callbacks; a nil callback removes the menu entry.
	OnView   func(T)
	OnEdit   func(T)
	OnDelete func(T)
}

func New[T any](columns []schema.ColumnSpec[T]) *Table[T] {
	return &Table[T]{columns: columns}
}

func (t *Table[T]) Columns() []schema.ColumnSpec[T] {
	return t.columns
}

// SetSearch replaces the active search term. An empty term is a no-op filter.
func (t *Table[T]) SetSearch(term string) {
	t.search = term
}

// ToggleSort cycles the named column asc -> desc -> asc. Selecting a
// different column resets to ascending. Non-sortable columns are ignored.
func (t *Table[T]) ToggleSort(key string) {
	col, ok := t.column(key)
	if !ok || !col.Sortable {
		return
	}
	if t.sortKey == key {
		t.sortDesc = !t.sortDesc
		return
	}
	t.sortKey = key
	t.sortDesc = false
}

// SetSort sets the sort state directly, used when sort arrives as query
// parameters instead of header clicks.
func (t *Table[T]) SetSort(key string, desc bool) {
	if col, ok := t.column(key); ok && col.Sortable {
		t.sortKey = key
		t.sortDesc = desc
	}
}

// Rows applies the current sort and then the current search filter. The
// input slice is never mutated; with no matches an empty (non-nil) slice is
// returned so callers can render the "no results" row.
func (t *Table[T]) Rows(data []T) []T {
	rows := make([]T, len(data))
	copy(rows, data)

	if t.sortKey != "" {
		if col, ok := t.column(t.sortKey); ok {
			sort.SliceStable(rows, func(i, j int) bool {
				if t.sortDesc {
					i, j = j, i
				}
				return valueLess(col.Value(&rows[i]), col.Value(&rows[j]))
			})
		}
	}

	if t.search == "" {
		return rows
	}

	term := strings.ToLower(t.search)
	filtered := make([]T, 0, len(rows))
	for i := range rows {
		if t.matches(&rows[i], term) {
			filtered = append(filtered, rows[i])
		}
	}
	return filtered
}

// Actions lists the menu entries available given the supplied callbacks.
func (t *Table[T]) Actions() []Action {
	var actions []Action
	if t.OnView != nil {
		actions = append(actions, ActionView)
	}
	if t.OnEdit != nil {
		actions = append(actions, ActionEdit)
	}
	if t.OnDelete != nil {
		actions = append(actions, ActionDelete)
	}
	return actions
}

// Invoke fires the callback for one row. The table itself never mutates;
// any state change is the caller's job.
func (t *Table[T]) Invoke(action Action, row T) {
	switch action {
	case ActionView:
		if t.OnView != nil {
			t.OnView(row)
		}
	case ActionEdit:
		if t.OnEdit != nil {
			t.OnEdit(row)
		}
	case ActionDelete:
		if t.OnDelete != nil {
			t.OnDelete(row)
		}
	}
}

func (t *Table[T]) column(key string) (schema.ColumnSpec[T], bool) {
	for _, c := range t.columns {
		if c.Key == key {
			return c, true
		}
	}
	return schema.ColumnSpec[T]{}, false
}

func (t *Table[T]) matches(row *T, term string) bool {
	for _, c := range t.columns {
		if strings.Contains(strings.ToLower(c.CellString(row)), term) {
			return true
		}
	}
	return false
}

// valueLess compares two cell values with their native ordering: numbers
// numerically, timestamps chronologically, everything else as strings.
func valueLess(a, b any) bool {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return !av && bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}
