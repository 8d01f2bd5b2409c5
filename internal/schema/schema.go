// Package schema is the declarative registry the generic table and form
// engines are driven by. Adding an entity to the back office means adding one
// Schema value here; the engines themselves never change.
package schema

import (
	"fmt"
	"time"
)

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
	FieldSwitch   FieldKind = "switch"
	FieldDate     FieldKind = "date"
)

// FieldSpec describes one editable field of an entity. Get and Set bind the
// spec to the entity type, so fields are checked at compile time instead of
// being looked up through untyped string maps.
//
// Set receives a value already coerced to the kind's canonical type:
// string for text/textarea/select, float64 for number, bool for switch and
// time.Time (UTC) for date. Set is nil for read-only fields.
type FieldSpec[T any] struct {
	Name        string
	Label       string
	Kind        FieldKind
	Options     []string
	ReadOnly    bool
	Placeholder string
	Get         func(*T) any
	Set         func(*T, any)
}

// ColumnSpec describes one display column. Value yields the raw value used
// for sorting and searching; Render overrides the default string form.
type ColumnSpec[T any] struct {
	Key      string
	Header   string
	Sortable bool
	Value    func(*T) any
	Render   func(*T) string
}

// CellString is the string representation of a column cell, used by the
// table engine for search and for plain display.
func (c ColumnSpec[T]) CellString(row *T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	v := c.Value(row)
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v)
}

type Schema[T any] struct {
	Entity  string
	Fields  []FieldSpec[T]
	Columns []ColumnSpec[T]
}

func (s Schema[T]) Field(name string) (FieldSpec[T], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec[T]{}, false
}

func (s Schema[T]) Column(key string) (ColumnSpec[T], bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return ColumnSpec[T]{}, false
}
