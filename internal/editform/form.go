// Package editform is the generic create/edit dialog engine. A Form binds a
// field schema to an entity type, keeps a draft copy while the dialog is
// open, coerces incoming raw values per field kind and refuses writes to
// read-only fields.
package editform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fintech-admin-be/internal/schema"
)

// Accepted layouts for date fields. The datetime-local layout has no zone;
// it is interpreted as UTC so the stored instant never drifts.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

type Form[T any] struct {
	fields []schema.FieldSpec[T]

	open   bool
	draft  T
	errors map[string]string
}

func New[T any](fields []schema.FieldSpec[T]) *Form[T] {
	return &Form[T]{fields: fields}
}

// Open starts an editing session seeded from initial. Any previous draft and
// its errors are discarded, so state never leaks between dialogs.
func (f *Form[T]) Open(initial T) {
	f.open = true
	f.draft = initial
	f.errors = map[string]string{}
}

func (f *Form[T]) Close() {
	f.open = false
	var zero T
	f.draft = zero
	f.errors = nil
}

func (f *Form[T]) IsOpen() bool {
	return f.open
}

func (f *Form[T]) Fields() []schema.FieldSpec[T] {
	return f.fields
}

// Value reads the current draft value of one field.
func (f *Form[T]) Value(name string) (any, bool) {
	spec, ok := f.field(name)
	if !ok || !f.open {
		return nil, false
	}
	return spec.Get(&f.draft), true
}

// SetValue coerces raw per the field kind and writes it into the draft.
// Read-only and unknown fields are rejected. Coercion failures are recorded
// per field and surface on Submit.
func (f *Form[T]) SetValue(name string, raw any) error {
	if !f.open {
		return fmt.Errorf("form is not open")
	}
	spec, ok := f.field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if spec.ReadOnly || spec.Set == nil {
		return fmt.Errorf("field %q is read only", name)
	}

	value, err := coerce(spec, raw)
	if err != nil {
		f.errors[name] = err.Error()
	} else {
		delete(f.errors, name)
	}
	spec.Set(&f.draft, value)
	return nil
}

// Submit finishes the session and returns the draft. Recorded coercion
// errors fail the submit and keep the dialog open.
func (f *Form[T]) Submit() (T, error) {
	var zero T
	if !f.open {
		return zero, fmt.Errorf("form is not open")
	}
	if len(f.errors) > 0 {
		for name, msg := range f.errors {
			return zero, fmt.Errorf("field %q: %s", name, msg)
		}
	}
	draft := f.draft
	f.Close()
	return draft, nil
}

func (f *Form[T]) field(name string) (schema.FieldSpec[T], bool) {
	for _, spec := range f.fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return schema.FieldSpec[T]{}, false
}

// coerce converts a raw incoming value (typically decoded JSON, so string,
// float64 or bool) to the canonical type of the field kind.
func coerce[T any](spec schema.FieldSpec[T], raw any) (any, error) {
	switch spec.Kind {
	case schema.FieldText, schema.FieldTextarea:
		return asString(raw), nil

	case schema.FieldSelect:
		s := asString(raw)
		for _, opt := range spec.Options {
			if opt == s {
				return s, nil
			}
		}
		return "", fmt.Errorf("%q is not one of the allowed options", s)

	case schema.FieldNumber:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				// Invalid input lands as zero so the draft stays usable.
				return float64(0), fmt.Errorf("%q is not a number", v)
			}
			return n, nil
		default:
			return float64(0), fmt.Errorf("%v is not a number", raw)
		}

	case schema.FieldSwitch:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			return strings.EqualFold(v, "true") || v == "1", nil
		default:
			return false, fmt.Errorf("%v is not a boolean", raw)
		}

	case schema.FieldDate:
		s := strings.TrimSpace(asString(raw))
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("%q is not a recognized date", s)

	default:
		return raw, nil
	}
}

func asString(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}
