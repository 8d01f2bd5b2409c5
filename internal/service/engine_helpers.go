package service

import (
	"fintech-admin-be/internal/datatable"
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/editform"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/schema"
)

// applyTable runs one list request through the generic table engine: sort
// first (when requested), then the free-text filter.
func applyTable[T any](sc schema.Schema[T], rows []*T, req dto.ListRequest) []*T {
	table := datatable.New(sc.Columns)
	if req.SortBy != "" {
		table.SetSort(req.SortBy, req.Descending())
	}
	table.SetSearch(req.Search)

	vals := make([]T, len(rows))
	for i := range rows {
		vals[i] = *rows[i]
	}
	out := table.Rows(vals)

	result := make([]*T, len(out))
	for i := range out {
		result[i] = &out[i]
	}
	return result
}

// applyForm runs a raw request body through the edit-form engine. Values for
// unknown or read-only fields are dropped; coercion failures become
// validation errors.
func applyForm[T any](sc schema.Schema[T], initial T, input map[string]any) (T, error) {
	var zero T
	form := editform.New(sc.Fields)
	form.Open(initial)

	for name, raw := range input {
		spec, ok := sc.Field(name)
		if !ok || spec.ReadOnly {
			continue
		}
		if err := form.SetValue(name, raw); err != nil {
			return zero, apperror.Validation(err.Error())
		}
	}

	draft, err := form.Submit()
	if err != nil {
		return zero, apperror.Validation(err.Error())
	}
	return draft, nil
}
