package dto

// ListRequest is the shared query surface of every list endpoint.
type ListRequest struct {
	Search  string `query:"search"`
	SortBy  string `query:"sortBy"`
	SortDir string `query:"sortDir" validate:"omitempty,oneof=asc desc"`
}

func (r ListRequest) Descending() bool {
	return r.SortDir == "desc"
}

// ListResponse wraps list payloads together with the degraded-read flag so
// the frontend can badge data served from the snapshot provider.
type ListResponse[T any] struct {
	Items    []T  `json:"items"`
	Degraded bool `json:"degraded"`
}

func NewListResponse[T any](items []T, degraded bool) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Degraded: degraded}
}
