package types

// PaginationResponse describes the page a listing returned
type PaginationResponse struct {
	Count  int `json:"count"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset"`
}

// ListResponse represents a paginated response with items
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewListResponse wraps a page of items. Limit is omitted for unlimited filters.
func NewListResponse[T any](items []T, filter *QueryFilter) ListResponse[T] {
	pagination := PaginationResponse{
		Count:  len(items),
		Offset: filter.GetOffset(),
	}
	if !filter.IsUnlimited() {
		pagination.Limit = filter.GetLimit()
	}
	return ListResponse[T]{
		Items:      items,
		Pagination: pagination,
	}
}
