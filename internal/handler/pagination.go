package handler

// PaginationMeta describes the page returned by a search.
type PaginationMeta struct {
	TotalItems int64 `json:"total_items"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"has_more"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, limit, offset int) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems: totalItems,
			Limit:      limit,
			Offset:     offset,
			HasMore:    int64(offset+len(data)) < totalItems,
		},
	}
}
