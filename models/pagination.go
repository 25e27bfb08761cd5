package models

// Pagination is the canonical pagination record every dashboard consumer is
// written against. The upstream API emits the same information under several
// competing field names; apiclient reconciles those into this shape.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// DefaultPagination returns the empty-state pagination record used whenever
// a response carries no usable metadata. limit falls back to 10 when the
// caller did not request a page size.
func DefaultPagination(limit int) Pagination {
	if limit < 1 {
		limit = 10
	}
	return Pagination{
		CurrentPage:  1,
		TotalPages:   1,
		TotalItems:   0,
		ItemsPerPage: limit,
	}
}
