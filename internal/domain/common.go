package domain

// DefaultPageSize is the fixed page size for all paginated listings.
const DefaultPageSize = 10

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination builds pagination metadata. TotalPages never goes below 1 so
// an empty catalog still renders a single empty page.
func NewPagination(page, total int) Pagination {
	totalPages := (total + DefaultPageSize - 1) / DefaultPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PageSize:   DefaultPageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ClampPage normalizes a raw page value: anything below 1 becomes 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
