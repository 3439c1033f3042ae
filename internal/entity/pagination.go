package entity

// Pagination describes one page of a paginated listing.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// NewPagination computes the page envelope for a listing of total rows.
func NewPagination(page, limit, total int) Pagination {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}
