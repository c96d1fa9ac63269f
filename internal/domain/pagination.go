package domain

// PaginationParams selects one page of a list ordered by the repository.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset is the number of rows skipped before the current page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Pages is the number of pages needed to hold total rows.
func (p PaginationParams) Pages(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
