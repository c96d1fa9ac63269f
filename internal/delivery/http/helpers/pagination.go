package helpers

import (
	"net/http"
	"strconv"
	"strings"

	"communityday/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationMeta accompanies paginated list responses.
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
}

// ParsePagination reads page and page_size from the query string. Absent
// values take the defaults and page_size is capped at MaxPageSize. A value
// that is not a positive integer writes a 400 and returns false.
func ParsePagination(w http.ResponseWriter, r *http.Request) (domain.PaginationParams, bool) {
	page, ok := positiveQueryInt(w, r, "page", DefaultPage)
	if !ok {
		return domain.PaginationParams{}, false
	}
	size, ok := positiveQueryInt(w, r, "page_size", DefaultPageSize)
	if !ok {
		return domain.PaginationParams{}, false
	}
	return domain.PaginationParams{Page: page, PageSize: min(size, MaxPageSize)}, true
}

func positiveQueryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return v, true
}

func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	pages := params.Pages(total)
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: pages,
		HasNext:    params.Page < pages,
	}
}
