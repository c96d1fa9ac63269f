package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"communityday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query        string
		wantOK       bool
		wantPage     int
		wantPageSize int
	}{
		{"", true, DefaultPage, DefaultPageSize},
		{"?page=3&page_size=10", true, 3, 10},
		{"?page_size=1000", true, DefaultPage, MaxPageSize},
		{"?page=0", false, 0, 0},
		{"?page_size=-1", false, 0, 0},
		{"?page=abc", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rr := httptest.NewRecorder()
			p, ok := ParsePagination(rr, httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil))
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				return
			}
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t,
		PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3, HasNext: true},
		NewPaginationMeta(domain.PaginationParams{Page: 2, PageSize: 10}, 21))
	assert.Equal(t,
		PaginationMeta{Page: 3, PageSize: 10, Total: 21, TotalPages: 3},
		NewPaginationMeta(domain.PaginationParams{Page: 3, PageSize: 10}, 21))
	assert.Equal(t, 0, NewPaginationMeta(domain.PaginationParams{Page: 1}, 5).TotalPages)
}
