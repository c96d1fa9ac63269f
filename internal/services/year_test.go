package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

func TestYearService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		createErr error
		errIs     error
	}{
		{name: "valid", input: " 2026 "},
		{name: "blank", input: "   ", errIs: domain.ErrInvalidInput},
		{name: "too long", input: strings.Repeat("9", 40), errIs: domain.ErrInvalidInput},
		{name: "duplicate", input: "2025", createErr: domain.ErrDuplicate, errIs: domain.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeYearRepo{createErr: tt.createErr}
			y, err := NewYearService(repo, testTimeout).Create(context.Background(), tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2026", y.Name)
			assert.Equal(t, "year-2026", y.ID)
			assert.False(t, y.CreatedAt.IsZero())
		})
	}
}

func TestYearService_ListAndGet(t *testing.T) {
	repo := &fakeYearRepo{years: []*domain.Year{{ID: "y-1", Name: "2024"}, {ID: "y-2", Name: "2025"}}}
	svc := NewYearService(repo, testTimeout)

	years, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, years, 2)

	y, err := svc.Get(context.Background(), "y-2")
	require.NoError(t, err)
	assert.Equal(t, "2025", y.Name)

	_, err = svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
