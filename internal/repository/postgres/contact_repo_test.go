package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

func TestContactRepository_Upsert(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	email := "hello@communityday.cm"

	tests := []struct {
		name  string
		mock  func(mock sqlmock.Sqlmock)
		errIs error
	}{
		{
			name: "insert or update",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO contact_infos .* ON CONFLICT \(year_id\) DO UPDATE`).
					WithArgs("y-1", email, nil, nil, nil, nil, nil, nil, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c-1", now))
			},
		},
		{
			name: "unknown year",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO contact_infos`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			errIs: domain.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			c := &domain.ContactInfo{YearID: "y-1", Email: &email, CreatedAt: now, UpdatedAt: now}
			err = NewContactRepository(db).Upsert(context.Background(), c)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "c-1", c.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContactRepository_GetByYearAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	cols := []string{"id", "year_id", "email", "phone", "address", "facebook", "twitter", "linkedin", "instagram", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM contact_infos WHERE year_id = \$1`).
		WithArgs("y-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("c-1", "y-1", nil, "+237 600000000", nil, nil, nil, nil, nil, now, now))
	mock.ExpectExec(`DELETE FROM contact_infos WHERE id = \$1`).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewContactRepository(db)
	c, err := repo.GetByYear(context.Background(), "y-1")
	require.NoError(t, err)
	require.NotNil(t, c.Phone)
	assert.Nil(t, c.Email)
	require.NoError(t, repo.Delete(context.Background(), "c-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
