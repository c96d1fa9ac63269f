package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

func TestMapError(t *testing.T) {
	other := errors.New("boom")
	tests := []struct {
		name  string
		in    error
		errIs error
	}{
		{name: "nil", in: nil, errIs: nil},
		{name: "no rows", in: sql.ErrNoRows, errIs: domain.ErrNotFound},
		{name: "unique violation", in: &pq.Error{Code: "23505", Constraint: "years_name_key"}, errIs: domain.ErrDuplicate},
		{name: "foreign key violation", in: &pq.Error{Code: "23503", Constraint: "speakers_year_id_fkey"}, errIs: domain.ErrInvalidReference},
		{name: "malformed uuid", in: &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "2025"`}, errIs: domain.ErrInvalidInput},
		{name: "other pq error", in: &pq.Error{Code: "42P01"}, errIs: nil},
		{name: "passthrough", in: other, errIs: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.in == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			if tt.errIs != nil {
				assert.ErrorIs(t, got, tt.errIs)
			} else {
				assert.Same(t, tt.in, got)
			}
		})
	}
}

func TestMapError_DuplicateKeepsConstraint(t *testing.T) {
	err := mapError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.Contains(t, err.Error(), "users_email_key")
}

func TestCountByYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM speakers WHERE year_id = \$1`).
		WithArgs("y-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM speakers WHERE year_id = \$1`).
		WithArgs("y-1").
		WillReturnError(sql.ErrConnDone)

	n, err := countByYear(context.Background(), db, speakersTable, "y-1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = countByYear(context.Background(), db, speakersTable, "y-1")
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}
