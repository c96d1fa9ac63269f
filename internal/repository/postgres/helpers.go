package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"communityday/internal/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidTextRepr     = "22P02"
)

// mapError translates driver errors into domain sentinels. Other errors pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		switch perr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, perr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidReference, perr.Constraint)
		case pqInvalidTextRepr:
			return fmt.Errorf("%w: malformed identifier", domain.ErrInvalidInput)
		}
	}
	return err
}

// expectAffected returns domain.ErrNotFound when an UPDATE or DELETE matched no row.
func expectAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// countByYear runs SELECT COUNT(*) on table for the given year. table is always a package constant.
func countByYear(ctx context.Context, db *sql.DB, table, yearID string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` WHERE year_id = $1`, yearID).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}
