package postgres

import (
	"context"
	"database/sql"

	"communityday/internal/domain"
)

type yearRepository struct {
	DB *sql.DB
}

// NewYearRepository returns a domain.YearRepository implemented with Postgres.
func NewYearRepository(db *sql.DB) domain.YearRepository {
	return &yearRepository{DB: db}
}

func (r *yearRepository) List(ctx context.Context) ([]*domain.Year, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, created_at FROM years ORDER BY name DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	years := make([]*domain.Year, 0)
	for rows.Next() {
		y := &domain.Year{}
		if err := rows.Scan(&y.ID, &y.Name, &y.CreatedAt); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *yearRepository) GetByID(ctx context.Context, id string) (*domain.Year, error) {
	y := &domain.Year{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, created_at FROM years WHERE id = $1`, id).
		Scan(&y.ID, &y.Name, &y.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return y, nil
}

func (r *yearRepository) Latest(ctx context.Context) (*domain.Year, error) {
	y := &domain.Year{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, created_at FROM years ORDER BY created_at DESC LIMIT 1`).
		Scan(&y.ID, &y.Name, &y.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return y, nil
}

func (r *yearRepository) Create(ctx context.Context, y *domain.Year) error {
	query := `
		INSERT INTO years (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	return mapError(r.DB.QueryRowContext(ctx, query, y.Name, y.CreatedAt).Scan(&y.ID))
}
