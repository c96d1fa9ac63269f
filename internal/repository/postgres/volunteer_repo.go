package postgres

import (
	"context"
	"database/sql"

	"communityday/internal/domain"
)

const (
	volunteersTable  = "volunteers"
	volunteerColumns = `id, year_id, name, role, photo_url, created_at, updated_at`
)

type volunteerRepository struct {
	DB *sql.DB
}

// NewVolunteerRepository returns a domain.VolunteerRepository implemented with Postgres.
func NewVolunteerRepository(db *sql.DB) domain.VolunteerRepository {
	return &volunteerRepository{DB: db}
}

func scanVolunteer(row interface{ Scan(...any) error }) (*domain.Volunteer, error) {
	v := &domain.Volunteer{}
	if err := row.Scan(&v.ID, &v.YearID, &v.Name, &v.Role, &v.PhotoURL, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *volunteerRepository) ListByYear(ctx context.Context, yearID string) ([]*domain.Volunteer, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE year_id = $1 ORDER BY created_at DESC`, yearID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	volunteers := make([]*domain.Volunteer, 0)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}

func (r *volunteerRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, volunteersTable, yearID)
}

func (r *volunteerRepository) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	v, err := scanVolunteer(r.DB.QueryRowContext(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `
		INSERT INTO volunteers (year_id, name, role, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, v.YearID, v.Name, v.Role, v.PhotoURL, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
	return mapError(err)
}

func (r *volunteerRepository) Update(ctx context.Context, v *domain.Volunteer) error {
	query := `
		UPDATE volunteers
		SET year_id = $1, name = $2, role = $3, photo_url = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query, v.YearID, v.Name, v.Role, v.PhotoURL, v.UpdatedAt, v.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *volunteerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
