package postgres

import (
	"context"
	"database/sql"

	"communityday/internal/domain"
)

const (
	organizersTable  = "organizers"
	organizerColumns = `id, year_id, name, affiliation, role, photo_url, created_at, updated_at`
)

type organizerRepository struct {
	DB *sql.DB
}

// NewOrganizerRepository returns a domain.OrganizerRepository implemented with Postgres.
func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{DB: db}
}

func scanOrganizer(row interface{ Scan(...any) error }) (*domain.Organizer, error) {
	o := &domain.Organizer{}
	if err := row.Scan(&o.ID, &o.YearID, &o.Name, &o.Affiliation, &o.Role, &o.PhotoURL, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizerRepository) ListByYear(ctx context.Context, yearID string) ([]*domain.Organizer, error) {
	query := `SELECT ` + organizerColumns + ` FROM organizers WHERE year_id = $1 ORDER BY role ASC NULLS LAST, created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, yearID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	organizers := make([]*domain.Organizer, 0)
	for rows.Next() {
		o, err := scanOrganizer(rows)
		if err != nil {
			return nil, err
		}
		organizers = append(organizers, o)
	}
	return organizers, rows.Err()
}

func (r *organizerRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, organizersTable, yearID)
}

func (r *organizerRepository) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	o, err := scanOrganizer(r.DB.QueryRowContext(ctx, `SELECT `+organizerColumns+` FROM organizers WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizers (year_id, name, affiliation, role, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, o.YearID, o.Name, o.Affiliation, o.Role, o.PhotoURL, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	return mapError(err)
}

func (r *organizerRepository) Update(ctx context.Context, o *domain.Organizer) error {
	query := `
		UPDATE organizers
		SET year_id = $1, name = $2, affiliation = $3, role = $4, photo_url = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query, o.YearID, o.Name, o.Affiliation, o.Role, o.PhotoURL, o.UpdatedAt, o.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *organizerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM organizers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
