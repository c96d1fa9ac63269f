package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"communityday/internal/domain"
)

const (
	sponsorsTable  = "sponsors"
	sponsorColumns = `id, year_id, name, website, type, logo_url, created_at, updated_at`
	// sponsorTierOrder ranks tiers from most to least prominent.
	sponsorTierOrder = `CASE type WHEN 'PLATINUM' THEN 1 WHEN 'GOLD' THEN 2 WHEN 'SILVER' THEN 3 WHEN 'BRONZE' THEN 4 WHEN 'PARTNER' THEN 5 ELSE 6 END`
)

type sponsorRepository struct {
	DB *sql.DB
}

// NewSponsorRepository returns a domain.SponsorRepository implemented with Postgres.
func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

func scanSponsor(row interface{ Scan(...any) error }) (*domain.Sponsor, error) {
	s := &domain.Sponsor{}
	if err := row.Scan(&s.ID, &s.YearID, &s.Name, &s.Website, &s.Type, &s.LogoURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sponsorRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Sponsor, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	sponsors := make([]*domain.Sponsor, 0)
	for rows.Next() {
		s, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *sponsorRepository) ListByYear(ctx context.Context, filter domain.SponsorFilter) ([]*domain.Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE year_id = $1`
	args := []any{filter.YearID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY ` + sponsorTierOrder + `, created_at DESC`
	return r.query(ctx, query, args...)
}

func (r *sponsorRepository) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.Sponsor, error) {
	return r.query(ctx, `SELECT `+sponsorColumns+` FROM sponsors WHERE year_id = $1 ORDER BY created_at DESC LIMIT $2`, yearID, limit)
}

func (r *sponsorRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, sponsorsTable, yearID)
}

func (r *sponsorRepository) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	s, err := scanSponsor(r.DB.QueryRowContext(ctx, `SELECT `+sponsorColumns+` FROM sponsors WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *sponsorRepository) Create(ctx context.Context, s *domain.Sponsor) error {
	query := `
		INSERT INTO sponsors (year_id, name, website, type, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.YearID, s.Name, s.Website, s.Type, s.LogoURL, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	return mapError(err)
}

func (r *sponsorRepository) Update(ctx context.Context, s *domain.Sponsor) error {
	query := `
		UPDATE sponsors
		SET year_id = $1, name = $2, website = $3, type = $4, logo_url = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query, s.YearID, s.Name, s.Website, s.Type, s.LogoURL, s.UpdatedAt, s.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sponsors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
