package postgres

import (
	"context"
	"database/sql"

	"communityday/internal/domain"
)

const (
	contactTable   = "contact_infos"
	contactColumns = `id, year_id, email, phone, address, facebook, twitter, linkedin, instagram, created_at, updated_at`
)

type contactRepository struct {
	DB *sql.DB
}

// NewContactRepository returns a domain.ContactRepository implemented with Postgres.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func scanContact(row interface{ Scan(...any) error }) (*domain.ContactInfo, error) {
	c := &domain.ContactInfo{}
	err := row.Scan(&c.ID, &c.YearID, &c.Email, &c.Phone, &c.Address, &c.Facebook, &c.Twitter, &c.LinkedIn, &c.Instagram, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) GetByYear(ctx context.Context, yearID string) (*domain.ContactInfo, error) {
	c, err := scanContact(r.DB.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_infos WHERE year_id = $1`, yearID))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.ContactInfo, error) {
	c, err := scanContact(r.DB.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_infos WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *contactRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, contactTable, yearID)
}

func (r *contactRepository) Upsert(ctx context.Context, c *domain.ContactInfo) error {
	query := `
		INSERT INTO contact_infos (year_id, email, phone, address, facebook, twitter, linkedin, instagram, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (year_id) DO UPDATE
		SET email = EXCLUDED.email, phone = EXCLUDED.phone, address = EXCLUDED.address, facebook = EXCLUDED.facebook,
		    twitter = EXCLUDED.twitter, linkedin = EXCLUDED.linkedin, instagram = EXCLUDED.instagram, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, c.YearID, c.Email, c.Phone, c.Address, c.Facebook, c.Twitter, c.LinkedIn, c.Instagram,
		c.CreatedAt, c.UpdatedAt).Scan(&c.ID, &c.CreatedAt)
	return mapError(err)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contact_infos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
