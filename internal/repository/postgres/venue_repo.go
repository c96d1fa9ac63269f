package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"communityday/internal/domain"
)

const (
	venuesTable  = "venues"
	venueColumns = `id, year_id, name, address, city, region, latitude, longitude, images, capacity, created_at, updated_at`
)

type venueRepository struct {
	DB *sql.DB
}

// NewVenueRepository returns a domain.VenueRepository implemented with Postgres.
func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func scanVenue(row interface{ Scan(...any) error }) (*domain.Venue, error) {
	v := &domain.Venue{}
	err := row.Scan(&v.ID, &v.YearID, &v.Name, &v.Address, &v.City, &v.Region, &v.Latitude, &v.Longitude,
		pq.Array(&v.Images), &v.Capacity, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	return v, nil
}

func (r *venueRepository) GetByYear(ctx context.Context, yearID string) (*domain.Venue, error) {
	v, err := scanVenue(r.DB.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE year_id = $1`, yearID))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	v, err := scanVenue(r.DB.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *venueRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, venuesTable, yearID)
}

func (r *venueRepository) Upsert(ctx context.Context, v *domain.Venue) error {
	if v.Images == nil {
		v.Images = []string{}
	}
	query := `
		INSERT INTO venues (year_id, name, address, city, region, latitude, longitude, images, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (year_id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city, region = EXCLUDED.region,
		    latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude, images = EXCLUDED.images,
		    capacity = EXCLUDED.capacity, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, v.YearID, v.Name, v.Address, v.City, v.Region, v.Latitude, v.Longitude,
		pq.Array(v.Images), v.Capacity, v.CreatedAt, v.UpdatedAt).Scan(&v.ID, &v.CreatedAt)
	return mapError(err)
}

func (r *venueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
