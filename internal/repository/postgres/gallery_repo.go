package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"communityday/internal/domain"
)

const (
	galleryTable   = "gallery_images"
	galleryColumns = `id, year_id, image_url, caption, category, created_at, updated_at`
)

type galleryRepository struct {
	DB *sql.DB
}

// NewGalleryRepository returns a domain.GalleryRepository implemented with Postgres.
func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func scanGalleryImage(row interface{ Scan(...any) error }) (*domain.GalleryImage, error) {
	g := &domain.GalleryImage{}
	if err := row.Scan(&g.ID, &g.YearID, &g.ImageURL, &g.Caption, &g.Category, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *galleryRepository) query(ctx context.Context, query string, args ...any) ([]*domain.GalleryImage, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

func (r *galleryRepository) ListByYear(ctx context.Context, filter domain.GalleryFilter) ([]*domain.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE year_id = $1`
	args := []any{filter.YearID}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`
	return r.query(ctx, query, args...)
}

func (r *galleryRepository) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.GalleryImage, error) {
	return r.query(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE year_id = $1 ORDER BY created_at DESC LIMIT $2`, yearID, limit)
}

func (r *galleryRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, galleryTable, yearID)
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	g, err := scanGalleryImage(r.DB.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return g, nil
}

func (r *galleryRepository) Create(ctx context.Context, g *domain.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (year_id, image_url, caption, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.YearID, g.ImageURL, g.Caption, g.Category, g.CreatedAt, g.UpdatedAt).Scan(&g.ID)
	return mapError(err)
}

func (r *galleryRepository) Update(ctx context.Context, g *domain.GalleryImage) error {
	query := `
		UPDATE gallery_images
		SET year_id = $1, image_url = $2, caption = $3, category = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query, g.YearID, g.ImageURL, g.Caption, g.Category, g.UpdatedAt, g.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
