package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"communityday/internal/domain"
)

const (
	speakersTable  = "speakers"
	speakerColumns = `id, year_id, name, title, bio, photo_url, key_note, created_at, updated_at`
)

type speakerRepository struct {
	DB *sql.DB
}

// NewSpeakerRepository returns a domain.SpeakerRepository implemented with Postgres.
func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func scanSpeaker(row interface{ Scan(...any) error }) (*domain.Speaker, error) {
	s := &domain.Speaker{}
	if err := row.Scan(&s.ID, &s.YearID, &s.Name, &s.Title, &s.Bio, &s.PhotoURL, &s.KeyNote, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Speaker, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s, err := scanSpeaker(rows)
		if err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}

func (r *speakerRepository) ListByYear(ctx context.Context, filter domain.SpeakerFilter) ([]*domain.Speaker, error) {
	query := `SELECT ` + speakerColumns + ` FROM speakers WHERE year_id = $1`
	args := []any{filter.YearID}
	if filter.KeyNote != nil {
		args = append(args, *filter.KeyNote)
		query += ` AND key_note = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY key_note DESC, created_at DESC`
	return r.query(ctx, query, args...)
}

func (r *speakerRepository) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.Speaker, error) {
	return r.query(ctx, `SELECT `+speakerColumns+` FROM speakers WHERE year_id = $1 ORDER BY created_at DESC LIMIT $2`, yearID, limit)
}

func (r *speakerRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, speakersTable, yearID)
}

func (r *speakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	s, err := scanSpeaker(r.DB.QueryRowContext(ctx, `SELECT `+speakerColumns+` FROM speakers WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (year_id, name, title, bio, photo_url, key_note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.YearID, s.Name, s.Title, s.Bio, s.PhotoURL, s.KeyNote, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	return mapError(err)
}

func (r *speakerRepository) Update(ctx context.Context, s *domain.Speaker) error {
	query := `
		UPDATE speakers
		SET year_id = $1, name = $2, title = $3, bio = $4, photo_url = $5, key_note = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := r.DB.ExecContext(ctx, query, s.YearID, s.Name, s.Title, s.Bio, s.PhotoURL, s.KeyNote, s.UpdatedAt, s.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *speakerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM speakers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
