package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"communityday/internal/domain"
)

const (
	agendaTable   = "agenda_items"
	agendaColumns = `id, year_id, title_en, title_fr, description_en, description_fr, start_time, end_time, speaker_id, location, type, published, created_at, updated_at`
)

type agendaRepository struct {
	DB *sql.DB
}

// NewAgendaRepository returns a domain.AgendaRepository implemented with Postgres.
func NewAgendaRepository(db *sql.DB) domain.AgendaRepository {
	return &agendaRepository{DB: db}
}

func scanAgendaItem(row interface{ Scan(...any) error }) (*domain.AgendaItem, error) {
	a := &domain.AgendaItem{}
	err := row.Scan(&a.ID, &a.YearID, &a.TitleEn, &a.TitleFr, &a.DescriptionEn, &a.DescriptionFr,
		&a.StartTime, &a.EndTime, &a.SpeakerID, &a.Location, &a.Type, &a.Published, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *agendaRepository) query(ctx context.Context, query string, args ...any) ([]*domain.AgendaItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	items := make([]*domain.AgendaItem, 0)
	for rows.Next() {
		a, err := scanAgendaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *agendaRepository) ListByYear(ctx context.Context, filter domain.AgendaFilter) ([]*domain.AgendaItem, error) {
	query := `SELECT ` + agendaColumns + ` FROM agenda_items WHERE year_id = $1`
	args := []any{filter.YearID}
	if filter.Published != nil {
		args = append(args, *filter.Published)
		query += ` AND published = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY start_time ASC, created_at ASC`
	return r.query(ctx, query, args...)
}

func (r *agendaRepository) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.AgendaItem, error) {
	return r.query(ctx, `SELECT `+agendaColumns+` FROM agenda_items WHERE year_id = $1 ORDER BY created_at DESC LIMIT $2`, yearID, limit)
}

func (r *agendaRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, agendaTable, yearID)
}

func (r *agendaRepository) GetByID(ctx context.Context, id string) (*domain.AgendaItem, error) {
	a, err := scanAgendaItem(r.DB.QueryRowContext(ctx, `SELECT `+agendaColumns+` FROM agenda_items WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *agendaRepository) Create(ctx context.Context, a *domain.AgendaItem) error {
	query := `
		INSERT INTO agenda_items (year_id, title_en, title_fr, description_en, description_fr, start_time, end_time, speaker_id, location, type, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.YearID, a.TitleEn, a.TitleFr, a.DescriptionEn, a.DescriptionFr,
		a.StartTime, a.EndTime, a.SpeakerID, a.Location, a.Type, a.Published, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	return mapError(err)
}

func (r *agendaRepository) Update(ctx context.Context, a *domain.AgendaItem) error {
	query := `
		UPDATE agenda_items
		SET year_id = $1, title_en = $2, title_fr = $3, description_en = $4, description_fr = $5,
		    start_time = $6, end_time = $7, speaker_id = $8, location = $9, type = $10, published = $11, updated_at = $12
		WHERE id = $13
	`
	result, err := r.DB.ExecContext(ctx, query, a.YearID, a.TitleEn, a.TitleFr, a.DescriptionEn, a.DescriptionFr,
		a.StartTime, a.EndTime, a.SpeakerID, a.Location, a.Type, a.Published, a.UpdatedAt, a.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *agendaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM agenda_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
