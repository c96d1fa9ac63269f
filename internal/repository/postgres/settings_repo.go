package postgres

import (
	"context"
	"database/sql"

	"communityday/internal/domain"
)

const (
	settingsTable   = "general_settings"
	settingsColumns = `id, year_id, rsvp_link, rsvp_deadline, event_date, max_attendees, call_for_speakers_link, sponsorship_deck_link, livestream_link, tagline_en, tagline_fr, created_at, updated_at`
)

type settingsRepository struct {
	DB *sql.DB
}

// NewSettingsRepository returns a domain.SettingsRepository implemented with Postgres.
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{DB: db}
}

func scanSettings(row interface{ Scan(...any) error }) (*domain.GeneralSetting, error) {
	s := &domain.GeneralSetting{}
	err := row.Scan(&s.ID, &s.YearID, &s.RSVPLink, &s.RSVPDeadline, &s.EventDate, &s.MaxAttendees,
		&s.CallForSpeakersLink, &s.SponsorshipDeckLink, &s.LivestreamLink, &s.TaglineEn, &s.TaglineFr, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) GetByYear(ctx context.Context, yearID string) (*domain.GeneralSetting, error) {
	s, err := scanSettings(r.DB.QueryRowContext(ctx, `SELECT `+settingsColumns+` FROM general_settings WHERE year_id = $1`, yearID))
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *settingsRepository) GetByID(ctx context.Context, id string) (*domain.GeneralSetting, error) {
	s, err := scanSettings(r.DB.QueryRowContext(ctx, `SELECT `+settingsColumns+` FROM general_settings WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *settingsRepository) CountByYear(ctx context.Context, yearID string) (int, error) {
	return countByYear(ctx, r.DB, settingsTable, yearID)
}

func (r *settingsRepository) Upsert(ctx context.Context, s *domain.GeneralSetting) error {
	query := `
		INSERT INTO general_settings (year_id, rsvp_link, rsvp_deadline, event_date, max_attendees, call_for_speakers_link,
		    sponsorship_deck_link, livestream_link, tagline_en, tagline_fr, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (year_id) DO UPDATE
		SET rsvp_link = EXCLUDED.rsvp_link, rsvp_deadline = EXCLUDED.rsvp_deadline, event_date = EXCLUDED.event_date,
		    max_attendees = EXCLUDED.max_attendees, call_for_speakers_link = EXCLUDED.call_for_speakers_link,
		    sponsorship_deck_link = EXCLUDED.sponsorship_deck_link, livestream_link = EXCLUDED.livestream_link,
		    tagline_en = EXCLUDED.tagline_en, tagline_fr = EXCLUDED.tagline_fr, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, s.YearID, s.RSVPLink, s.RSVPDeadline, s.EventDate, s.MaxAttendees,
		s.CallForSpeakersLink, s.SponsorshipDeckLink, s.LivestreamLink, s.TaglineEn, s.TaglineFr, s.CreatedAt, s.UpdatedAt).
		Scan(&s.ID, &s.CreatedAt)
	return mapError(err)
}

func (r *settingsRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM general_settings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
