package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityday/internal/domain"
)

type settingsService struct {
	repo           domain.SettingsRepository
	contextTimeout time.Duration
}

// NewSettingsService creates a SettingsService backed by repo.
func NewSettingsService(repo domain.SettingsRepository, timeout time.Duration) domain.SettingsService {
	return &settingsService{repo: repo, contextTimeout: timeout}
}

func (s *settingsService) GetByYear(ctx context.Context, yearID string) (*domain.GeneralSetting, error) {
	if err := requireYearID(yearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByYear(ctx, yearID)
}

func (s *settingsService) Upsert(ctx context.Context, in domain.GeneralSettingPatch) (*domain.GeneralSetting, error) {
	yearID, err := upsertYearID(in.YearID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	setting, err := s.repo.GetByYear(ctx, yearID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get settings: %w", err)
		}
		setting = &domain.GeneralSetting{YearID: yearID, CreatedAt: now}
	}
	in.ApplyTo(setting)
	setting.YearID = yearID
	for _, f := range []**string{&setting.RSVPLink, &setting.CallForSpeakersLink, &setting.SponsorshipDeckLink,
		&setting.LivestreamLink, &setting.TaglineEn, &setting.TaglineFr} {
		*f = trimOptional(*f)
	}
	if setting.MaxAttendees != nil && *setting.MaxAttendees < 0 {
		return nil, invalidf("maxAttendees must not be negative")
	}
	if setting.RSVPDeadline != nil && setting.EventDate != nil && setting.RSVPDeadline.After(*setting.EventDate) {
		return nil, invalidf("rsvpDeadline must not be after eventDate")
	}
	setting.UpdatedAt = now
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return setting, nil
}

func (s *settingsService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
