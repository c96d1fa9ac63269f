package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

type volunteerService struct {
	repo           domain.VolunteerRepository
	media          domain.MediaService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewVolunteerService creates a VolunteerService.
func NewVolunteerService(repo domain.VolunteerRepository, media domain.MediaService, logger *slog.Logger, timeout time.Duration) domain.VolunteerService {
	return &volunteerService{repo: repo, media: media, logger: logger, contextTimeout: timeout}
}

func (s *volunteerService) List(ctx context.Context, yearID string) ([]*domain.Volunteer, error) {
	if err := requireYearID(yearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByYear(ctx, yearID)
}

func (s *volunteerService) Get(ctx context.Context, id string) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *volunteerService) Create(ctx context.Context, in domain.VolunteerPatch) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v := &domain.Volunteer{}
	in.ApplyTo(v)
	if err := normalizeVolunteer(v); err != nil {
		return nil, err
	}
	now := time.Now()
	v.CreatedAt, v.UpdatedAt = now, now
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create volunteer: %w", err)
	}
	return v, nil
}

func (s *volunteerService) Update(ctx context.Context, id string, in domain.VolunteerPatch) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPhoto := v.PhotoURL
	in.ApplyTo(v)
	if err := normalizeVolunteer(v); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update volunteer: %w", err)
	}
	discardMedia(ctx, s.media, s.logger, oldPhoto, v.PhotoURL)
	return v, nil
}

func (s *volunteerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discardMedia(ctx, s.media, s.logger, v.PhotoURL, nil)
	return nil
}

func normalizeVolunteer(v *domain.Volunteer) error {
	v.YearID = strings.TrimSpace(v.YearID)
	v.Name = strings.TrimSpace(v.Name)
	v.Role = trimOptional(v.Role)
	v.PhotoURL = trimOptional(v.PhotoURL)
	if err := requireYearID(v.YearID); err != nil {
		return err
	}
	if v.Name == "" {
		return invalidf("name is required")
	}
	return nil
}
