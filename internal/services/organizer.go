package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

type organizerService struct {
	repo           domain.OrganizerRepository
	media          domain.MediaService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewOrganizerService creates an OrganizerService.
func NewOrganizerService(repo domain.OrganizerRepository, media domain.MediaService, logger *slog.Logger, timeout time.Duration) domain.OrganizerService {
	return &organizerService{repo: repo, media: media, logger: logger, contextTimeout: timeout}
}

func (s *organizerService) List(ctx context.Context, yearID string) ([]*domain.Organizer, error) {
	if err := requireYearID(yearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByYear(ctx, yearID)
}

func (s *organizerService) Get(ctx context.Context, id string) (*domain.Organizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *organizerService) Create(ctx context.Context, in domain.OrganizerPatch) (*domain.Organizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	o := &domain.Organizer{}
	in.ApplyTo(o)
	if err := normalizeOrganizer(o); err != nil {
		return nil, err
	}
	now := time.Now()
	o.CreatedAt, o.UpdatedAt = now, now
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create organizer: %w", err)
	}
	return o, nil
}

func (s *organizerService) Update(ctx context.Context, id string, in domain.OrganizerPatch) (*domain.Organizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPhoto := o.PhotoURL
	in.ApplyTo(o)
	if err := normalizeOrganizer(o); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update organizer: %w", err)
	}
	discardMedia(ctx, s.media, s.logger, oldPhoto, o.PhotoURL)
	return o, nil
}

func (s *organizerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discardMedia(ctx, s.media, s.logger, o.PhotoURL, nil)
	return nil
}

func normalizeOrganizer(o *domain.Organizer) error {
	o.YearID = strings.TrimSpace(o.YearID)
	o.Name = strings.TrimSpace(o.Name)
	o.Affiliation = trimOptional(o.Affiliation)
	o.Role = trimOptional(o.Role)
	o.PhotoURL = trimOptional(o.PhotoURL)
	if err := requireYearID(o.YearID); err != nil {
		return err
	}
	if o.Name == "" {
		return invalidf("name is required")
	}
	return nil
}
