package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

type speakerService struct {
	repo           domain.SpeakerRepository
	media          domain.MediaService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSpeakerService creates a SpeakerService. Replaced or orphaned photos are removed through media.
func NewSpeakerService(repo domain.SpeakerRepository, media domain.MediaService, logger *slog.Logger, timeout time.Duration) domain.SpeakerService {
	return &speakerService{repo: repo, media: media, logger: logger, contextTimeout: timeout}
}

func (s *speakerService) List(ctx context.Context, filter domain.SpeakerFilter) ([]*domain.Speaker, error) {
	if err := requireYearID(filter.YearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByYear(ctx, filter)
}

func (s *speakerService) Get(ctx context.Context, id string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *speakerService) Create(ctx context.Context, in domain.SpeakerPatch) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker := &domain.Speaker{}
	in.ApplyTo(speaker)
	if err := normalizeSpeaker(speaker); err != nil {
		return nil, err
	}
	now := time.Now()
	speaker.CreatedAt, speaker.UpdatedAt = now, now
	if err := s.repo.Create(ctx, speaker); err != nil {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) Update(ctx context.Context, id string, in domain.SpeakerPatch) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPhoto := speaker.PhotoURL
	in.ApplyTo(speaker)
	if err := normalizeSpeaker(speaker); err != nil {
		return nil, err
	}
	speaker.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, speaker); err != nil {
		return nil, fmt.Errorf("update speaker: %w", err)
	}
	discardMedia(ctx, s.media, s.logger, oldPhoto, speaker.PhotoURL)
	return speaker, nil
}

func (s *speakerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discardMedia(ctx, s.media, s.logger, speaker.PhotoURL, nil)
	return nil
}

func normalizeSpeaker(sp *domain.Speaker) error {
	sp.YearID = strings.TrimSpace(sp.YearID)
	sp.Name = strings.TrimSpace(sp.Name)
	sp.Title = trimOptional(sp.Title)
	sp.Bio = trimOptional(sp.Bio)
	sp.PhotoURL = trimOptional(sp.PhotoURL)
	if err := requireYearID(sp.YearID); err != nil {
		return err
	}
	if sp.Name == "" {
		return invalidf("name is required")
	}
	return nil
}
