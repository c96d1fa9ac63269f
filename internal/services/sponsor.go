package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

type sponsorService struct {
	repo           domain.SponsorRepository
	media          domain.MediaService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSponsorService creates a SponsorService. Replaced or orphaned logos are removed through media.
func NewSponsorService(repo domain.SponsorRepository, media domain.MediaService, logger *slog.Logger, timeout time.Duration) domain.SponsorService {
	return &sponsorService{repo: repo, media: media, logger: logger, contextTimeout: timeout}
}

func (s *sponsorService) List(ctx context.Context, filter domain.SponsorFilter) ([]*domain.Sponsor, error) {
	if err := requireYearID(filter.YearID); err != nil {
		return nil, err
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, invalidf("unknown sponsor type %q", filter.Type)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByYear(ctx, filter)
}

func (s *sponsorService) Get(ctx context.Context, id string) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *sponsorService) Create(ctx context.Context, in domain.SponsorPatch) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsor := &domain.Sponsor{}
	in.ApplyTo(sponsor)
	if err := normalizeSponsor(sponsor); err != nil {
		return nil, err
	}
	now := time.Now()
	sponsor.CreatedAt, sponsor.UpdatedAt = now, now
	if err := s.repo.Create(ctx, sponsor); err != nil {
		return nil, fmt.Errorf("create sponsor: %w", err)
	}
	return sponsor, nil
}

func (s *sponsorService) Update(ctx context.Context, id string, in domain.SponsorPatch) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldLogo := sponsor.LogoURL
	in.ApplyTo(sponsor)
	if err := normalizeSponsor(sponsor); err != nil {
		return nil, err
	}
	sponsor.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, sponsor); err != nil {
		return nil, fmt.Errorf("update sponsor: %w", err)
	}
	discardMedia(ctx, s.media, s.logger, oldLogo, sponsor.LogoURL)
	return sponsor, nil
}

func (s *sponsorService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discardMedia(ctx, s.media, s.logger, sponsor.LogoURL, nil)
	return nil
}

func normalizeSponsor(sp *domain.Sponsor) error {
	sp.YearID = strings.TrimSpace(sp.YearID)
	sp.Name = strings.TrimSpace(sp.Name)
	sp.Website = trimOptional(sp.Website)
	sp.LogoURL = trimOptional(sp.LogoURL)
	sp.Type = domain.SponsorType(strings.ToUpper(string(sp.Type)))
	if err := requireYearID(sp.YearID); err != nil {
		return err
	}
	switch {
	case sp.Name == "":
		return invalidf("name is required")
	case !sp.Type.Valid():
		return invalidf("unknown sponsor type %q", sp.Type)
	}
	return nil
}
