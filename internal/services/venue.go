package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

type venueService struct {
	repo           domain.VenueRepository
	media          domain.MediaService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewVenueService creates a VenueService. Images dropped from a venue are removed through media.
func NewVenueService(repo domain.VenueRepository, media domain.MediaService, logger *slog.Logger, timeout time.Duration) domain.VenueService {
	return &venueService{repo: repo, media: media, logger: logger, contextTimeout: timeout}
}

func (s *venueService) GetByYear(ctx context.Context, yearID string) (*domain.Venue, error) {
	if err := requireYearID(yearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByYear(ctx, yearID)
}

// Upsert applies in over the year's venue, or over an empty venue when the year has none.
func (s *venueService) Upsert(ctx context.Context, in domain.VenuePatch) (*domain.Venue, error) {
	yearID, err := upsertYearID(in.YearID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	venue, err := s.repo.GetByYear(ctx, yearID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get venue: %w", err)
		}
		venue = &domain.Venue{YearID: yearID, Images: []string{}, CreatedAt: now}
	}
	oldImages := append([]string(nil), venue.Images...)

	in.ApplyTo(venue)
	venue.YearID = yearID
	if err := normalizeVenue(venue); err != nil {
		return nil, err
	}
	venue.UpdatedAt = now
	if err := s.repo.Upsert(ctx, venue); err != nil {
		return nil, fmt.Errorf("upsert venue: %w", err)
	}
	discardMediaList(ctx, s.media, s.logger, oldImages, venue.Images)
	return venue, nil
}

func (s *venueService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discardMediaList(ctx, s.media, s.logger, venue.Images, nil)
	return nil
}

func normalizeVenue(v *domain.Venue) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Address = trimOptional(v.Address)
	v.City = trimOptional(v.City)
	v.Region = trimOptional(v.Region)
	images := make([]string, 0, len(v.Images))
	for _, img := range v.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	v.Images = images
	switch {
	case v.Name == "":
		return invalidf("name is required")
	case v.Latitude != nil && (*v.Latitude < -90 || *v.Latitude > 90):
		return invalidf("latitude must be between -90 and 90")
	case v.Longitude != nil && (*v.Longitude < -180 || *v.Longitude > 180):
		return invalidf("longitude must be between -180 and 180")
	case v.Capacity != nil && *v.Capacity < 0:
		return invalidf("capacity must not be negative")
	}
	return nil
}

// upsertYearID extracts the key of a one-to-one upsert.
func upsertYearID(p domain.Patch[string]) (string, error) {
	if !p.Set || p.Null {
		return "", invalidf("yearId is required")
	}
	yearID := strings.TrimSpace(p.Value)
	if err := requireYearID(yearID); err != nil {
		return "", err
	}
	return yearID, nil
}
