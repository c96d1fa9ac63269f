package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

type galleryService struct {
	repo           domain.GalleryRepository
	media          domain.MediaService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewGalleryService creates a GalleryService. Deleting an image also removes its stored file.
func NewGalleryService(repo domain.GalleryRepository, media domain.MediaService, logger *slog.Logger, timeout time.Duration) domain.GalleryService {
	return &galleryService{repo: repo, media: media, logger: logger, contextTimeout: timeout}
}

func (s *galleryService) List(ctx context.Context, filter domain.GalleryFilter) ([]*domain.GalleryImage, error) {
	if err := requireYearID(filter.YearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByYear(ctx, filter)
}

func (s *galleryService) Get(ctx context.Context, id string) (*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *galleryService) Create(ctx context.Context, in domain.GalleryImagePatch) (*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	g := &domain.GalleryImage{}
	in.ApplyTo(g)
	if err := normalizeGalleryImage(g); err != nil {
		return nil, err
	}
	now := time.Now()
	g.CreatedAt, g.UpdatedAt = now, now
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return g, nil
}

func (s *galleryService) Update(ctx context.Context, id string, in domain.GalleryImagePatch) (*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldURL := g.ImageURL
	in.ApplyTo(g)
	if err := normalizeGalleryImage(g); err != nil {
		return nil, err
	}
	g.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}
	discardMedia(ctx, s.media, s.logger, &oldURL, &g.ImageURL)
	return g, nil
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discardMedia(ctx, s.media, s.logger, &g.ImageURL, nil)
	return nil
}

func normalizeGalleryImage(g *domain.GalleryImage) error {
	g.YearID = strings.TrimSpace(g.YearID)
	g.ImageURL = strings.TrimSpace(g.ImageURL)
	g.Caption = trimOptional(g.Caption)
	g.Category = trimOptional(g.Category)
	if err := requireYearID(g.YearID); err != nil {
		return err
	}
	if g.ImageURL == "" {
		return invalidf("imageUrl is required")
	}
	return nil
}
