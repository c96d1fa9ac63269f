package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"communityday/internal/domain"
)

const maxYearNameLen = 32

type yearService struct {
	repo           domain.YearRepository
	contextTimeout time.Duration
}

// NewYearService creates a YearService backed by repo.
func NewYearService(repo domain.YearRepository, timeout time.Duration) domain.YearService {
	return &yearService{repo: repo, contextTimeout: timeout}
}

func (s *yearService) List(ctx context.Context) ([]*domain.Year, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *yearService) Get(ctx context.Context, id string) (*domain.Year, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *yearService) Create(ctx context.Context, name string) (*domain.Year, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if len(name) > maxYearNameLen {
		return nil, invalidf("name must be at most %d characters", maxYearNameLen)
	}
	year := &domain.Year{Name: name, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, year); err != nil {
		return nil, fmt.Errorf("create year: %w", err)
	}
	return year, nil
}
