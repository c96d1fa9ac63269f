package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

// fakeSponsorRepo implements domain.SponsorRepository for tests.
type fakeSponsorRepo struct {
	domain.SponsorRepository
	byID      map[string]*domain.Sponsor
	lastList  domain.SponsorFilter
	count     int
	countErr  error
	recent    []*domain.Sponsor
	recentErr error
}

func newFakeSponsorRepo(sponsors ...*domain.Sponsor) *fakeSponsorRepo {
	f := &fakeSponsorRepo{byID: make(map[string]*domain.Sponsor)}
	for _, s := range sponsors {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSponsorRepo) CountByYear(ctx context.Context, yearID string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeSponsorRepo) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.Sponsor, error) {
	return f.recent, f.recentErr
}

func (f *fakeSponsorRepo) ListByYear(ctx context.Context, filter domain.SponsorFilter) ([]*domain.Sponsor, error) {
	f.lastList = filter
	return []*domain.Sponsor{}, nil
}

func (f *fakeSponsorRepo) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	if s, ok := f.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSponsorRepo) Create(ctx context.Context, s *domain.Sponsor) error {
	s.ID = "sponsor-new"
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSponsorRepo) Update(ctx context.Context, s *domain.Sponsor) error {
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSponsorRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func TestSponsorService_Create(t *testing.T) {
	tests := []struct {
		name     string
		patch    domain.SponsorPatch
		wantType domain.SponsorType
		errIs    error
	}{
		{name: "gold", patch: domain.SponsorPatch{YearID: domain.Of(testYearID), Name: domain.Of("AWS"), Type: domain.Of(domain.SponsorGold)}, wantType: domain.SponsorGold},
		{name: "lowercase tier normalized", patch: domain.SponsorPatch{YearID: domain.Of(testYearID), Name: domain.Of("AWS"), Type: domain.Of(domain.SponsorType("silver"))}, wantType: domain.SponsorSilver},
		{name: "missing tier", patch: domain.SponsorPatch{YearID: domain.Of(testYearID), Name: domain.Of("AWS")}, errIs: domain.ErrInvalidInput},
		{name: "missing name", patch: domain.SponsorPatch{YearID: domain.Of(testYearID), Type: domain.Of(domain.SponsorGold)}, errIs: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSponsorService(newFakeSponsorRepo(), &fakeMediaService{}, discardLogger(), testTimeout)
			s, err := svc.Create(context.Background(), tt.patch)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, s.Type)
		})
	}
}

func TestSponsorService_ListRejectsUnknownTier(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil, discardLogger(), testTimeout)

	_, err := svc.List(context.Background(), domain.SponsorFilter{YearID: testYearID, Type: "DIAMOND"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.List(context.Background(), domain.SponsorFilter{YearID: testYearID, Type: domain.SponsorPlatinum})
	require.NoError(t, err)
	assert.Equal(t, domain.SponsorPlatinum, repo.lastList.Type)
}

func TestSponsorService_LogoLifecycle(t *testing.T) {
	repo := newFakeSponsorRepo(&domain.Sponsor{ID: "s-1", YearID: testYearID, Name: "AWS", Type: domain.SponsorGold,
		LogoURL: strPtr("https://cdn.example.com/sponsors/old.svg")})
	media := &fakeMediaService{}
	svc := NewSponsorService(repo, media, discardLogger(), testTimeout)

	_, err := svc.Update(context.Background(), "s-1", domain.SponsorPatch{Website: domain.Of("https://aws.amazon.com")})
	require.NoError(t, err)
	assert.Empty(t, media.deleted, "unchanged logo is kept")

	_, err = svc.Update(context.Background(), "s-1", domain.SponsorPatch{LogoURL: domain.Of("https://cdn.example.com/sponsors/new.svg")})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), "s-1"))
	assert.Equal(t, []string{
		"https://cdn.example.com/sponsors/old.svg",
		"https://cdn.example.com/sponsors/new.svg",
	}, media.deleted)
}
