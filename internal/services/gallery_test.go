package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

// fakeGalleryRepo implements domain.GalleryRepository for tests.
type fakeGalleryRepo struct {
	domain.GalleryRepository
	byID      map[string]*domain.GalleryImage
	count     int
	countErr  error
	recent    []*domain.GalleryImage
	recentErr error
}

func newFakeGalleryRepo(images ...*domain.GalleryImage) *fakeGalleryRepo {
	f := &fakeGalleryRepo{byID: make(map[string]*domain.GalleryImage)}
	for _, g := range images {
		f.byID[g.ID] = g
	}
	return f
}

func (f *fakeGalleryRepo) CountByYear(ctx context.Context, yearID string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeGalleryRepo) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.GalleryImage, error) {
	return f.recent, f.recentErr
}

func (f *fakeGalleryRepo) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	if g, ok := f.byID[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGalleryRepo) Create(ctx context.Context, g *domain.GalleryImage) error {
	g.ID = "gallery-new"
	cp := *g
	f.byID[g.ID] = &cp
	return nil
}

func (f *fakeGalleryRepo) Update(ctx context.Context, g *domain.GalleryImage) error {
	cp := *g
	f.byID[g.ID] = &cp
	return nil
}

func (f *fakeGalleryRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func TestGalleryService(t *testing.T) {
	repo := newFakeGalleryRepo()
	media := &fakeMediaService{}
	svc := NewGalleryService(repo, media, discardLogger(), testTimeout)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.GalleryImagePatch{YearID: domain.Of(testYearID)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	g, err := svc.Create(ctx, domain.GalleryImagePatch{YearID: domain.Of(testYearID), ImageURL: domain.Of("https://cdn.example.com/gallery/1.jpg"), Caption: domain.Of("  ")})
	require.NoError(t, err)
	assert.Nil(t, g.Caption, "blank caption is stored as null")

	_, err = svc.Update(ctx, g.ID, domain.GalleryImagePatch{ImageURL: domain.Null[string]()})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Update(ctx, g.ID, domain.GalleryImagePatch{Caption: domain.Of("Keynote")})
	require.NoError(t, err)
	assert.Empty(t, media.deleted)

	require.NoError(t, svc.Delete(ctx, g.ID))
	assert.Equal(t, []string{"https://cdn.example.com/gallery/1.jpg"}, media.deleted)
}
