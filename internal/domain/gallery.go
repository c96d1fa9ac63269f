package domain

import (
	"context"
	"time"
)

// GalleryImage is a photo published in the edition gallery.
// swagger:model GalleryImage
type GalleryImage struct {
	ID        string    `json:"id"`
	YearID    string    `json:"yearId"`
	ImageURL  string    `json:"imageUrl"`
	Caption   *string   `json:"caption"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GalleryImagePatch holds a partial gallery payload used for both create and update.
type GalleryImagePatch struct {
	YearID   Patch[string] `json:"yearId"`
	ImageURL Patch[string] `json:"imageUrl"`
	Caption  Patch[string] `json:"caption"`
	Category Patch[string] `json:"category"`
}

// ApplyTo writes every set field of p into g.
func (p GalleryImagePatch) ApplyTo(g *GalleryImage) {
	p.YearID.Apply(&g.YearID)
	p.ImageURL.Apply(&g.ImageURL)
	p.Caption.ApplyNullable(&g.Caption)
	p.Category.ApplyNullable(&g.Category)
}

// GalleryFilter narrows a gallery listing. YearID is required.
type GalleryFilter struct {
	YearID   string
	Category string
}

// GalleryRepository defines the interface for gallery storage.
type GalleryRepository interface {
	YearCounter
	ListByYear(ctx context.Context, filter GalleryFilter) ([]*GalleryImage, error)
	ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*GalleryImage, error)
	GetByID(ctx context.Context, id string) (*GalleryImage, error)
	Create(ctx context.Context, image *GalleryImage) error
	Update(ctx context.Context, image *GalleryImage) error
	Delete(ctx context.Context, id string) error
}

// GalleryService defines the business logic for gallery images.
type GalleryService interface {
	List(ctx context.Context, filter GalleryFilter) ([]*GalleryImage, error)
	Get(ctx context.Context, id string) (*GalleryImage, error)
	Create(ctx context.Context, in GalleryImagePatch) (*GalleryImage, error)
	Update(ctx context.Context, id string, in GalleryImagePatch) (*GalleryImage, error)
	Delete(ctx context.Context, id string) error
}
