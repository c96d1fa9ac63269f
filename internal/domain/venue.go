package domain

import (
	"context"
	"time"
)

// Venue is where an edition takes place. There is at most one venue per year.
// swagger:model Venue
type Venue struct {
	ID        string    `json:"id"`
	YearID    string    `json:"yearId"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	Region    *string   `json:"region"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Images    []string  `json:"images"`
	Capacity  *int      `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenuePatch holds a partial venue payload. Images replaces the whole list.
type VenuePatch struct {
	YearID    Patch[string]   `json:"yearId"`
	Name      Patch[string]   `json:"name"`
	Address   Patch[string]   `json:"address"`
	City      Patch[string]   `json:"city"`
	Region    Patch[string]   `json:"region"`
	Latitude  Patch[float64]  `json:"latitude"`
	Longitude Patch[float64]  `json:"longitude"`
	Images    Patch[[]string] `json:"images"`
	Capacity  Patch[int]      `json:"capacity"`
}

// ApplyTo writes every set field of p into v.
func (p VenuePatch) ApplyTo(v *Venue) {
	p.YearID.Apply(&v.YearID)
	p.Name.Apply(&v.Name)
	p.Address.ApplyNullable(&v.Address)
	p.City.ApplyNullable(&v.City)
	p.Region.ApplyNullable(&v.Region)
	p.Latitude.ApplyNullable(&v.Latitude)
	p.Longitude.ApplyNullable(&v.Longitude)
	p.Images.Apply(&v.Images)
	p.Capacity.ApplyNullable(&v.Capacity)
}

// VenueRepository defines the interface for venue storage. Upsert is keyed by YearID.
type VenueRepository interface {
	YearCounter
	GetByYear(ctx context.Context, yearID string) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	Upsert(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id string) error
}

// VenueService defines the business logic for venues.
type VenueService interface {
	GetByYear(ctx context.Context, yearID string) (*Venue, error)
	Upsert(ctx context.Context, in VenuePatch) (*Venue, error)
	Delete(ctx context.Context, id string) error
}
