package domain

import (
	"context"
	"time"
)

// Volunteer helps run a conference edition.
// swagger:model Volunteer
type Volunteer struct {
	ID        string    `json:"id"`
	YearID    string    `json:"yearId"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VolunteerPatch holds a partial volunteer payload used for both create and update.
type VolunteerPatch struct {
	YearID   Patch[string] `json:"yearId"`
	Name     Patch[string] `json:"name"`
	Role     Patch[string] `json:"role"`
	PhotoURL Patch[string] `json:"photoUrl"`
}

// ApplyTo writes every set field of p into v.
func (p VolunteerPatch) ApplyTo(v *Volunteer) {
	p.YearID.Apply(&v.YearID)
	p.Name.Apply(&v.Name)
	p.Role.ApplyNullable(&v.Role)
	p.PhotoURL.ApplyNullable(&v.PhotoURL)
}

// VolunteerRepository defines the interface for volunteer storage.
type VolunteerRepository interface {
	YearCounter
	ListByYear(ctx context.Context, yearID string) ([]*Volunteer, error)
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	Create(ctx context.Context, volunteer *Volunteer) error
	Update(ctx context.Context, volunteer *Volunteer) error
	Delete(ctx context.Context, id string) error
}

// VolunteerService defines the business logic for volunteers.
type VolunteerService interface {
	List(ctx context.Context, yearID string) ([]*Volunteer, error)
	Get(ctx context.Context, id string) (*Volunteer, error)
	Create(ctx context.Context, in VolunteerPatch) (*Volunteer, error)
	Update(ctx context.Context, id string, in VolunteerPatch) (*Volunteer, error)
	Delete(ctx context.Context, id string) error
}
