package domain

import (
	"context"
	"time"
)

// Organizer is a member of the organising team of a conference edition.
// swagger:model Organizer
type Organizer struct {
	ID          string    `json:"id"`
	YearID      string    `json:"yearId"`
	Name        string    `json:"name"`
	Affiliation *string   `json:"affiliation"`
	Role        *string   `json:"role"`
	PhotoURL    *string   `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrganizerPatch holds a partial organizer payload used for both create and update.
type OrganizerPatch struct {
	YearID      Patch[string] `json:"yearId"`
	Name        Patch[string] `json:"name"`
	Affiliation Patch[string] `json:"affiliation"`
	Role        Patch[string] `json:"role"`
	PhotoURL    Patch[string] `json:"photoUrl"`
}

// ApplyTo writes every set field of p into o.
func (p OrganizerPatch) ApplyTo(o *Organizer) {
	p.YearID.Apply(&o.YearID)
	p.Name.Apply(&o.Name)
	p.Affiliation.ApplyNullable(&o.Affiliation)
	p.Role.ApplyNullable(&o.Role)
	p.PhotoURL.ApplyNullable(&o.PhotoURL)
}

// OrganizerRepository defines the interface for organizer storage.
type OrganizerRepository interface {
	YearCounter
	ListByYear(ctx context.Context, yearID string) ([]*Organizer, error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
	Create(ctx context.Context, organizer *Organizer) error
	Update(ctx context.Context, organizer *Organizer) error
	Delete(ctx context.Context, id string) error
}

// OrganizerService defines the business logic for organizers.
type OrganizerService interface {
	List(ctx context.Context, yearID string) ([]*Organizer, error)
	Get(ctx context.Context, id string) (*Organizer, error)
	Create(ctx context.Context, in OrganizerPatch) (*Organizer, error)
	Update(ctx context.Context, id string, in OrganizerPatch) (*Organizer, error)
	Delete(ctx context.Context, id string) error
}
