package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker of a conference edition.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	YearID    string    `json:"yearId"`
	Name      string    `json:"name"`
	Title     *string   `json:"title"`
	Bio       *string   `json:"bio"`
	PhotoURL  *string   `json:"photoUrl"`
	KeyNote   bool      `json:"keyNote"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpeakerPatch holds a partial speaker payload used for both create and update.
type SpeakerPatch struct {
	YearID   Patch[string] `json:"yearId"`
	Name     Patch[string] `json:"name"`
	Title    Patch[string] `json:"title"`
	Bio      Patch[string] `json:"bio"`
	PhotoURL Patch[string] `json:"photoUrl"`
	KeyNote  Patch[bool]   `json:"keyNote"`
}

// ApplyTo writes every set field of p into s.
func (p SpeakerPatch) ApplyTo(s *Speaker) {
	p.YearID.Apply(&s.YearID)
	p.Name.Apply(&s.Name)
	p.Title.ApplyNullable(&s.Title)
	p.Bio.ApplyNullable(&s.Bio)
	p.PhotoURL.ApplyNullable(&s.PhotoURL)
	p.KeyNote.Apply(&s.KeyNote)
}

// SpeakerFilter narrows a speaker listing. YearID is required.
type SpeakerFilter struct {
	YearID  string
	KeyNote *bool
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	YearCounter
	ListByYear(ctx context.Context, filter SpeakerFilter) ([]*Speaker, error)
	ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*Speaker, error)
	GetByID(ctx context.Context, id string) (*Speaker, error)
	Create(ctx context.Context, speaker *Speaker) error
	Update(ctx context.Context, speaker *Speaker) error
	Delete(ctx context.Context, id string) error
}

// SpeakerService defines the business logic for speakers.
type SpeakerService interface {
	List(ctx context.Context, filter SpeakerFilter) ([]*Speaker, error)
	Get(ctx context.Context, id string) (*Speaker, error)
	Create(ctx context.Context, in SpeakerPatch) (*Speaker, error)
	Update(ctx context.Context, id string, in SpeakerPatch) (*Speaker, error)
	Delete(ctx context.Context, id string) error
}
