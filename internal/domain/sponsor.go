package domain

import (
	"context"
	"time"
)

// SponsorType is the sponsorship tier.
type SponsorType string

const (
	SponsorPlatinum  SponsorType = "PLATINUM"
	SponsorGold      SponsorType = "GOLD"
	SponsorSilver    SponsorType = "SILVER"
	SponsorBronze    SponsorType = "BRONZE"
	SponsorPartner   SponsorType = "PARTNER"
	SponsorCommunity SponsorType = "COMMUNITY"
)

// Valid reports whether t is a known tier.
func (t SponsorType) Valid() bool {
	switch t {
	case SponsorPlatinum, SponsorGold, SponsorSilver, SponsorBronze, SponsorPartner, SponsorCommunity:
		return true
	}
	return false
}

// Sponsor represents a sponsoring organisation of a conference edition.
// swagger:model Sponsor
type Sponsor struct {
	ID        string      `json:"id"`
	YearID    string      `json:"yearId"`
	Name      string      `json:"name"`
	Website   *string     `json:"website"`
	Type      SponsorType `json:"type"`
	LogoURL   *string     `json:"logoUrl"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SponsorPatch holds a partial sponsor payload used for both create and update.
type SponsorPatch struct {
	YearID  Patch[string]      `json:"yearId"`
	Name    Patch[string]      `json:"name"`
	Website Patch[string]      `json:"website"`
	Type    Patch[SponsorType] `json:"type"`
	LogoURL Patch[string]      `json:"logoUrl"`
}

// ApplyTo writes every set field of p into s.
func (p SponsorPatch) ApplyTo(s *Sponsor) {
	p.YearID.Apply(&s.YearID)
	p.Name.Apply(&s.Name)
	p.Website.ApplyNullable(&s.Website)
	p.Type.Apply(&s.Type)
	p.LogoURL.ApplyNullable(&s.LogoURL)
}

// SponsorFilter narrows a sponsor listing. YearID is required.
type SponsorFilter struct {
	YearID string
	Type   SponsorType
}

// SponsorRepository defines the interface for sponsor storage.
type SponsorRepository interface {
	YearCounter
	ListByYear(ctx context.Context, filter SponsorFilter) ([]*Sponsor, error)
	ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*Sponsor, error)
	GetByID(ctx context.Context, id string) (*Sponsor, error)
	Create(ctx context.Context, sponsor *Sponsor) error
	Update(ctx context.Context, sponsor *Sponsor) error
	Delete(ctx context.Context, id string) error
}

// SponsorService defines the business logic for sponsors.
type SponsorService interface {
	List(ctx context.Context, filter SponsorFilter) ([]*Sponsor, error)
	Get(ctx context.Context, id string) (*Sponsor, error)
	Create(ctx context.Context, in SponsorPatch) (*Sponsor, error)
	Update(ctx context.Context, id string, in SponsorPatch) (*Sponsor, error)
	Delete(ctx context.Context, id string) error
}
