package domain

import (
	"context"
	"time"
)

// GeneralSetting holds edition-wide settings such as RSVP and event dates. One per year.
// swagger:model GeneralSetting
type GeneralSetting struct {
	ID                  string     `json:"id"`
	YearID              string     `json:"yearId"`
	RSVPLink            *string    `json:"rsvpLink"`
	RSVPDeadline        *time.Time `json:"rsvpDeadline"`
	EventDate           *time.Time `json:"eventDate"`
	MaxAttendees        *int       `json:"maxAttendees"`
	CallForSpeakersLink *string    `json:"callForSpeakersLink"`
	SponsorshipDeckLink *string    `json:"sponsorshipDeckLink"`
	LivestreamLink      *string    `json:"livestreamLink"`
	TaglineEn           *string    `json:"taglineEn"`
	TaglineFr           *string    `json:"taglineFr"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// GeneralSettingPatch holds a partial settings payload.
type GeneralSettingPatch struct {
	YearID              Patch[string]    `json:"yearId"`
	RSVPLink            Patch[string]    `json:"rsvpLink"`
	RSVPDeadline        Patch[time.Time] `json:"rsvpDeadline"`
	EventDate           Patch[time.Time] `json:"eventDate"`
	MaxAttendees        Patch[int]       `json:"maxAttendees"`
	CallForSpeakersLink Patch[string]    `json:"callForSpeakersLink"`
	SponsorshipDeckLink Patch[string]    `json:"sponsorshipDeckLink"`
	LivestreamLink      Patch[string]    `json:"livestreamLink"`
	TaglineEn           Patch[string]    `json:"taglineEn"`
	TaglineFr           Patch[string]    `json:"taglineFr"`
}

// ApplyTo writes every set field of p into s.
func (p GeneralSettingPatch) ApplyTo(s *GeneralSetting) {
	p.YearID.Apply(&s.YearID)
	p.RSVPLink.ApplyNullable(&s.RSVPLink)
	p.RSVPDeadline.ApplyNullable(&s.RSVPDeadline)
	p.EventDate.ApplyNullable(&s.EventDate)
	p.MaxAttendees.ApplyNullable(&s.MaxAttendees)
	p.CallForSpeakersLink.ApplyNullable(&s.CallForSpeakersLink)
	p.SponsorshipDeckLink.ApplyNullable(&s.SponsorshipDeckLink)
	p.LivestreamLink.ApplyNullable(&s.LivestreamLink)
	p.TaglineEn.ApplyNullable(&s.TaglineEn)
	p.TaglineFr.ApplyNullable(&s.TaglineFr)
}

// SettingsRepository defines the interface for general settings storage. Upsert is keyed by YearID.
type SettingsRepository interface {
	YearCounter
	GetByYear(ctx context.Context, yearID string) (*GeneralSetting, error)
	GetByID(ctx context.Context, id string) (*GeneralSetting, error)
	Upsert(ctx context.Context, setting *GeneralSetting) error
	Delete(ctx context.Context, id string) error
}

// SettingsService defines the business logic for general settings.
type SettingsService interface {
	GetByYear(ctx context.Context, yearID string) (*GeneralSetting, error)
	Upsert(ctx context.Context, in GeneralSettingPatch) (*GeneralSetting, error)
	Delete(ctx context.Context, id string) error
}
