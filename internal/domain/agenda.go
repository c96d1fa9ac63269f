package domain

import (
	"context"
	"time"
)

// AgendaType classifies an agenda slot.
type AgendaType string

const (
	AgendaTalk       AgendaType = "TALK"
	AgendaKeynote    AgendaType = "KEYNOTE"
	AgendaWorkshop   AgendaType = "WORKSHOP"
	AgendaPanel      AgendaType = "PANEL"
	AgendaBreak      AgendaType = "BREAK"
	AgendaNetworking AgendaType = "NETWORKING"
	AgendaOther      AgendaType = "OTHER"
)

// Valid reports whether t is a known agenda type.
func (t AgendaType) Valid() bool {
	switch t {
	case AgendaTalk, AgendaKeynote, AgendaWorkshop, AgendaPanel, AgendaBreak, AgendaNetworking, AgendaOther:
		return true
	}
	return false
}

// AgendaItem is a bilingual schedule slot, optionally linked to a speaker.
// swagger:model AgendaItem
type AgendaItem struct {
	ID            string     `json:"id"`
	YearID        string     `json:"yearId"`
	TitleEn       string     `json:"titleEn"`
	TitleFr       string     `json:"titleFr"`
	DescriptionEn *string    `json:"descriptionEn"`
	DescriptionFr *string    `json:"descriptionFr"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	SpeakerID     *string    `json:"speakerId"`
	Location      *string    `json:"location"`
	Type          AgendaType `json:"type"`
	Published     bool       `json:"published"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AgendaItemPatch holds a partial agenda payload used for both create and update.
type AgendaItemPatch struct {
	YearID        Patch[string]     `json:"yearId"`
	TitleEn       Patch[string]     `json:"titleEn"`
	TitleFr       Patch[string]     `json:"titleFr"`
	DescriptionEn Patch[string]     `json:"descriptionEn"`
	DescriptionFr Patch[string]     `json:"descriptionFr"`
	StartTime     Patch[time.Time]  `json:"startTime"`
	EndTime       Patch[time.Time]  `json:"endTime"`
	SpeakerID     Patch[string]     `json:"speakerId"`
	Location      Patch[string]     `json:"location"`
	Type          Patch[AgendaType] `json:"type"`
	Published     Patch[bool]       `json:"published"`
}

// ApplyTo writes every set field of p into a.
func (p AgendaItemPatch) ApplyTo(a *AgendaItem) {
	p.YearID.Apply(&a.YearID)
	p.TitleEn.Apply(&a.TitleEn)
	p.TitleFr.Apply(&a.TitleFr)
	p.DescriptionEn.ApplyNullable(&a.DescriptionEn)
	p.DescriptionFr.ApplyNullable(&a.DescriptionFr)
	p.StartTime.Apply(&a.StartTime)
	p.EndTime.Apply(&a.EndTime)
	p.SpeakerID.ApplyNullable(&a.SpeakerID)
	p.Location.ApplyNullable(&a.Location)
	p.Type.Apply(&a.Type)
	p.Published.Apply(&a.Published)
}

// AgendaFilter narrows an agenda listing. YearID is required.
type AgendaFilter struct {
	YearID    string
	Published *bool
}

// AgendaRepository defines the interface for agenda storage.
type AgendaRepository interface {
	YearCounter
	ListByYear(ctx context.Context, filter AgendaFilter) ([]*AgendaItem, error)
	ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*AgendaItem, error)
	GetByID(ctx context.Context, id string) (*AgendaItem, error)
	Create(ctx context.Context, item *AgendaItem) error
	Update(ctx context.Context, item *AgendaItem) error
	Delete(ctx context.Context, id string) error
}

// AgendaService defines the business logic for agenda items.
type AgendaService interface {
	List(ctx context.Context, filter AgendaFilter) ([]*AgendaItem, error)
	Get(ctx context.Context, id string) (*AgendaItem, error)
	Create(ctx context.Context, in AgendaItemPatch) (*AgendaItem, error)
	Update(ctx context.Context, id string, in AgendaItemPatch) (*AgendaItem, error)
	Delete(ctx context.Context, id string) error
}
