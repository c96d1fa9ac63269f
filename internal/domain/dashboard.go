package domain

import (
	"context"
	"time"
)

// Activity categories reported in the dashboard feed.
const (
	ActivitySpeaker = "speaker"
	ActivityAgenda  = "agenda"
	ActivityGallery = "gallery"
	ActivitySponsor = "sponsor"
)

// DashboardStats holds per-entity record counts for a year.
// swagger:model DashboardStats
type DashboardStats struct {
	Speakers   int `json:"speakers"`
	Agenda     int `json:"agenda"`
	Gallery    int `json:"gallery"`
	Sponsors   int `json:"sponsors"`
	Organizers int `json:"organizers"`
	Volunteers int `json:"volunteers"`
	Venue      int `json:"venue"`
	Contact    int `json:"contact"`
	Settings   int `json:"settings"`
}

// ActivityItem is one entry of the recent activity feed.
// swagger:model ActivityItem
type ActivityItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompletionStatus reports which sections of a year have been filled in.
// swagger:model CompletionStatus
type CompletionStatus struct {
	Venue    bool `json:"venue"`
	Contact  bool `json:"contact"`
	Settings bool `json:"settings"`
	Speakers bool `json:"speakers"`
	Sponsors bool `json:"sponsors"`
	Agenda   bool `json:"agenda"`
}

// Dashboard is the summary view of a year.
// swagger:model Dashboard
type Dashboard struct {
	YearID           string           `json:"yearId"`
	Stats            DashboardStats   `json:"stats"`
	RecentActivity   []ActivityItem   `json:"recentActivity"`
	CompletionStatus CompletionStatus `json:"completionStatus"`
}

// DashboardService builds the dashboard summary for a year.
type DashboardService interface {
	Get(ctx context.Context, yearID string) (*Dashboard, error)
}
