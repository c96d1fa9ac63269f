package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"communityday/internal/domain"
)

const (
	recentSpeakers    = 3
	recentAgenda      = 2
	recentGallery     = 2
	recentSponsors    = 2
	maxRecentActivity = 6
)

// DashboardSources are the repositories the dashboard reads from.
type DashboardSources struct {
	Speakers   domain.SpeakerRepository
	Agenda     domain.AgendaRepository
	Gallery    domain.GalleryRepository
	Sponsors   domain.SponsorRepository
	Organizers domain.OrganizerRepository
	Volunteers domain.VolunteerRepository
	Venue      domain.VenueRepository
	Contact    domain.ContactRepository
	Settings   domain.SettingsRepository
}

type dashboardService struct {
	src            DashboardSources
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDashboardService creates a DashboardService over src.
func NewDashboardService(src DashboardSources, logger *slog.Logger, timeout time.Duration) domain.DashboardService {
	return &dashboardService{src: src, logger: logger, contextTimeout: timeout}
}

// Get runs every count and recent query concurrently. A failing query is logged and
// contributes its zero value; Get itself only fails on a blank year id.
func (s *dashboardService) Get(ctx context.Context, yearID string) (*domain.Dashboard, error) {
	if err := requireYearID(yearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var stats domain.DashboardStats
	counts := []struct {
		name    string
		counter domain.YearCounter
		dst     *int
	}{
		{"speakers", s.src.Speakers, &stats.Speakers},
		{"agenda", s.src.Agenda, &stats.Agenda},
		{"gallery", s.src.Gallery, &stats.Gallery},
		{"sponsors", s.src.Sponsors, &stats.Sponsors},
		{"organizers", s.src.Organizers, &stats.Organizers},
		{"volunteers", s.src.Volunteers, &stats.Volunteers},
		{"venue", s.src.Venue, &stats.Venue},
		{"contact", s.src.Contact, &stats.Contact},
		{"settings", s.src.Settings, &stats.Settings},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			n, err := c.counter.CountByYear(gctx, yearID)
			if err != nil {
				s.degraded(gctx, "count "+c.name, yearID, err)
				return nil
			}
			*c.dst = n
			return nil
		})
	}

	var speakers, agenda, gallery, sponsors []domain.ActivityItem
	g.Go(func() error {
		rows, err := s.src.Speakers.ListRecentByYear(gctx, yearID, recentSpeakers)
		if err != nil {
			s.degraded(gctx, "recent speakers", yearID, err)
			return nil
		}
		for _, r := range rows {
			speakers = append(speakers, domain.ActivityItem{ID: r.ID, Type: domain.ActivitySpeaker, Title: r.Name, CreatedAt: r.CreatedAt})
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.src.Agenda.ListRecentByYear(gctx, yearID, recentAgenda)
		if err != nil {
			s.degraded(gctx, "recent agenda", yearID, err)
			return nil
		}
		for _, r := range rows {
			title := r.TitleEn
			if strings.TrimSpace(title) == "" {
				title = r.TitleFr
			}
			agenda = append(agenda, domain.ActivityItem{ID: r.ID, Type: domain.ActivityAgenda, Title: title, CreatedAt: r.CreatedAt})
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.src.Gallery.ListRecentByYear(gctx, yearID, recentGallery)
		if err != nil {
			s.degraded(gctx, "recent gallery", yearID, err)
			return nil
		}
		for _, r := range rows {
			var caption string
			if r.Caption != nil {
				caption = *r.Caption
			}
			gallery = append(gallery, domain.ActivityItem{ID: r.ID, Type: domain.ActivityGallery, Title: caption, CreatedAt: r.CreatedAt})
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.src.Sponsors.ListRecentByYear(gctx, yearID, recentSponsors)
		if err != nil {
			s.degraded(gctx, "recent sponsors", yearID, err)
			return nil
		}
		for _, r := range rows {
			sponsors = append(sponsors, domain.ActivityItem{ID: r.ID, Type: domain.ActivitySponsor, Title: r.Name, CreatedAt: r.CreatedAt})
		}
		return nil
	})
	_ = g.Wait()

	return &domain.Dashboard{
		YearID:           yearID,
		Stats:            stats,
		RecentActivity:   mergeActivity(speakers, agenda, gallery, sponsors),
		CompletionStatus: completion(stats),
	}, nil
}

func (s *dashboardService) degraded(ctx context.Context, query, yearID string, err error) {
	s.logger.WarnContext(ctx, "dashboard query failed", "query", query, "year_id", yearID, "err", err)
}

// mergeActivity concatenates groups in order, drops untitled rows, sorts newest first
// (ties keep input order) and keeps the first maxRecentActivity.
func mergeActivity(groups ...[]domain.ActivityItem) []domain.ActivityItem {
	merged := make([]domain.ActivityItem, 0, maxRecentActivity)
	for _, group := range groups {
		for _, item := range group {
			if strings.TrimSpace(item.Title) == "" {
				continue
			}
			merged = append(merged, item)
		}
	}
	slices.SortStableFunc(merged, func(a, b domain.ActivityItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(merged) > maxRecentActivity {
		merged = merged[:maxRecentActivity]
	}
	return merged
}

func completion(stats domain.DashboardStats) domain.CompletionStatus {
	return domain.CompletionStatus{
		Venue:    stats.Venue > 0,
		Contact:  stats.Contact > 0,
		Settings: stats.Settings > 0,
		Speakers: stats.Speakers > 0,
		Sponsors: stats.Sponsors > 0,
		Agenda:   stats.Agenda > 0,
	}
}
