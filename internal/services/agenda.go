package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"communityday/internal/domain"
)

type agendaService struct {
	repo           domain.AgendaRepository
	speakers       domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewAgendaService creates an AgendaService backed by repo. Linked speakers are
// looked up in speakers and must belong to the item's year.
func NewAgendaService(repo domain.AgendaRepository, speakers domain.SpeakerRepository, timeout time.Duration) domain.AgendaService {
	return &agendaService{repo: repo, speakers: speakers, contextTimeout: timeout}
}

func (s *agendaService) List(ctx context.Context, filter domain.AgendaFilter) ([]*domain.AgendaItem, error) {
	if err := requireYearID(filter.YearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByYear(ctx, filter)
}

func (s *agendaService) Get(ctx context.Context, id string) (*domain.AgendaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

// Create defaults Type to TALK when the payload omits it.
func (s *agendaService) Create(ctx context.Context, in domain.AgendaItemPatch) (*domain.AgendaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	item := &domain.AgendaItem{Type: domain.AgendaTalk}
	in.ApplyTo(item)
	if err := normalizeAgendaItem(item); err != nil {
		return nil, err
	}
	if err := s.checkSpeaker(ctx, item); err != nil {
		return nil, err
	}
	now := time.Now()
	item.CreatedAt, item.UpdatedAt = now, now
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create agenda item: %w", err)
	}
	return item, nil
}

func (s *agendaService) Update(ctx context.Context, id string, in domain.AgendaItemPatch) (*domain.AgendaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.ApplyTo(item)
	if err := normalizeAgendaItem(item); err != nil {
		return nil, err
	}
	if err := s.checkSpeaker(ctx, item); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update agenda item: %w", err)
	}
	return item, nil
}

func (s *agendaService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// checkSpeaker rejects a speakerId that does not exist or belongs to another year.
func (s *agendaService) checkSpeaker(ctx context.Context, item *domain.AgendaItem) error {
	if item.SpeakerID == nil {
		return nil
	}
	sp, err := s.speakers.GetByID(ctx, *item.SpeakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: speaker %s does not exist", domain.ErrInvalidReference, *item.SpeakerID)
		}
		return fmt.Errorf("get speaker: %w", err)
	}
	if sp.YearID != item.YearID {
		return invalidf("speaker %s belongs to another year", sp.ID)
	}
	return nil
}

func normalizeAgendaItem(a *domain.AgendaItem) error {
	a.YearID = strings.TrimSpace(a.YearID)
	a.TitleEn = strings.TrimSpace(a.TitleEn)
	a.TitleFr = strings.TrimSpace(a.TitleFr)
	a.DescriptionEn = trimOptional(a.DescriptionEn)
	a.DescriptionFr = trimOptional(a.DescriptionFr)
	a.SpeakerID = trimOptional(a.SpeakerID)
	a.Location = trimOptional(a.Location)
	if err := requireYearID(a.YearID); err != nil {
		return err
	}
	if a.SpeakerID != nil {
		if err := requireID("speakerId", *a.SpeakerID); err != nil {
			return err
		}
	}
	switch {
	case a.TitleEn == "" && a.TitleFr == "":
		return invalidf("titleEn or titleFr is required")
	case a.StartTime.IsZero() || a.EndTime.IsZero():
		return invalidf("startTime and endTime are required")
	case !a.EndTime.After(a.StartTime):
		return invalidf("endTime must be after startTime")
	case !a.Type.Valid():
		return invalidf("unknown agenda type %q", a.Type)
	}
	return nil
}
