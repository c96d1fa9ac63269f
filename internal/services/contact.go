package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityday/internal/domain"
)

type contactService struct {
	repo           domain.ContactRepository
	contextTimeout time.Duration
}

// NewContactService creates a ContactService backed by repo.
func NewContactService(repo domain.ContactRepository, timeout time.Duration) domain.ContactService {
	return &contactService{repo: repo, contextTimeout: timeout}
}

func (s *contactService) GetByYear(ctx context.Context, yearID string) (*domain.ContactInfo, error) {
	if err := requireYearID(yearID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByYear(ctx, yearID)
}

func (s *contactService) Upsert(ctx context.Context, in domain.ContactInfoPatch) (*domain.ContactInfo, error) {
	yearID, err := upsertYearID(in.YearID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	contact, err := s.repo.GetByYear(ctx, yearID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get contact info: %w", err)
		}
		contact = &domain.ContactInfo{YearID: yearID, CreatedAt: now}
	}
	in.ApplyTo(contact)
	contact.YearID = yearID
	for _, f := range []**string{&contact.Email, &contact.Phone, &contact.Address, &contact.Facebook,
		&contact.Twitter, &contact.LinkedIn, &contact.Instagram} {
		*f = trimOptional(*f)
	}
	if contact.Email != nil {
		e := normalizeEmail(*contact.Email)
		if !emailRegexp.MatchString(e) {
			return nil, invalidf("invalid email format")
		}
		contact.Email = &e
	}
	contact.UpdatedAt = now
	if err := s.repo.Upsert(ctx, contact); err != nil {
		return nil, fmt.Errorf("upsert contact info: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
