package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"communityday/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// trimOptional trims s and turns a blank value into nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// requireID rejects a blank or non-UUID value for field. Postgres would
// otherwise fail the uuid cast and the caller would see a 500.
func requireID(field, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidf("%s is required", field)
	}
	if _, err := uuid.Parse(id); err != nil {
		return invalidf("%s must be a valid UUID", field)
	}
	return nil
}

func requireYearID(yearID string) error {
	return requireID("yearId", yearID)
}

// discardMedia deletes old from the media store when current no longer points to it.
// Failures are logged and swallowed; the record change has already been persisted.
func discardMedia(ctx context.Context, media domain.MediaService, logger *slog.Logger, old, current *string) {
	if media == nil || old == nil || *old == "" {
		return
	}
	if current != nil && *current == *old {
		return
	}
	if err := media.Delete(ctx, *old); err != nil {
		if errors.Is(err, domain.ErrInvalidMediaURL) {
			logger.DebugContext(ctx, "skipping media cleanup for external url", "url", *old)
			return
		}
		logger.WarnContext(ctx, "media cleanup failed", "url", *old, "err", err)
	}
}

// discardMediaList deletes every url of old that is missing from current.
func discardMediaList(ctx context.Context, media domain.MediaService, logger *slog.Logger, old, current []string) {
	keep := make(map[string]struct{}, len(current))
	for _, u := range current {
		keep[u] = struct{}{}
	}
	for _, u := range old {
		if _, ok := keep[u]; ok {
			continue
		}
		discardMedia(ctx, media, logger, &u, nil)
	}
}
