package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"site.ateliermosaique.fr/apps/agenda/internal/models"
	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
)

type FeedService struct {
	logger *slog.Logger
	client feed.Client
	now    func() time.Time
}

// SetNow overrides the clock used to derive today. Used by tests to pin the
// partition boundary to a fixed date.
func (service *FeedService) SetNow(now func() time.Time) {
	service.now = now
}

// Load fetches the feed and returns its valid events sorted ascending by
// date. Records failing normalization are dropped without aborting the
// load; events sharing a date keep the order they had in the source.
func (service *FeedService) Load(ctx context.Context) ([]models.Event, error) {
	records, err := service.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(records))
	for _, record := range records {
		event, ok := models.NormalizeEvent(record)
		if !ok {
			continue
		}

		events = append(events, event)
	}

	service.logger.Debug(fmt.Sprintf(
		"loaded %d events, dropped %d records",
		len(events),
		len(records)-len(events),
	))

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events, nil
}

// Today returns the current local date truncated to midnight.
func (service *FeedService) Today() time.Time {
	now := service.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// Partition splits a date-sorted event sequence around today. Events dated
// today belong to upcoming. Upcoming stays soonest-first; past is returned
// most recent first, ready for display.
func (service *FeedService) Partition(
	events []models.Event,
	today time.Time,
) (upcoming []models.Event, past []models.Event) {
	for _, event := range events {
		if event.Date.Before(today) {
			past = append(past, event)
		} else {
			upcoming = append(upcoming, event)
		}
	}

	for i, j := 0, len(past)-1; i < j; i, j = i+1, j-1 {
		past[i], past[j] = past[j], past[i]
	}

	return upcoming, past
}

// NextEvent returns the earliest event dated today or later, using the same
// inclusive boundary as Partition.
func (service *FeedService) NextEvent(
	events []models.Event,
	today time.Time,
) (models.Event, bool) {
	for _, event := range events {
		if !event.Date.Before(today) {
			return event, true
		}
	}

	return models.Event{}, false
}
