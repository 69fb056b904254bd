package services

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/event"
	"github.com/dealdesk/dealdesk/pkg/events"
)

// EventService reads the persisted event log. Writes go through
// events.Publisher; this service only serves catchup and history queries.
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetCatchupEvents returns persisted events on a channel with ID greater
// than sinceID, oldest first. Implements events.CatchupQuerier.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	catchup := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		catchup = append(catchup, events.CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		})
	}
	return catchup, nil
}

// ListByJob returns a job's full persisted event history, oldest first.
func (s *EventService) ListByJob(ctx context.Context, jobID string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(event.JobIDEQ(jobID))
	if sinceID > 0 {
		query = query.Where(event.IDGT(sinceID))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows, err := query.Order(ent.Asc(event.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, nil
}
