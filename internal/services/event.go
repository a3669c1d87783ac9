package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventgate/internal/models"
)

// EventService is a thin read wrapper over the backend's event and ticket
// resources. The ticket type lookup is where add-to-cart gets its
// denormalized name and price from.
type EventService struct {
	api *apiClient
}

// NewEventService creates a new event service
func NewEventService(baseURL string, timeout time.Duration) *EventService {
	return &EventService{
		api: newAPIClient(baseURL, timeout),
	}
}

// ListEvents returns the published events
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	if err := s.api.getJSON(ctx, "/events", &events); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetEventByID returns a single event
func (s *EventService) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	var event models.Event
	if err := s.api.getJSON(ctx, fmt.Sprintf("/events/%d", id), &event); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) && vErr.StatusCode == 404 {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return &event, nil
}

// GetTicketTypesByEventID returns the ticket types on sale for an event
func (s *EventService) GetTicketTypesByEventID(ctx context.Context, eventID int) ([]*models.TicketType, error) {
	var ticketTypes []*models.TicketType
	if err := s.api.getJSON(ctx, fmt.Sprintf("/events/%d/tickets", eventID), &ticketTypes); err != nil {
		return nil, fmt.Errorf("failed to get ticket types for event %d: %w", eventID, err)
	}
	return ticketTypes, nil
}
