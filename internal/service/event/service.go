package event

import (
	"context"
	"fmt"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
)

type EventServiceImpl struct {
	event.EventRepository
}

func NewEventService(repo event.EventRepository) event.EventService {
	return &EventServiceImpl{EventRepository: repo}
}

// List implements event.EventService.
func (s *EventServiceImpl) List(ctx context.Context) ([]event.EventResponse, error) {
	events, err := s.EventRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company events: %w", err)
	}
	return event.ToResponses(events), nil
}

// Upcoming implements event.EventService.
func (s *EventServiceImpl) Upcoming(ctx context.Context, limit int) ([]event.EventResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	today := time.Now().UTC().Format("2006-01-02")
	events, err := s.EventRepository.ListUpcoming(ctx, today, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming events: %w", err)
	}
	return event.ToResponses(events), nil
}

// Create implements event.EventService.
func (s *EventServiceImpl) Create(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	created, err := s.EventRepository.Create(ctx, event.CompanyEvent{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
	})
	if err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to create company event: %w", err)
	}
	return event.ToResponse(created), nil
}
