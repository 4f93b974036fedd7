package event

import "context"

// EventService serves the company events calendar.
type EventService interface {
	List(ctx context.Context) ([]EventResponse, error)
	Upcoming(ctx context.Context, limit int) ([]EventResponse, error)
	Create(ctx context.Context, req CreateEventRequest) (EventResponse, error)
}
