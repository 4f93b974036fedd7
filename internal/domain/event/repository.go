package event

import "context"

// EventRepository defines data access for company events.
type EventRepository interface {
	Create(ctx context.Context, evt CompanyEvent) (CompanyEvent, error)

	// List returns all events, soonest date first.
	List(ctx context.Context) ([]CompanyEvent, error)

	// ListUpcoming returns events dated today or later, soonest first, at
	// most limit entries.
	ListUpcoming(ctx context.Context, fromDate string, limit int) ([]CompanyEvent, error)
}
