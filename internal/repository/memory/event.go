package memory

import (
	"context"
	"sort"

	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository creates a memory-backed company event repository.
func NewEventRepository(store *Store) event.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(ctx context.Context, evt event.CompanyEvent) (event.CompanyEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	evt.ID = r.store.nextEventID
	r.store.nextEventID++
	r.store.events[evt.ID] = evt
	return evt, nil
}

func (r *eventRepository) List(ctx context.Context) ([]event.CompanyEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]event.CompanyEvent, 0, len(r.store.events))
	for _, evt := range r.store.events {
		events = append(events, evt)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]event.CompanyEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]event.CompanyEvent, 0)
	for _, evt := range r.store.events {
		if evt.Date >= fromDate {
			events = append(events, evt)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}
