package postgresql

import (
	"context"
	"fmt"

	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

// NewEventRepository creates a postgres-backed company event repository.
func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, evt event.CompanyEvent) (event.CompanyEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_events (title, description, date, time, location, type)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		evt.Title, evt.Description, evt.Date, evt.Time, evt.Location, evt.Type,
	).Scan(&evt.ID)
	if err != nil {
		return event.CompanyEvent{}, fmt.Errorf("failed to create company event: %w", err)
	}

	return evt, nil
}

func (r *eventRepository) List(ctx context.Context) ([]event.CompanyEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, date::text, time, location, type
		FROM company_events
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list company events: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

func (r *eventRepository) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]event.CompanyEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, date::text, time, location, type
		FROM company_events
		WHERE date >= $1::date
		ORDER BY date
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, fromDate, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

func scanEventRows(rows pgx.Rows) ([]event.CompanyEvent, error) {
	events := make([]event.CompanyEvent, 0)
	for rows.Next() {
		var evt event.CompanyEvent
		err := rows.Scan(&evt.ID, &evt.Title, &evt.Description, &evt.Date, &evt.Time, &evt.Location, &evt.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company event: %w", err)
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}
