package dashboard

import (
	"context"
	"time"
)

// Service aggregates attendance and leave data for the admin view.
type Service interface {
	Summary(ctx context.Context, now time.Time) (Summary, error)
}
