package stats

import (
	"context"
	"time"
)

type Repository interface {
	// HerdHealth returns every animal in the farm with its latest health
	// record. A non-nil asOf restricts to animals created on or before the
	// cutoff and to records dated on or before it, so "latest" means latest
	// as of that historical point.
	HerdHealth(ctx context.Context, farmID string, asOf *time.Time) ([]AnimalHealth, error)
}
