package ports

import (
	"context"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
)

type AvailabilityRepo interface {
	// FindRange returns the rows for every date in [from, to] inclusive, ordered by date.
	FindRange(ctx context.Context, from, to time.Time) ([]domain.DayCapacity, error)
	// SaveAll writes the batch in one transaction with per-row version checks.
	SaveAll(ctx context.Context, days []domain.DayCapacity) error
	// EnsureRange inserts missing rows for [from, to] with the given total capacity
	// and reports how many were created.
	EnsureRange(ctx context.Context, from, to time.Time, total int) (int, error)
}

type Ledger interface {
	// Query returns per-day capacity for every date in [from, to] inclusive.
	Query(ctx context.Context, from, to time.Time) ([]domain.DayCapacity, error)
	// Adjust adds delta to every date in the half-open [from, to), all-or-nothing.
	Adjust(ctx context.Context, from, to time.Time, delta int) error
}
