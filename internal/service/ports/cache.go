package ports

import (
	"context"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
)

// AvailabilityCache is best-effort: implementations log failures instead of
// returning them, the ledger stays authoritative.
type AvailabilityCache interface {
	Get(ctx context.Context, from, to time.Time) ([]domain.DayCapacity, bool)
	Set(ctx context.Context, from, to time.Time, days []domain.DayCapacity)
	// EvictRange drops every cached entry whose range overlaps [from, to].
	EvictRange(ctx context.Context, from, to time.Time)
}
