package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/luiscarbonel1991/campsite/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService is the ledger of per-day remaining capacity.
type AvailabilityService struct {
	repo        ports.AvailabilityRepo
	cache       ports.AvailabilityCache
	horizonDays int
	dayTotal    int
	logger      logger.Logger
}

func NewAvailabilityService(
	repo ports.AvailabilityRepo,
	cache ports.AvailabilityCache,
	horizonDays int,
	dayTotal int,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		repo:        repo,
		cache:       cache,
		horizonDays: horizonDays,
		dayTotal:    dayTotal,
		logger:      logger,
	}
}

// Query reads capacity for every date in [from, to] inclusive, through the
// cache. The horizon is expected to be fully seeded: a gap is a data error.
func (s *AvailabilityService) Query(ctx context.Context, from, to time.Time) ([]domain.DayCapacity, error) {
	if days, ok := s.cache.Get(ctx, from, to); ok {
		return days, nil
	}

	days, err := s.repo.FindRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("query availability: %w", err)
	}

	if expected := domain.DaysBetween(from, to) + 1; len(days) != expected {
		return nil, fmt.Errorf("availability not seeded for %s: want %d rows, got %d",
			domain.DateRange{From: from, To: to}, expected, len(days))
	}

	s.cache.Set(ctx, from, to, days)
	return days, nil
}

// Adjust adds delta to every night in the half-open [from, to). The first date
// that would go below zero under a decrement aborts the whole batch before
// anything is persisted.
func (s *AvailabilityService) Adjust(ctx context.Context, from, to time.Time, delta int) error {
	lastNight := to.AddDate(0, 0, -1)
	if lastNight.Before(from) {
		return nil
	}

	days, err := s.repo.FindRange(ctx, from, lastNight)
	if err != nil {
		return fmt.Errorf("load availability for adjustment: %w", err)
	}
	if expected := domain.DaysBetween(from, lastNight) + 1; len(days) != expected {
		return fmt.Errorf("availability not seeded for %s: want %d rows, got %d",
			domain.DateRange{From: from, To: lastNight}, expected, len(days))
	}

	for i := range days {
		if delta < 0 && days[i].Remaining == 0 {
			return fmt.Errorf("%w: %s",
				domain.ErrCapacityExhausted, days[i].Date.Format(domain.DateLayout))
		}
		days[i].Remaining += delta
		if days[i].Remaining > days[i].Total {
			return fmt.Errorf("availability release overflow on %s: %d of %d",
				days[i].Date.Format(domain.DateLayout), days[i].Remaining, days[i].Total)
		}
	}

	if err = s.repo.SaveAll(ctx, days); err != nil {
		return fmt.Errorf("save availability: %w", err)
	}

	s.cache.EvictRange(ctx, from, lastNight)

	s.logger.Info("availability adjusted",
		logger.String("from", from.Format(domain.DateLayout)),
		logger.String("to", to.Format(domain.DateLayout)),
		logger.Int("delta", delta),
	)

	return nil
}

// EnsureHorizon seeds missing capacity rows from today through the booking
// horizon, so the full-coverage assumption of Query and Adjust holds.
func (s *AvailabilityService) EnsureHorizon(ctx context.Context) (int, error) {
	today := domain.Day(time.Now().UTC())
	inserted, err := s.repo.EnsureRange(ctx, today, today.AddDate(0, 0, s.horizonDays), s.dayTotal)
	if err != nil {
		return 0, fmt.Errorf("seed availability horizon: %w", err)
	}
	return inserted, nil
}
