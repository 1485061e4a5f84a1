package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type availabilitySeeder interface {
	EnsureHorizon(ctx context.Context) (int, error)
}

// Scheduler tops up availability rows through the booking horizon, so the
// ledger always finds a seeded row for any date a guest may reserve.
type Scheduler struct {
	seeder   availabilitySeeder
	interval time.Duration
	logger   logger.Logger
}

func New(
	seeder availabilitySeeder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		seeder:   seeder,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("availability seeder started",
		logger.Duration("interval", s.interval),
	)

	// seed immediately so a fresh deployment is bookable before the first tick
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("availability seeder stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	inserted, err := s.seeder.EnsureHorizon(ctx)
	if err != nil {
		s.logger.Error("failed to seed availability horizon",
			logger.String("error", err.Error()),
		)
		return
	}

	if inserted > 0 {
		s.logger.Info("availability horizon extended",
			logger.Int("days_added", inserted),
		)
	}
}
