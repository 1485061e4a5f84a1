package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_SeedsImmediately(t *testing.T) {
	seeder := mocks.NewMockAvailabilitySeeder(t)
	log := newTestLogger(t)

	s := New(seeder, time.Second, log) // interval longer than test

	seeder.EXPECT().EnsureHorizon(mock.Anything).Return(3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(seeder.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	seeder := mocks.NewMockAvailabilitySeeder(t)
	log := newTestLogger(t)

	s := New(seeder, 50*time.Millisecond, log)

	seeder.EXPECT().EnsureHorizon(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(seeder.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	seeder := mocks.NewMockAvailabilitySeeder(t)
	log := newTestLogger(t)

	s := New(seeder, time.Hour, log)

	seeder.EXPECT().EnsureHorizon(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	seeder := mocks.NewMockAvailabilitySeeder(t)
	log := newTestLogger(t)

	s := New(seeder, 30*time.Millisecond, log)

	seeder.EXPECT().EnsureHorizon(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	// immediate seed plus at least two ticks
	assert.GreaterOrEqual(t, len(seeder.Calls), 3)
}
