package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, time.Minute, newTestLogger(t)), mr, client
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func capacityRange(from time.Time, n, remaining, total int) []domain.DayCapacity {
	days := make([]domain.DayCapacity, n)
	for i := range days {
		days[i] = domain.DayCapacity{
			Date:      from.AddDate(0, 0, i),
			Remaining: remaining,
			Total:     total,
		}
	}
	return days
}

func TestAvailabilityCache_RoundTrip(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	from := day(2026, time.September, 10)
	to := day(2026, time.September, 12)
	days := capacityRange(from, 3, 5, 10)

	c.Set(ctx, from, to, days)

	got, ok := c.Get(ctx, from, to)

	require.True(t, ok)
	require.Len(t, got, 3)
	for i := range days {
		assert.True(t, got[i].Date.Equal(days[i].Date))
		assert.Equal(t, days[i].Remaining, got[i].Remaining)
		assert.Equal(t, days[i].Total, got[i].Total)
	}
}

func TestAvailabilityCache_Miss(t *testing.T) {
	c, _, _ := newTestCache(t)

	_, ok := c.Get(context.Background(), day(2026, time.September, 10), day(2026, time.September, 12))

	assert.False(t, ok)
}

func TestAvailabilityCache_CorruptedEntryIsAMiss(t *testing.T) {
	c, _, client := newTestCache(t)
	ctx := context.Background()

	from := day(2026, time.September, 10)
	to := day(2026, time.September, 12)
	require.NoError(t, client.Set(ctx, rangeKey(from, to), "{not json", 0).Err())

	_, ok := c.Get(ctx, from, to)

	assert.False(t, ok)
}

func TestAvailabilityCache_EvictRange_Overlap(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	overlapping := capacityRange(day(2026, time.September, 10), 3, 5, 10)
	disjoint := capacityRange(day(2026, time.September, 20), 3, 5, 10)

	c.Set(ctx, day(2026, time.September, 10), day(2026, time.September, 12), overlapping)
	c.Set(ctx, day(2026, time.September, 20), day(2026, time.September, 22), disjoint)

	c.EvictRange(ctx, day(2026, time.September, 11), day(2026, time.September, 15))

	_, ok := c.Get(ctx, day(2026, time.September, 10), day(2026, time.September, 12))
	assert.False(t, ok)

	_, ok = c.Get(ctx, day(2026, time.September, 20), day(2026, time.September, 22))
	assert.True(t, ok)
}

func TestAvailabilityCache_EvictRange_BoundaryTouch(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	days := capacityRange(day(2026, time.September, 10), 3, 5, 10)
	c.Set(ctx, day(2026, time.September, 10), day(2026, time.September, 12), days)

	// eviction span ends exactly on the cached range's first date
	c.EvictRange(ctx, day(2026, time.September, 8), day(2026, time.September, 10))

	_, ok := c.Get(ctx, day(2026, time.September, 10), day(2026, time.September, 12))
	assert.False(t, ok)
}

func TestAvailabilityCache_EvictRange_DropsStaleIndexEntries(t *testing.T) {
	c, _, client := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.SAdd(ctx, indexKey, "availability:bogus").Err())

	c.EvictRange(ctx, day(2026, time.September, 10), day(2026, time.September, 12))

	members, err := client.SMembers(ctx, indexKey).Result()
	require.NoError(t, err)
	assert.NotContains(t, members, "availability:bogus")
}
