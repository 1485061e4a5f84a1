package lock

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

func newTestLock(t *testing.T) (*RedisLock, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, newTestLogger(t)), mr, client
}

func TestRedisLock_AcquireAndRelease(t *testing.T) {
	l, mr, _ := newTestLock(t)

	release, err := l.Acquire(context.Background(), "capacity", time.Second)

	require.NoError(t, err)
	assert.True(t, mr.Exists("campsite_lock:capacity"))

	release()
	assert.False(t, mr.Exists("campsite_lock:capacity"))
}

func TestRedisLock_ContendedTimesOut(t *testing.T) {
	l, _, _ := newTestLock(t)

	release, err := l.Acquire(context.Background(), "capacity", time.Second)
	require.NoError(t, err)
	defer release()

	_, err = l.Acquire(context.Background(), "capacity", 250*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTooHighDemand)
}

func TestRedisLock_WaitsForHolder(t *testing.T) {
	l, _, _ := newTestLock(t)

	release, err := l.Acquire(context.Background(), "capacity", time.Second)
	require.NoError(t, err)

	go func() {
		time.Sleep(30 * time.Millisecond)
		release()
	}()

	release2, err := l.Acquire(context.Background(), "capacity", time.Second)

	require.NoError(t, err)
	release2()
}

func TestRedisLock_TimeoutShorterThanPollStillRetries(t *testing.T) {
	l, _, _ := newTestLock(t)

	release, err := l.Acquire(context.Background(), "capacity", time.Second)
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		release()
	}()

	// the wait is capped by the deadline, so the final retry still happens
	release2, err := l.Acquire(context.Background(), "capacity", 80*time.Millisecond)

	require.NoError(t, err)
	release2()
}

func TestRedisLock_ReleaseKeepsForeignToken(t *testing.T) {
	l, mr, client := newTestLock(t)

	release, err := l.Acquire(context.Background(), "capacity", time.Second)
	require.NoError(t, err)

	// another holder took over after this holder's TTL would have expired
	require.NoError(t, client.Set(context.Background(), "campsite_lock:capacity", "someone-else", 0).Err())

	release()

	got, err := mr.Get("campsite_lock:capacity")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLock_ContextCancelled(t *testing.T) {
	l, _, _ := newTestLock(t)

	release, err := l.Acquire(context.Background(), "capacity", time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Acquire(ctx, "capacity", time.Second)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
