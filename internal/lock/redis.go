package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	keyPrefix    = "campsite_lock:"
	pollInterval = 100 * time.Millisecond
	// holdTTL caps how long a crashed holder can keep the lock.
	holdTTL = 30 * time.Second
)

// releaseScript deletes the key only if this holder's token still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// RedisLock is a named distributed lock shared by every service instance.
type RedisLock struct {
	client *redis.Client
	log    logger.Logger
}

func New(client *redis.Client, log logger.Logger) *RedisLock {
	return &RedisLock{client: client, log: log}
}

// Acquire polls SET NX until success or timeout. The returned release func is
// safe to defer and never panics; a failed release is logged and left to TTL.
func (l *RedisLock) Acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	fullKey := keyPrefix + key
	token := uuid.New().String()
	deadline := time.Now().Add(timeout)

	for {
		ok, err := l.client.SetNX(ctx, fullKey, token, holdTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %q: %w", key, err)
		}
		if ok {
			return func() { l.release(fullKey, token) }, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			l.log.Error("lock not acquired within timeout",
				logger.String("key", key),
				logger.Duration("timeout", timeout),
			)
			return nil, fmt.Errorf("%w: lock %q", domain.ErrTooHighDemand, key)
		}

		// cap the wait so the last retry lands on the deadline, not past it
		wait := pollInterval
		if remaining < wait {
			wait = remaining
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire lock %q: %w", key, ctx.Err())
		case <-time.After(wait):
		}
	}
}

func (l *RedisLock) release(fullKey, token string) {
	// The request context may already be done; the lock must be released anyway.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
		l.log.Error("failed to release lock",
			logger.String("key", fullKey),
			logger.String("error", err.Error()),
		)
	}
}
