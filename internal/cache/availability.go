package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	keyPrefix = "availability:"
	// indexKey tracks every cached range key so mutations can evict overlaps.
	indexKey = "availability:keys"
)

// AvailabilityCache keeps availability query results in redis for a short TTL.
// It is strictly best-effort: every failure is logged and treated as a miss,
// the ledger remains the source of truth.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func New(client *redis.Client, ttl time.Duration, log logger.Logger) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl, log: log}
}

func rangeKey(from, to time.Time) string {
	return keyPrefix + from.Format(domain.DateLayout) + ":" + to.Format(domain.DateLayout)
}

func parseRangeKey(key string) (domain.DateRange, bool) {
	parts := strings.Split(strings.TrimPrefix(key, keyPrefix), ":")
	if len(parts) != 2 {
		return domain.DateRange{}, false
	}
	from, err := time.Parse(domain.DateLayout, parts[0])
	if err != nil {
		return domain.DateRange{}, false
	}
	to, err := time.Parse(domain.DateLayout, parts[1])
	if err != nil {
		return domain.DateRange{}, false
	}
	return domain.DateRange{From: from, To: to}, true
}

func (c *AvailabilityCache) Get(ctx context.Context, from, to time.Time) ([]domain.DayCapacity, bool) {
	data, err := c.client.Get(ctx, rangeKey(from, to)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Error("availability cache read failed",
				logger.String("key", rangeKey(from, to)),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var days []domain.DayCapacity
	if err = json.Unmarshal(data, &days); err != nil {
		c.log.Error("availability cache entry corrupted",
			logger.String("key", rangeKey(from, to)),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return days, true
}

func (c *AvailabilityCache) Set(ctx context.Context, from, to time.Time, days []domain.DayCapacity) {
	data, err := json.Marshal(days)
	if err != nil {
		c.log.Error("availability cache marshal failed",
			logger.String("error", err.Error()),
		)
		return
	}

	key := rangeKey(from, to)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, data, c.ttl)
	pipe.SAdd(ctx, indexKey, key)
	if _, err = pipe.Exec(ctx); err != nil {
		c.log.Error("availability cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

// EvictRange removes every cached entry whose range overlaps [from, to]
// inclusive. Index entries that no longer parse are dropped along the way.
func (c *AvailabilityCache) EvictRange(ctx context.Context, from, to time.Time) {
	members, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		c.log.Error("availability cache index read failed",
			logger.String("error", err.Error()),
		)
		return
	}

	var stale []interface{}
	var keys []string
	for _, member := range members {
		r, ok := parseRangeKey(member)
		if !ok {
			stale = append(stale, member)
			continue
		}
		if r.From.After(to) || r.To.Before(from) {
			continue
		}
		keys = append(keys, member)
		stale = append(stale, member)
	}
	if len(stale) == 0 {
		return
	}

	pipe := c.client.TxPipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.SRem(ctx, indexKey, stale...)
	if _, err = pipe.Exec(ctx); err != nil {
		c.log.Error("availability cache eviction failed",
			logger.String("error", err.Error()),
		)
	}
}
