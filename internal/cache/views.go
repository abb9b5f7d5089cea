package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "news:views:"

// ViewCounter accumulates news view counts in redis so public reads never
// write to Postgres. The scheduler drains it periodically.
type ViewCounter struct {
	client *redis.Client
}

func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

func (c *ViewCounter) Increment(ctx context.Context, newsID int64) error {
	return c.client.Incr(ctx, viewKeyPrefix+strconv.FormatInt(newsID, 10)).Err()
}

// Drain atomically reads and clears every accumulated counter and returns
// the deltas keyed by news id.
func (c *ViewCounter) Drain(ctx context.Context) (map[int64]int64, error) {
	keys, err := c.client.Keys(ctx, viewKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("scan view keys: %w", err)
	}

	deltas := make(map[int64]int64, len(keys))
	for _, key := range keys {
		val, err := c.client.GetDel(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return deltas, fmt.Errorf("getdel %s: %w", key, err)
		}

		id, err := strconv.ParseInt(key[len(viewKeyPrefix):], 10, 64)
		if err != nil {
			continue
		}
		count, err := strconv.ParseInt(val, 10, 64)
		if err != nil || count == 0 {
			continue
		}
		deltas[id] = count
	}
	return deltas, nil
}
