package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// RedisLayoutCache keeps layouts as JSON strings with a TTL, plus one set per
// cohort listing its keys so a cohort can be dropped at once.
type RedisLayoutCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLayoutCache(client *redis.Client, ttl time.Duration) *RedisLayoutCache {
	return &RedisLayoutCache{client: client, ttl: ttl}
}

func indexKey(cohort value.Cohort) string {
	return "layouts:" + cohort.String()
}

func (c *RedisLayoutCache) Get(ctx context.Context, key planner.LayoutKey) (entity.ClassroomLayout, bool, error) {
	raw, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.ClassroomLayout{}, false, nil
	}
	if err != nil {
		return entity.ClassroomLayout{}, false, fmt.Errorf("client.Get: %w", err)
	}

	var layout entity.ClassroomLayout
	if err = json.Unmarshal(raw, &layout); err != nil {
		return entity.ClassroomLayout{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return layout, true, nil
}

func (c *RedisLayoutCache) Set(ctx context.Context, key planner.LayoutKey, layout entity.ClassroomLayout) error {
	raw, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key.String(), raw, c.ttl)
		pipe.SAdd(ctx, indexKey(key.Cohort), key.String())
		pipe.Expire(ctx, indexKey(key.Cohort), c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("client.TxPipelined: %w", err)
	}

	return nil
}

func (c *RedisLayoutCache) Invalidate(ctx context.Context, cohort value.Cohort) error {
	keys, err := c.client.SMembers(ctx, indexKey(cohort)).Result()
	if err != nil {
		return fmt.Errorf("client.SMembers: %w", err)
	}

	keys = append(keys, indexKey(cohort))

	if err = c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
