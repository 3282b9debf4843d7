// Package cache stores computed classroom layouts, in redis or in process
// memory.
package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
)

type MemoryLayoutCache struct {
	items *gocache.Cache
}

func NewMemoryLayoutCache(ttl time.Duration) *MemoryLayoutCache {
	return &MemoryLayoutCache{items: gocache.New(ttl, 2*ttl)}
}

func (c *MemoryLayoutCache) Get(_ context.Context, key planner.LayoutKey) (entity.ClassroomLayout, bool, error) {
	v, ok := c.items.Get(key.String())
	if !ok {
		return entity.ClassroomLayout{}, false, nil
	}

	layout, ok := v.(entity.ClassroomLayout)

	return layout, ok, nil
}

func (c *MemoryLayoutCache) Set(_ context.Context, key planner.LayoutKey, layout entity.ClassroomLayout) error {
	c.items.Set(key.String(), layout, gocache.DefaultExpiration)
	return nil
}

func (c *MemoryLayoutCache) Invalidate(_ context.Context, cohort value.Cohort) error {
	prefix := planner.KeyPrefix(cohort)

	for k := range c.items.Items() {
		if strings.HasPrefix(k, prefix) {
			c.items.Delete(k)
		}
	}

	return nil
}
