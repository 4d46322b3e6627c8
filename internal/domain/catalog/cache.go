package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const productCacheTTL = 5 * time.Minute

// Cache is a read-through cache for individual products. A nil *Cache is a
// no-op, so the service works the same with caching disabled.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

func productKey(id int64) string {
	return fmt.Sprintf("sightseeing:%d", id)
}

func (c *Cache) Get(ctx context.Context, id int64) (*Sightseeing, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, productKey(id)).Result()
	if err != nil {
		return nil, false
	}

	var s Sightseeing
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *Cache) Set(ctx context.Context, s *Sightseeing) {
	if c == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, productKey(s.ID), data, productCacheTTL).Err()
}

func (c *Cache) Invalidate(ctx context.Context, id int64) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, productKey(id)).Err()
}
