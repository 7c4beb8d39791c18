package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
)

const listKeyPattern = "albums:list:*"

// RedisPageCache is an optional Redis-backed page cache for sessions that
// want to share cached pages across processes. Semantics match the in-memory
// store: exact-match keys, wholesale Clear on mutation. A TTL may be set for
// operators who want bounded staleness; zero means entries live until cleared.
type RedisPageCache struct {
	rdb     *redis.Client
	listTTL time.Duration
}

// check if RedisPageCache implements IPageCache
var _ contract.IPageCache = (*RedisPageCache)(nil)

// NewRedisPageCache creates a page cache on an existing Redis client.
func NewRedisPageCache(rdb *redis.Client, listTTL time.Duration) *RedisPageCache {
	return &RedisPageCache{rdb: rdb, listTTL: listTTL}
}

// Get returns the cached page for the filter, and whether it was present.
func (c *RedisPageCache) Get(ctx context.Context, filter entity.Filter) (*entity.Page, bool, error) {
	b, err := c.rdb.Get(ctx, filter.Key()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page entity.Page
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

// Set stores or overwrites the entry for the filter's key.
func (c *RedisPageCache) Set(ctx context.Context, filter entity.Filter, page *entity.Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, filter.Key(), data, c.listTTL).Err()
}

// Clear removes every cached list page.
func (c *RedisPageCache) Clear(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, listKeyPattern, 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
