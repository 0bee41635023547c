// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"intrinio_sdk/internal/feature/securities/domain/entity"
	"intrinio_sdk/internal/feature/securities/usecase"
)

// CachingSecurityRepository decorates a SecurityRepository with Redis caching.
// Lookups and searches are cached; intraday prices always go to the inner
// repository.
type CachingSecurityRepository struct {
	inner     usecase.SecurityRepository
	rdb       *redis.Client
	ttl       time.Duration
	ttlFn     func() time.Duration
	namespace string
}

var _ usecase.SecurityRepository = (*CachingSecurityRepository)(nil)

// NewCachingSecurityRepository decorates a SecurityRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "securities".
func NewCachingSecurityRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SecurityRepository, namespace string) *CachingSecurityRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "securities"
	}
	return &CachingSecurityRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// WithTTLFunc makes every write ask fn for its expiry, e.g. the time left
// until the next daily refresh. A non-positive result falls back to the fixed TTL.
func (c *CachingSecurityRepository) WithTTLFunc(fn func() time.Duration) *CachingSecurityRepository {
	c.ttlFn = fn
	return c
}

// FindByIdentifier checks the cache first and falls back to the inner repository.
func (c *CachingSecurityRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Security, error) {
	if c.rdb == nil {
		return c.inner.FindByIdentifier(ctx, identifier)
	}

	key := c.securityKey(identifier)
	var cached entity.Security
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	out, err := c.inner.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// Search caches results per query and limit.
func (c *CachingSecurityRepository) Search(ctx context.Context, query string, limit int) ([]entity.Security, error) {
	if c.rdb == nil {
		return c.inner.Search(ctx, query, limit)
	}

	key := c.searchKey(query, limit)
	var cached []entity.Security
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	out, err := c.inner.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// IntradayPrices is never cached.
func (c *CachingSecurityRepository) IntradayPrices(ctx context.Context, identifier string, window usecase.IntradayWindow) ([]entity.IntradayPrice, error) {
	return c.inner.IntradayPrices(ctx, identifier, window)
}

// Purge drops every entry of this namespace, e.g. after an ingest run
// changed the latest price dates.
func (c *CachingSecurityRepository) Purge(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// get reports whether key held a decodable value. Corrupted entries are deleted.
func (c *CachingSecurityRepository) get(ctx context.Context, key string, out any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, out); err == nil {
		return true
	}
	_ = c.rdb.Del(ctx, key).Err()
	return false
}

// set stores v on a best effort basis.
func (c *CachingSecurityRepository) set(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.expiry()).Err()
	}
}

func (c *CachingSecurityRepository) expiry() time.Duration {
	if c.ttlFn != nil {
		if d := c.ttlFn(); d > 0 {
			return d
		}
	}
	return c.ttl
}

func (c *CachingSecurityRepository) securityKey(identifier string) string {
	return fmt.Sprintf("%s:security:%s", c.namespace, safe(identifier))
}

func (c *CachingSecurityRepository) searchKey(query string, limit int) string {
	return fmt.Sprintf("%s:search:%s:%d", c.namespace, safe(strings.ToLower(query)), limit)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingSecurityRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
