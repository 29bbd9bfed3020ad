package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/metrics"
	"rental-marketplace/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	searchKeyPrefix  = "properties:search:"
	searchVersionKey = searchKeyPrefix + "version"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// PropertySearchCache stores search pages under a generation number.
// Bumping the generation orphans every cached page at once; TTL reclaims them.
type PropertySearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPropertySearchCache(client *redis.Client, ttl time.Duration) *PropertySearchCache {
	return &PropertySearchCache{client: client, ttl: ttl}
}

// GetSearch resolves the generation once and returns the slot the caller must fill on a miss.
// A page computed before an invalidation is then written to the orphaned generation.
func (c *PropertySearchCache) GetSearch(ctx context.Context, key string) (*queries.PropertySearchResult, string, bool) {
	slot, err := c.key(ctx, key)
	if err != nil {
		c.fail("get", err)
		return nil, "", false
	}

	val, err := c.client.Get(ctx, slot).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.IncSearchCache("miss")
		return nil, slot, false
	}
	if err != nil {
		c.fail("get", err)
		return nil, "", false
	}

	var result queries.PropertySearchResult
	if err := json.Unmarshal(val, &result); err != nil {
		c.fail("decode", err)
		return nil, slot, false
	}
	metrics.IncSearchCache("hit")
	return &result, slot, true
}

// SetSearch stores result under a slot returned by GetSearch. An empty slot is ignored.
func (c *PropertySearchCache) SetSearch(ctx context.Context, slot string, result *queries.PropertySearchResult) {
	if slot == "" {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		c.fail("encode", err)
		return
	}
	if err := c.client.Set(ctx, slot, data, c.ttl).Err(); err != nil {
		c.fail("set", err)
	}
}

func (c *PropertySearchCache) InvalidateSearch(ctx context.Context) {
	if err := c.client.Incr(ctx, searchVersionKey).Err(); err != nil {
		c.fail("invalidate", err)
	}
}

func (c *PropertySearchCache) key(ctx context.Context, key string) (string, error) {
	version, err := c.client.Get(ctx, searchVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		version = "0"
	} else if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(key))
	return searchKeyPrefix + "v" + version + ":" + hex.EncodeToString(sum[:]), nil
}

func (c *PropertySearchCache) fail(op string, err error) {
	metrics.IncSearchCache("error")
	slog.Warn("property search cache failure", slog.String("op", op), slog.String("error", err.Error()))
}

// NoopSearchCache is used when no redis address is configured.
type NoopSearchCache struct{}

func (NoopSearchCache) GetSearch(context.Context, string) (*queries.PropertySearchResult, string, bool) {
	return nil, "", false
}

func (NoopSearchCache) SetSearch(context.Context, string, *queries.PropertySearchResult) {}

func (NoopSearchCache) InvalidateSearch(context.Context) {}
