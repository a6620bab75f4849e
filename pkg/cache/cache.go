package cache

import (
	"context"
	"encoding/json"
	"time"

	"legal-chat-be/internal/pkg/logger"
)

// Cache is a best-effort JSON cache. Store failures are logged and swallowed
// so a broken cache never takes a request down with it. A nil store disables
// caching entirely.
type Cache struct {
	store Store
	log   logger.ILogger
}

func New(store Store, log logger.ILogger) *Cache {
	return &Cache{
		store: store,
		log:   log,
	}
}

func (c *Cache) Enabled() bool {
	return c.store != nil
}

// GetJSON unmarshals the cached value into dest. Returns false on miss,
// disabled cache, or any store/decode failure.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c.store == nil {
		return false
	}

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache", "cache get failed", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.log.Warn("cache", "cache entry is not valid json", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c.store == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache", "cache marshal failed", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}

	if err := c.store.Set(ctx, key, string(raw), ttl); err != nil {
		c.log.Warn("cache", "cache set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.store == nil || len(keys) == 0 {
		return
	}

	if err := c.store.Del(ctx, keys...); err != nil {
		c.log.Warn("cache", "cache delete failed", map[string]interface{}{"keys": keys, "error": err.Error()})
	}
}

// ClearPattern deletes every key matching a glob pattern, e.g. "org_documents:*".
func (c *Cache) ClearPattern(ctx context.Context, pattern string) {
	if c.store == nil {
		return
	}

	keys, err := c.store.Keys(ctx, pattern)
	if err != nil {
		c.log.Warn("cache", "cache pattern scan failed", map[string]interface{}{"pattern": pattern, "error": err.Error()})
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := c.store.Del(ctx, keys...); err != nil {
		c.log.Warn("cache", "cache pattern delete failed", map[string]interface{}{"pattern": pattern, "error": err.Error()})
	}
}
