package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/alion/internal/domain"
)

// CacheConfig sizes the provisioned-user cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// cachedUserEntry remembers which identity a user was last provisioned from
type cachedUserEntry struct {
	Version  string
	Identity domain.Identity
	User     *domain.User
	CachedAt time.Time
}

// userCache provides an in-memory LRU of provisioned users with time-based
// expiration and version-based invalidation
type userCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newUserCache(cfg CacheConfig) *userCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached user when it was provisioned from an identical identity
func (c *userCache) Get(id domain.Identity) (*domain.User, bool) {
	entry, found := c.lru.Get(id.UserID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion || entry.Identity != id {
		c.lru.Remove(id.UserID)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.User, true
}

// Set stores a user under the identity it was provisioned from
func (c *userCache) Set(id domain.Identity, user *domain.User) {
	c.lru.Add(id.UserID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		Identity: id,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user from the cache
func (c *userCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// GetStats returns hit, miss and size counters
func (c *userCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
