package providers

import (
	"errors"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"devstats/internal/structures"
)

const defaultLargeEntries = 64

// CacheProviderInterface stores rendered JSON payloads under keys of the
// form "<source>:<username>".
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CacheProvider keeps payloads in freecache for a fixed TTL. Payloads that
// freecache rejects as too large (repository listings usually are) go to a
// bounded expirable LRU with the same TTL. Keys are case-folded since both
// upstreams resolve usernames case-insensitively.
type CacheProvider struct {
	cache      *freecache.Cache
	large      *expirable.LRU[string, []byte]
	logger     Logger
	ttlSeconds int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	ttl := max(int(conf.Cache.TTL.Seconds()), 1)
	largeEntries := conf.Cache.LargeEntries
	if largeEntries <= 0 {
		largeEntries = defaultLargeEntries
	}
	logger.Infof(TypeApp, "Response cache: %dMB + %d large entries, TTL=%ds", conf.Cache.Size, largeEntries, ttl)

	return &CacheProvider{
		cache:      freecache.NewCache(conf.Cache.Size * 1024 * 1024),
		large:      expirable.NewLRU[string, []byte](largeEntries, nil, time.Duration(ttl)*time.Second),
		logger:     logger,
		ttlSeconds: ttl,
	}
}

func cacheKey(key string) string {
	return strings.ToLower(key)
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	k := cacheKey(key)
	if payload, err := c.cache.Get([]byte(k)); err == nil {
		return payload, true
	}
	return c.large.Get(k)
}

func (c *CacheProvider) Set(key string, value []byte) {
	k := cacheKey(key)
	err := c.cache.Set([]byte(k), value, c.ttlSeconds)
	switch {
	case err == nil:
		c.large.Remove(k)
	case errors.Is(err, freecache.ErrLargeEntry):
		c.logger.Debugf(TypeApp, "Payload for %s (%d bytes) kept in the large-entry cache", k, len(value))
		c.cache.Del([]byte(k))
		c.large.Add(k, value)
	default:
		c.logger.Warnf(TypeApp, "Unable to cache %s: %s", k, err)
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
