package providers

import "devstats/internal/structures"

// countingCache reports a hit or a miss to the metrics provider on every
// lookup of a rendered stats payload.
type countingCache struct {
	next    CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *countingCache) Get(key string) ([]byte, bool) {
	payload, found := c.next.Get(key)
	if !found {
		c.metrics.IncCacheMisses()
		return nil, false
	}
	c.metrics.IncCacheHits()
	return payload, true
}

func (c *countingCache) Set(key string, value []byte) {
	c.next.Set(key, value)
}

// NewInstrumentedCacheProvider returns the freecache-backed provider with
// hit/miss counting. A disabled cache is returned bare so that it does not
// report a miss for every request.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	cache := NewCacheProvider(conf, logger)
	if _, disabled := cache.(*noopCache); disabled {
		return cache
	}
	return &countingCache{next: cache, metrics: metrics}
}
