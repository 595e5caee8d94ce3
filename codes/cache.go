package codes

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
)

type cacheEntry struct {
	name   string
	codeId string
	expiry time.Time
}

func (c cacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

// CachingResolver caches successful code resolutions. Misses are never
// cached, so a code definition added to the store becomes visible on the
// next lookup.
type CachingResolver struct {
	delegate   Resolver
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
}

var _ Resolver = &CachingResolver{}

func NewCachingResolver(size int, expiration time.Duration, delegate Resolver) (Resolver, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingResolver{
		delegate:   delegate,
		expiration: expiration,
		lru:        lru,
		mu:         &sync.Mutex{},
	}, nil
}

func (c *CachingResolver) Resolve(ctx context.Context, name string) (string, error) {
	if entry := c.getCachedEntry(name); entry != nil {
		return entry.codeId, nil
	}

	codeId, err := c.delegate.Resolve(ctx, name)
	if err != nil {
		return "", err
	}

	c.setCacheEntry(cacheEntry{
		name:   name,
		codeId: codeId,
		expiry: time.Now().Add(c.expiration),
	})

	return codeId, nil
}

func (c *CachingResolver) getCachedEntry(name string) *cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(name); ok {
		entry := e.(cacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(name)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingResolver) setCacheEntry(entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.name, entry)
}
