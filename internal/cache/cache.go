package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"seoaudit/internal/fetch"
)

// ProbeCache remembers HEAD probe outcomes keyed by absolute URL so that the
// same asset referenced several times on a page is probed once. Entries
// expire; a cached failure is still a failure for the requests that see it.
type ProbeCache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *ProbeCache {
	return &ProbeCache{
		store: gocache.New(ttl, 15*time.Minute),
	}
}

func (c *ProbeCache) Get(url string) (*fetch.HeadResult, bool) {
	v, found := c.store.Get(url)
	if !found {
		return nil, false
	}
	res, ok := v.(*fetch.HeadResult)
	if !ok {
		return nil, false
	}
	return res, true
}

func (c *ProbeCache) Set(url string, res *fetch.HeadResult) {
	c.store.SetDefault(url, res)
}
