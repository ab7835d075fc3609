package summary

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cache keeps recently built summaries by artist ID. Entries expire after a
// fixed time and the least recently used ones are dropped when it is full.
type cache struct {
	lru *expirable.LRU[string, ArtistSummary]
}

func newCache(size int, ttl time.Duration) *cache {
	return &cache{
		lru: expirable.NewLRU[string, ArtistSummary](size, nil, ttl),
	}
}

func (c *cache) get(mbid string) (ArtistSummary, bool) {
	return c.lru.Get(mbid)
}

func (c *cache) add(mbid string, summary ArtistSummary) {
	c.lru.Add(mbid, summary)
}

func (c *cache) size() int {
	return c.lru.Len()
}
