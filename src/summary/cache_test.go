package summary

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newCache(3, time.Minute)

	for i := range 3 {
		id := fmt.Sprintf("artist-%d", i)
		c.add(id, ArtistSummary{ID: id})
	}

	// Touch the oldest one so that artist-1 becomes the least recently used.
	_, ok := c.get("artist-0")
	assert.True(t, ok)

	c.add("artist-3", ArtistSummary{ID: "artist-3"})
	assert.Equal(t, 3, c.size())

	_, ok = c.get("artist-1")
	assert.False(t, ok, "artist-1 should have been evicted")

	for _, id := range []string{"artist-0", "artist-2", "artist-3"} {
		sum, ok := c.get(id)
		assert.True(t, ok, id)
		assert.Equal(t, id, sum.ID)
	}
}

func TestCacheExpires(t *testing.T) {
	c := newCache(10, 10*time.Millisecond)
	c.add("artist", ArtistSummary{ID: "artist", Description: "desc"})

	sum, ok := c.get("artist")
	assert.True(t, ok)
	assert.Equal(t, "desc", sum.Description)

	time.Sleep(30 * time.Millisecond)

	_, ok = c.get("artist")
	assert.False(t, ok)
}
