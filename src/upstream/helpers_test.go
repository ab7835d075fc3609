package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLastPathSegment(t *testing.T) {
	tests := []struct {
		resource string
		expected string
	}{
		{"https://www.wikidata.org/wiki/Q15920", "Q15920"},
		{"https://www.wikidata.org/wiki/Q15920/", "Q15920"},
		{"https://www.wikidata.org/wiki/Q%31%35920", "Q15920"},
		{"Q1", "Q1"},
		{"", ""},
		{"/wiki/bad%zzescape", "bad%zzescape"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, lastPathSegment(test.resource), test.resource)
	}
}

func TestWikipediaTitleFromURL(t *testing.T) {
	tests := []struct {
		resource string
		title    string
		ok       bool
	}{
		{"https://en.wikipedia.org/wiki/Iron_Maiden", "Iron Maiden", true},
		{"http://EN.wikipedia.org/wiki/Led_Zeppelin", "Led Zeppelin", true},
		{"https://en.wikipedia.org/wiki/AC/DC", "AC/DC", true},
		{"https://en.wikipedia.org/wiki/AC%2FDC", "AC/DC", true},
		{"https://en.wikipedia.org/wiki/Mot%C3%B6rhead", "Motörhead", true},
		{"https://en.wikipedia.org/wiki/100%25_Funk", "100% Funk", true},
		{"https://en.wikipedia.org/w/index.php", "", false},
		{"https://en.wikipedia.org/wiki/", "", false},
		{"https://bg.wikipedia.org/wiki/Iron_Maiden", "", false},
		{"https://en.wikipedia.org/", "", false},
		{"::not a url", "", false},
	}

	for _, test := range tests {
		title, ok := wikipediaTitleFromURL(test.resource)
		assert.Equal(t, test.ok, ok, test.resource)
		assert.Equal(t, test.title, title, test.resource)
	}
}

func TestFirstPage(t *testing.T) {
	id, page, err := firstPage(json.RawMessage(`{
		"737": {"pageid": 737, "title": "Pink Floyd", "extract": "<p>pf</p>"},
		"-1": {"title": "Nope", "missing": ""}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "737", id)
	assert.Equal(t, int64(737), page.PageID)
	assert.Equal(t, "<p>pf</p>", page.Extract)
	assert.Nil(t, page.Missing)

	id, page, err = firstPage(json.RawMessage(`{"-1": {"title": "Nope", "missing": ""}}`))
	require.NoError(t, err)
	assert.Equal(t, missingPageID, id)
	assert.NotNil(t, page.Missing)

	for _, empty := range []string{``, `null`, `{}`} {
		id, _, err = firstPage(json.RawMessage(empty))
		require.NoError(t, err, "pages `%s`", empty)
		assert.Empty(t, id)
	}

	_, _, err = firstPage(json.RawMessage(`[1, 2]`))
	assert.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{})

	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.Equal(t, DefaultMusicBrainzURL, c.musicBrainzAPIHost)
	assert.Equal(t, DefaultWikidataURL, c.wikidataAPIHost)
	assert.Equal(t, DefaultWikipediaURL, c.wikipediaAPIHost)
	assert.Equal(t, rate.Inf, c.mbLimiter.Limit())
	assert.NotNil(t, c.logger)

	c = NewClient(Options{MusicBrainzRate: 1})
	assert.Equal(t, rate.Limit(1), c.mbLimiter.Limit())
	assert.Equal(t, 1, c.mbLimiter.Burst())
}
