package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const musicBrainzArtistEndpoint = "%s/ws/2/artist/%s"

// ArticleRef points to the Wikipedia article for an artist. Exactly one of
// the fields is set: Title when MusicBrainz links the English Wikipedia
// directly and WikidataID when the article has to be found through Wikidata.
type ArticleRef struct {
	Title      string
	WikidataID string
}

// ResolveArtist looks up the artist with MusicBrainz ID mbid. It returns the
// reference to the artist's Wikipedia article and the artist's release groups
// in the order MusicBrainz listed them. The albums do not have images yet.
func (c *Client) ResolveArtist(
	ctx context.Context,
	mbid string,
) (ArticleRef, []Album, error) {
	if err := c.mbLimiter.Wait(ctx); err != nil {
		return ArticleRef{}, nil, fmt.Errorf("waiting for MusicBrainz rate limit: %w", err)
	}

	endpoint := fmt.Sprintf(
		musicBrainzArtistEndpoint,
		c.musicBrainzAPIHost,
		url.PathEscape(mbid),
	)
	query := url.Values{}
	query.Set("fmt", "json")
	query.Set("inc", "url-rels+release-groups")

	var (
		artist  mbArtist
		failure mbError
	)
	status, err := c.getJSON(ctx, endpoint, query, &artist, &failure)
	if err != nil {
		return ArticleRef{}, nil, fmt.Errorf("MusicBrainz artist request: %w", err)
	}
	if status != http.StatusOK {
		return ArticleRef{}, nil, &UpstreamError{
			Service: "MusicBrainz",
			Status:  status,
			Message: "Error when requesting MusicBrainz API. Error message: " +
				failure.Error,
		}
	}

	albums := make([]Album, 0, len(artist.ReleaseGroups))
	for _, rg := range artist.ReleaseGroups {
		albums = append(albums, Album{
			Title: rg.Title,
			ID:    rg.ID,
		})
	}

	ref, ok := findArticleRef(artist.Relations)
	if !ok {
		return ArticleRef{}, nil, &NotFoundError{
			Message: "Error, no wikidata ID or wikipedia title found in " +
				"MusicBrainz response",
		}
	}

	return ref, albums, nil
}

// findArticleRef searches the URL relations for a link to the English Wikipedia
// first and for a Wikidata entity second.
func findArticleRef(relations []mbRelation) (ArticleRef, bool) {
	for _, rel := range relations {
		if rel.Type != "wikipedia" {
			continue
		}

		title, ok := wikipediaTitleFromURL(rel.URL.Resource)
		if ok {
			return ArticleRef{Title: title}, true
		}
	}

	for _, rel := range relations {
		if rel.Type != "wikidata" {
			continue
		}

		id := lastPathSegment(rel.URL.Resource)
		if id != "" {
			return ArticleRef{WikidataID: id}, true
		}
	}

	return ArticleRef{}, false
}

// wikipediaTitleFromURL extracts the article title from links such as
// https://en.wikipedia.org/wiki/Iron_Maiden. Only the English Wikipedia is
// accepted since this is where the descriptions come from. Titles may contain
// slashes, as in /wiki/AC/DC, so everything after /wiki/ is the title.
func wikipediaTitleFromURL(resource string) (string, bool) {
	u, err := url.Parse(resource)
	if err != nil || !strings.EqualFold(u.Hostname(), "en.wikipedia.org") {
		return "", false
	}

	title, found := strings.CutPrefix(u.Path, "/wiki/")
	if !found || title == "" {
		return "", false
	}

	return strings.ReplaceAll(title, "_", " "), true
}

// lastPathSegment returns the unescaped part of resource after its last slash.
func lastPathSegment(resource string) string {
	resource = strings.TrimRight(resource, "/")
	idx := strings.LastIndex(resource, "/")
	segment := resource[idx+1:]

	unescaped, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return unescaped
}

/*
mbArtist represents the response from the MusicBrainz artist JSON API. Only the
fields used here are decoded. Truncated example:

	{
	    "name": "Metallica",
	    "release-groups": [
	        {"id": "e8f70201-8899-3f0c-9e07-5d6495bc8046", "title": "Kill ’Em All"}
	    ],
	    "relations": [
	        {
	            "type": "wikidata",
	            "url": {"resource": "https://www.wikidata.org/wiki/Q15920"}
	        }
	    ]
	}
*/
type mbArtist struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ReleaseGroups []mbReleaseGroup `json:"release-groups"`
	Relations     []mbRelation     `json:"relations"`
}

type mbReleaseGroup struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type mbRelation struct {
	Type string `json:"type"`
	URL  struct {
		Resource string `json:"resource"`
	} `json:"url"`
}

type mbError struct {
	Error string `json:"error"`
}
