package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Default addresses of the upstream APIs.
const (
	DefaultMusicBrainzURL = "https://musicbrainz.org"
	DefaultWikidataURL    = "https://www.wikidata.org"
	DefaultWikipediaURL   = "https://en.wikipedia.org"
	DefaultCoverArtURL    = "https://coverartarchive.org"
)

// DefaultTimeout is used for every upstream request when Options.Timeout is
// not set.
const DefaultTimeout = 10 * time.Second

// maxResponseSize caps how much of an upstream response body is read.
const maxResponseSize = 8 * 1024 * 1024

// Options configure a Client. Zero values are replaced with the defaults.
type Options struct {
	// UserAgent identifies this service to the upstream APIs. MusicBrainz
	// requires a meaningful one.
	UserAgent string

	// Timeout bounds every single upstream request, including each cover
	// art lookup.
	Timeout time.Duration

	// MusicBrainzRate is the maximum number of requests per second made to
	// the MusicBrainz API. Zero or less disables the throttling.
	MusicBrainzRate float64

	// MaxCoverLookups limits how many Cover Art Archive lookups run at the
	// same time for a single artist. Zero or less means no limit.
	MaxCoverLookups int

	MusicBrainzURL string
	WikidataURL    string
	WikipediaURL   string
	CoverArtURL    string

	Logger *slog.Logger
}

// Client talks to all the upstream APIs needed for building an artist summary:
// MusicBrainz, Wikidata, Wikipedia and the Cover Art Archive. It is safe for
// concurrent use.
//
// Requests to MusicBrainz are throttled since the kind people there ask for
// no more than one request per second from every application.
// More info: https://musicbrainz.org/doc/MusicBrainz_API/Rate_Limiting
type Client struct {
	useragent       string
	timeout         time.Duration
	maxCoverLookups int
	httpClient      *http.Client
	caaClient       CAAClient
	mbLimiter       *rate.Limiter
	logger          *slog.Logger

	musicBrainzAPIHost string
	wikidataAPIHost    string
	wikipediaAPIHost   string
}

// NewClient returns fully configured Client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MusicBrainzURL == "" {
		opts.MusicBrainzURL = DefaultMusicBrainzURL
	}
	if opts.WikidataURL == "" {
		opts.WikidataURL = DefaultWikidataURL
	}
	if opts.WikipediaURL == "" {
		opts.WikipediaURL = DefaultWikipediaURL
	}
	if opts.CoverArtURL == "" {
		opts.CoverArtURL = DefaultCoverArtURL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	limit := rate.Inf
	if opts.MusicBrainzRate > 0 {
		limit = rate.Limit(opts.MusicBrainzRate)
	}

	httpClient := &http.Client{}

	return &Client{
		useragent:       opts.UserAgent,
		timeout:         opts.Timeout,
		maxCoverLookups: opts.MaxCoverLookups,
		httpClient:      httpClient,
		caaClient: &caaHTTPClient{
			baseURL:    opts.CoverArtURL,
			useragent:  opts.UserAgent,
			httpClient: httpClient,
		},
		mbLimiter:          rate.NewLimiter(limit, 1),
		logger:             opts.Logger,
		musicBrainzAPIHost: opts.MusicBrainzURL,
		wikidataAPIHost:    opts.WikidataURL,
		wikipediaAPIHost:   opts.WikipediaURL,
	}
}

// getJSON makes a GET request to endpoint with the query values and returns the
// status code of the response. On HTTP 200 the body is decoded into result.
// On any other status it is decoded into failure on a best effort basis.
func (c *Client) getJSON(
	ctx context.Context,
	endpoint string,
	query url.Values,
	result any,
	failure any,
) (int, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("error creating API request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if failure != nil {
			_ = json.Unmarshal(body, failure)
		}
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding JSON API response: %w", err)
	}

	return resp.StatusCode, nil
}
