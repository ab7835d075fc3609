// Package summary builds the artist summaries served by the API out of the
// upstream data sources.
package summary

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/artistinfo/src/upstream"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ArtistSummary is everything known about a single artist. It is never
// modified once built.
type ArtistSummary struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Albums      []upstream.Album `json:"albums"`
}

// Sources is what a Service needs from the upstream APIs. It is implemented
// by *upstream.Client.
//
//counterfeiter:generate . Sources
type Sources interface {
	ResolveArtist(ctx context.Context, mbid string) (upstream.ArticleRef, []upstream.Album, error)
	ResolveTitle(ctx context.Context, wikidataID string) (string, error)
	Description(ctx context.Context, title string) (string, error)
	CoverArt(ctx context.Context, albums []upstream.Album) []upstream.Album
}

// Summarizer returns the summary for an artist by its MusicBrainz ID.
//
//counterfeiter:generate . Summarizer
type Summarizer interface {
	Summary(ctx context.Context, mbid string) (ArtistSummary, error)
}

// Default values for Options.
const (
	DefaultCacheTTL  = 5 * time.Minute
	DefaultCacheSize = 1000
)

// Options configure a Service.
type Options struct {
	// CacheTTL is how long a summary is served from memory. Zero means
	// DefaultCacheTTL.
	CacheTTL time.Duration

	// CacheSize is the maximum number of summaries kept in memory. Zero means
	// DefaultCacheSize.
	CacheSize int

	Logger *slog.Logger
}

// Service is a Summarizer which fetches the data from Sources and keeps the
// results in a short lived cache.
type Service struct {
	sources Sources
	cache   *cache
	logger  *slog.Logger
}

var _ Summarizer = (*Service)(nil)

// NewService returns a Service which uses sources for fetching the artist data.
func NewService(sources Sources, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Service{
		sources: sources,
		cache:   newCache(opts.CacheSize, opts.CacheTTL),
		logger:  opts.Logger,
	}
}

// Summary implements Summarizer. The description and the cover art are fetched
// at the same time once the artist is resolved. An error while getting the
// description stops the cover art lookups and is returned as is. Failed
// summaries are not cached and neither are the ones for which ctx was done
// before they were complete.
func (s *Service) Summary(ctx context.Context, mbid string) (ArtistSummary, error) {
	if cached, ok := s.cache.get(mbid); ok {
		s.logger.Debug("artist summary served from cache", slog.String("mbid", mbid))
		return cached, nil
	}

	ref, albums, err := s.sources.ResolveArtist(ctx, mbid)
	if err != nil {
		return ArtistSummary{}, err
	}

	var (
		description string
		covers      []upstream.Album
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		title := ref.Title
		if title == "" {
			var titleErr error
			title, titleErr = s.sources.ResolveTitle(gctx, ref.WikidataID)
			if titleErr != nil {
				return titleErr
			}
		}

		var descErr error
		description, descErr = s.sources.Description(gctx, title)
		return descErr
	})
	g.Go(func() error {
		covers = s.sources.CoverArt(gctx, albums)
		return nil
	})

	if err := g.Wait(); err != nil {
		return ArtistSummary{}, err
	}

	// Cover art lookups turn a cancelled context into missing images. Such a
	// summary is incomplete and must not reach the cache.
	if err := ctx.Err(); err != nil {
		return ArtistSummary{}, err
	}

	summary := ArtistSummary{
		ID:          mbid,
		Description: description,
		Albums:      covers,
	}
	s.cache.add(mbid, summary)

	return summary, nil
}
