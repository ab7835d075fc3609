package upstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	cca "gopkg.in/mineo/gocaa.v1"
	"golang.org/x/sync/errgroup"
)

// CoverArt finds a cover image for every album in albums and returns them in
// the same order with their Image field set. Lookups run concurrently, one
// per album, and CoverArt returns once all of them have finished. Albums
// without an image get ImageNotFound. Failures for single albums are never
// returned as errors.
//
// For an empty list the result is a single NoAlbumDataRecord.
func (c *Client) CoverArt(ctx context.Context, albums []Album) []Album {
	if len(albums) == 0 {
		return []Album{NoAlbumDataRecord()}
	}

	result := make([]Album, len(albums))
	copy(result, albums)

	var g errgroup.Group
	if c.maxCoverLookups > 0 {
		g.SetLimit(c.maxCoverLookups)
	}

	for i := range result {
		g.Go(func() error {
			image, err := c.releaseGroupImage(ctx, result[i].ID)
			if err != nil {
				image = ImageNotFound
				c.logCoverArtError(result[i], err)
			}
			result[i].Image = image
			return nil
		})
	}

	_ = g.Wait()
	return result
}

// releaseGroupImage returns the URL of the first image for the release group
// with MusicBrainz ID mbid.
func (c *Client) releaseGroupImage(ctx context.Context, mbid string) (string, error) {
	id := cca.StringToUUID(mbid)
	if id == nil {
		return "", fmt.Errorf("malformed release group ID %q: %w", mbid, ErrImageNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	info, err := c.caaClient.GetReleaseGroupInfo(ctx, id)
	if err != nil {
		return "", err
	}

	if info == nil || len(info.Images) == 0 || info.Images[0].Image == "" {
		return "", ErrImageNotFound
	}

	return info.Images[0].Image, nil
}

func (c *Client) logCoverArtError(album Album, err error) {
	var httpErr cca.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		err = ErrImageNotFound
	}

	level := slog.LevelDebug
	if !errors.Is(err, ErrImageNotFound) {
		level = slog.LevelWarn
	}

	c.logger.Log(context.Background(), level, "cover art lookup failed",
		slog.String("album_id", album.ID),
		slog.String("album_title", album.Title),
		slog.String("error", err.Error()),
	)
}
