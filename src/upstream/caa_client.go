package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pborman/uuid"
	cca "gopkg.in/mineo/gocaa.v1"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . CAAClient

// CAAClient represents a Cover Art Archive client for getting the images
// information of a release group.
type CAAClient interface {
	GetReleaseGroupInfo(ctx context.Context, mbid uuid.UUID) (info *cca.CoverArtInfo, err error)
}

// caaHTTPClient is a CAAClient which does its requests with a context so that
// they are aborted together with it. Responses are decoded into the gocaa types
// and non-200 statuses are reported as cca.HTTPError, the same way the gocaa
// client does it.
type caaHTTPClient struct {
	baseURL    string
	useragent  string
	httpClient *http.Client
}

// GetReleaseGroupInfo implements CAAClient.
func (c *caaHTTPClient) GetReleaseGroupInfo(
	ctx context.Context,
	mbid uuid.UUID,
) (*cca.CoverArtInfo, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing Cover Art Archive URL: %w", err)
	}
	reqURL.Path = "/release-group/" + mbid.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Cover Art Archive request: %w", err)
	}
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, cca.HTTPError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	var info cca.CoverArtInfo
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize))
	if err := dec.Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding Cover Art Archive response: %w", err)
	}

	return &info, nil
}
