package webserver_test

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/artistinfo/src/summary"
	"github.com/ironsmile/artistinfo/src/upstream"
	"github.com/ironsmile/artistinfo/src/webserver"
)

const masterOfPuppetsID = "f44f4f73-a714-31a1-a4b8-bfcaaf311f50"

// upstreams starts fake versions of all the upstream APIs which know only
// about Metallica.
func upstreams(t *testing.T) upstream.Options {
	mbrainz := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path != "/ws/2/artist/"+metallicaMBID {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error": "Invalid mbid."}`)
				return
			}

			fmt.Fprintf(w, `{
				"release-groups": [
					{"id": %q, "title": "Master of Puppets"},
					{"id": "00000000-0000-0000-0000-000000000000", "title": "Load"}
				],
				"relations": [
					{"type": "wikidata", "url": {"resource": "https://www.wikidata.org/wiki/Q15920"}}
				]
			}`, masterOfPuppetsID)
		},
	))
	t.Cleanup(mbrainz.Close)

	wikidata := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprint(w, `{"entities": {"Q15920": {"sitelinks": {
				"enwiki": {"site": "enwiki", "title": "Metallica"}
			}}}}`)
		},
	))
	t.Cleanup(wikidata.Close)

	wikipedia := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprint(w, `{"query": {"pages": {"18787": {
				"pageid": 18787,
				"title": "Metallica",
				"extract": "<p><b>Metallica</b> is an American heavy metal band.</p>"
			}}}}`)
		},
	))
	t.Cleanup(wikipedia.Close)

	coverArt := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path != "/release-group/"+masterOfPuppetsID {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprint(w, `{"images": [{"image": "http://coverartarchive.org/release/1/2.jpg"}]}`)
		},
	))
	t.Cleanup(coverArt.Close)

	return upstream.Options{
		UserAgent:      "artistinfo/testing",
		Timeout:        5 * time.Second,
		MusicBrainzURL: mbrainz.URL,
		WikidataURL:    wikidata.URL,
		WikipediaURL:   wikipedia.URL,
		CoverArtURL:    coverArt.URL,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

func startServer(t *testing.T, cfg webserver.ServerConfig) (*webserver.Server, string) {
	opts := upstreams(t)
	svc := summary.NewService(upstream.NewClient(opts), summary.Options{
		Logger: opts.Logger,
	})

	cfg.Address = "127.0.0.1:0"
	srv := webserver.NewServer(cfg, svc, opts.Logger)
	require.NoError(t, srv.Serve())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		assert.NoError(t, srv.Stop(ctx))

		stopped := make(chan struct{})
		go func() {
			srv.Wait()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			t.Error("web server did not stop in time")
		}
	})

	return srv, "http://" + srv.Addr().String()
}

// TestServerArtistSummary goes through the whole service with fake upstreams.
func TestServerArtistSummary(t *testing.T) {
	_, baseURL := startServer(t, webserver.ServerConfig{})

	resp, err := http.Get(baseURL + "/api/" + metallicaMBID)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(webserver.RequestIDHeader))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "65f4f0c5-ef9e-490c-aee3-909e7ae6b2ab",
		"description": "<p><b>Metallica</b> is an American heavy metal band.</p>",
		"albums": [
			{
				"title": "Master of Puppets",
				"id": "f44f4f73-a714-31a1-a4b8-bfcaaf311f50",
				"image": "http://coverartarchive.org/release/1/2.jpg"
			},
			{
				"title": "Load",
				"id": "00000000-0000-0000-0000-000000000000",
				"image": "Not found."
			}
		]
	}`, string(body))
}

// TestServerErrors checks the responses for requests which could not be
// served.
func TestServerErrors(t *testing.T) {
	_, baseURL := startServer(t, webserver.ServerConfig{})

	tests := []struct {
		method         string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{
			method:         http.MethodGet,
			path:           "/api/abcde",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Error when requesting MusicBrainz API. Error message: Invalid mbid.",
		},
		{
			method:         http.MethodGet,
			path:           "/api/",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Not found.",
		},
		{
			method:         http.MethodGet,
			path:           "/no/such/path",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Not found.",
		},
		{
			method:         http.MethodPost,
			path:           "/api/" + metallicaMBID,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed.",
		},
	}

	for _, test := range tests {
		t.Run(test.method+" "+test.path, func(t *testing.T) {
			req, err := http.NewRequest(test.method, baseURL+test.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, test.expectedStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, test.expectedError, body["error"])
		})
	}
}

// TestServerGzip makes sure responses are compressed for the clients which
// accept it when gzip is turned on.
func TestServerGzip(t *testing.T) {
	_, baseURL := startServer(t, webserver.ServerConfig{Gzip: true})

	req, err := http.NewRequest(http.MethodGet, baseURL+"/about", nil)
	require.NoError(t, err)

	// Setting the header explicitly stops the transport from decompressing
	// the body on its own.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	gzr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	defer gzr.Close()

	body, err := io.ReadAll(gzr)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `"server_version"`), string(body))
}
