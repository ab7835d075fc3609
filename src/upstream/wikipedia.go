package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	wikipediaAPIEndpoint = "%s/w/api.php"

	// missingPageID is the page key Wikipedia uses for titles which do not
	// match any article.
	missingPageID = "-1"

	descriptionNotFound = "Wikipedia description not found for title: "
)

// Description returns the introduction of the English Wikipedia article with
// the given title as HTML. Redirects are followed. When no such article exists
// a placeholder text which includes the title is returned instead of an error.
func (c *Client) Description(ctx context.Context, title string) (string, error) {
	query := url.Values{}
	query.Set("action", "query")
	query.Set("format", "json")
	query.Set("prop", "extracts")
	query.Set("exintro", "true")
	query.Set("redirects", "true")
	query.Set("titles", title)

	var (
		resp    wpQueryResponse
		failure wpQueryResponse
	)
	status, err := c.getJSON(
		ctx,
		fmt.Sprintf(wikipediaAPIEndpoint, c.wikipediaAPIHost),
		query,
		&resp,
		&failure,
	)
	if err != nil {
		return "", fmt.Errorf("wikipedia extracts request: %w", err)
	}
	if status != http.StatusOK {
		msg := ""
		if failure.Error != nil {
			msg = failure.Error.Info
		}
		return "", &UpstreamError{
			Service: "Wikipedia",
			Status:  status,
			Message: "Error when requesting Wikipedia API. Error message: " + msg,
		}
	}

	pageID, page, err := firstPage(resp.Query.Pages)
	if err != nil {
		return "", fmt.Errorf("wikipedia extracts response: %w", err)
	}

	if pageID == "" || pageID == missingPageID || page.Missing != nil {
		return descriptionNotFound + title, nil
	}

	return page.Extract, nil
}

// firstPage returns the first entry of the "pages" object in document order.
// Its key is a page ID which is not known before the request. Only one page is
// expected since only one title is ever queried. An empty pages object yields
// an empty ID.
func firstPage(pages json.RawMessage) (string, wpPage, error) {
	var page wpPage
	if len(pages) == 0 || bytes.Equal(pages, []byte("null")) {
		return "", page, nil
	}

	dec := json.NewDecoder(bytes.NewReader(pages))
	tok, err := dec.Token()
	if err != nil {
		return "", page, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", page, fmt.Errorf("expected pages object but got %v", tok)
	}

	if !dec.More() {
		return "", page, nil
	}

	tok, err = dec.Token()
	if err != nil {
		return "", page, err
	}
	pageID, ok := tok.(string)
	if !ok {
		return "", page, fmt.Errorf("unexpected page key %v", tok)
	}

	if err := dec.Decode(&page); err != nil {
		return "", page, fmt.Errorf("decoding page %s: %w", pageID, err)
	}

	return pageID, page, nil
}

/*
wpQueryResponse is the response of the query action with extracts. Example:

	{
	    "batchcomplete": "",
	    "query": {
	        "pages": {
	            "18787": {
	                "pageid": 18787,
	                "ns": 0,
	                "title": "Metallica",
	                "extract": "<p><b>Metallica</b> is an American heavy metal band..."
	            }
	        }
	    }
	}

Titles without an article come back under the page ID "-1" with a "missing" key.
*/
type wpQueryResponse struct {
	Query struct {
		Pages json.RawMessage `json:"pages"`
	} `json:"query"`
	Error *wdError `json:"error"`
}

type wpPage struct {
	PageID  int64   `json:"pageid"`
	Title   string  `json:"title"`
	Extract string  `json:"extract"`
	Missing *string `json:"missing"`
}
