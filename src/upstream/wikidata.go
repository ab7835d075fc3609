package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	wikidataAPIEndpoint = "%s/w/api.php"

	// englishWikiSite is the Wikidata site-link key of the English Wikipedia.
	englishWikiSite = "enwiki"
)

// ResolveTitle returns the title of the English Wikipedia article linked from
// the Wikidata entity wikidataID.
//
// The Wikidata API responds with HTTP 200 even for malformed or unknown IDs and
// describes the problem in the payload instead. So a successful response is
// considered failed when it lacks the "entities" object.
func (c *Client) ResolveTitle(ctx context.Context, wikidataID string) (string, error) {
	// The entities in the response are keyed by the canonical upper case ID.
	wikidataID = strings.ToUpper(wikidataID)

	query := url.Values{}
	query.Set("action", "wbgetentities")
	query.Set("ids", wikidataID)
	query.Set("format", "json")
	query.Set("props", "sitelinks")

	var (
		entities wdEntities
		failure  wdEntities
	)
	status, err := c.getJSON(
		ctx,
		fmt.Sprintf(wikidataAPIEndpoint, c.wikidataAPIHost),
		query,
		&entities,
		&failure,
	)
	if err != nil {
		return "", fmt.Errorf("wikidata entities request: %w", err)
	}
	if status != http.StatusOK {
		msg := ""
		if failure.Error != nil {
			msg = failure.Error.Info
		}
		return "", &UpstreamError{
			Service: "Wikidata",
			Status:  status,
			Message: "Error when requesting wikidata API. Error message: " + msg,
		}
	}

	if entities.Entities == nil {
		msg := "unrecognised response"
		if entities.Error != nil {
			msg = entities.Error.Info
		}
		return "", &BadRequestError{
			Message: "Error when requesting wikidata API. Error message: " + msg,
		}
	}

	entity, ok := entities.Entities[wikidataID]
	if !ok {
		return "", &NotFoundError{
			Message: fmt.Sprintf("wikidata entity %s was not found", wikidataID),
		}
	}

	link, ok := entity.Sitelinks[englishWikiSite]
	if !ok || link.Title == "" {
		return "", &NotFoundError{
			Message: fmt.Sprintf(
				"wikidata entity %s has no English Wikipedia article",
				wikidataID,
			),
		}
	}

	return link.Title, nil
}

/*
wdEntities is the response of the wbgetentities action. Successful responses
look like this:

	{
	    "entities": {
	        "Q15920": {
	            "id": "Q15920",
	            "sitelinks": {"enwiki": {"site": "enwiki", "title": "Metallica"}}
	        }
	    },
	    "success": 1
	}

And failed ones like that:

	{"error": {"code": "no-such-entity", "info": "Could not find an entity..."}}
*/
type wdEntities struct {
	Entities map[string]wdEntity `json:"entities"`
	Error    *wdError            `json:"error"`
}

type wdEntity struct {
	ID        string                `json:"id"`
	Sitelinks map[string]wdSitelink `json:"sitelinks"`
}

type wdSitelink struct {
	Site  string `json:"site"`
	Title string `json:"title"`
}

type wdError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}
