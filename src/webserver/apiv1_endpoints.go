package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIEndpointArtist = "/api/{id}"
	APIEndpointAbout  = "/about"
)

// APIMethods defines on which HTTP methods API endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIMethods = map[string][]string{
	APIEndpointArtist: {http.MethodGet},
	APIEndpointAbout:  {http.MethodGet},
}
