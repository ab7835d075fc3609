package webserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ironsmile/artistinfo/src/summary"
	"github.com/ironsmile/artistinfo/src/upstream"
	"github.com/ironsmile/artistinfo/src/webserver/webutils"
)

// StatusClientClosedRequest is used for requests which were abandoned by the
// client before a response was ready. It is not a standard HTTP status and the
// client never sees it, but it shows up in the logs.
const StatusClientClosedRequest = 499

// ArtistHandler is a http.Handler which responds with the summary of an artist
// with the MusicBrainz ID from the URL.
type ArtistHandler struct {
	summarizer summary.Summarizer
	logger     *slog.Logger
}

// NewArtistHandler returns a new ArtistHandler which uses summarizer for
// building the responses.
func NewArtistHandler(summarizer summary.Summarizer, logger *slog.Logger) *ArtistHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ArtistHandler{
		summarizer: summarizer,
		logger:     logger,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (ah *ArtistHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		writer.Header().Set("Allow", http.MethodGet)
		webutils.JSONError(writer, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	mbid, ok := mux.Vars(req)["id"]
	if !ok || mbid == "" {
		webutils.JSONError(writer, "Artist ID is required.", http.StatusNotFound)
		return
	}

	sum, err := ah.summarizer.Summary(req.Context(), mbid)
	if err != nil {
		status, msg := errorResponse(err)
		ah.logger.LogAttrs(req.Context(), levelForStatus(status), "artist lookup failed",
			slog.String("request_id", requestIDFromContext(req.Context())),
			slog.String("mbid", mbid),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
		webutils.JSONError(writer, msg, status)
		return
	}

	if err := webutils.JSON(writer, sum, http.StatusOK); err != nil {
		ah.logger.Error("writing artist response failed",
			slog.String("request_id", requestIDFromContext(req.Context())),
			slog.String("mbid", mbid),
			slog.String("error", err.Error()),
		)
	}
}

// errorResponse returns the HTTP status and the message which describe err to
// the API user. Errors from the upstream APIs keep their status code. Anything
// else means that an upstream could not be reached at all.
func errorResponse(err error) (int, string) {
	var upErr *upstream.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.StatusCode(), upErr.Message
	}

	var sc upstream.StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), err.Error()
	}

	if errors.Is(err, context.Canceled) {
		return StatusClientClosedRequest, "Request cancelled."
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "Timed out while requesting the upstream APIs."
	}

	return http.StatusBadGateway, fmt.Sprintf(
		"Error when requesting the upstream APIs. Error message: %s", err,
	)
}

// levelForStatus returns the log level for responses with the given status.
// Requests abandoned by their clients are logged at debug level.
func levelForStatus(status int) slog.Level {
	switch {
	case status == StatusClientClosedRequest:
		return slog.LevelDebug
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
