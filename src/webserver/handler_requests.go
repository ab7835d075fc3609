package webserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader is the header which carries the request ID. It is echoed back
// when the client sends one and generated otherwise.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// statusRecorder remembers the status code of the response.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestsHandler is a http.Handler which assigns an ID to every request and
// logs it once it has been served.
type RequestsHandler struct {
	wrapped http.Handler
	logger  *slog.Logger
}

// NewRequestsHandler returns a RequestsHandler which wraps handler.
func NewRequestsHandler(handler http.Handler, logger *slog.Logger) http.Handler {
	return &RequestsHandler{
		wrapped: handler,
		logger:  logger,
	}
}

// ServeHTTP satisfies the http.Handler interface
func (rh *RequestsHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	start := time.Now()

	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = newRequestID()
	}
	writer.Header().Set(RequestIDHeader, requestID)

	ctx := context.WithValue(req.Context(), requestIDKey{}, requestID)
	recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

	rh.wrapped.ServeHTTP(recorder, req.WithContext(ctx))

	rh.logger.LogAttrs(ctx, levelForStatus(recorder.status), "request served",
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", recorder.status),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		slog.String("user_agent", req.UserAgent()),
	)
}

// newRequestID returns a time ordered UUID, or a random one in the unlikely
// case the former could not be generated.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
