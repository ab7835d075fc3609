// Package webutils contains helpers shared by the HTTP handlers.
package webutils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSONContentType is the content type of every API response.
const JSONContentType = "application/json; charset=utf-8"

// JSONError writes a JSON object with an error message and sets the HTTP status code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", JSONContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	resp := jsonErrorMessage{
		Error: message,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&resp); err != nil {
		slog.Error("writing JSON error response failed", slog.Any("error", err))
	}
}

// JSON writes v as the JSON body of a response with the given status code.
func JSON(w http.ResponseWriter, v any, statusCode int) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(statusCode)
	_, err = w.Write(append(body, '\n'))
	return err
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}
