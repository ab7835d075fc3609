package webserver

import (
	"net/http"
	"runtime"

	"github.com/ironsmile/artistinfo/src/version"
	"github.com/ironsmile/artistinfo/src/webserver/webutils"
)

type aboutHandler struct {
	resp aboutResponse
}

// NewAboutHandler returns the HTTP handler which shows a JSON with information
// about the server.
func NewAboutHandler() http.Handler {
	return &aboutHandler{
		resp: aboutResponse{
			ServerVersion: version.Version,
			GoVersion:     runtime.Version(),
		},
	}
}

func (h *aboutHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		writer.Header().Set("Allow", http.MethodGet)
		webutils.JSONError(writer, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	if err := webutils.JSON(writer, h.resp, http.StatusOK); err != nil {
		webutils.JSONError(writer, "Failed to encode JSON response.", http.StatusInternalServerError)
	}
}

type aboutResponse struct {
	ServerVersion string `json:"server_version"`
	GoVersion     string `json:"go_version"`
}
