// Package webserver contains the HTTP server which serves the artist summaries
// API.
package webserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ironsmile/artistinfo/src/summary"
	"github.com/ironsmile/artistinfo/src/webserver/webutils"
)

// ServerConfig is everything needed for running a Server.
type ServerConfig struct {
	// Address is the TCP address to listen on, for example ":8080".
	Address string

	// Gzip turns on compressing the responses for clients which accept it.
	Gzip bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server represents our webserver. It will be controlled from here.
type Server struct {
	cfg        ServerConfig
	summarizer summary.Summarizer
	logger     *slog.Logger

	// wg is used in Server.Wait to sync with server's end
	wg sync.WaitGroup

	// httpSrv is the actual http.Server doing the HTTP work
	httpSrv *http.Server

	// listener is the server's net.Listener. Its address is returned by Addr.
	listener net.Listener
}

// NewServer returns a new Server using the supplied configuration cfg. The
// returned server is ready and calling its Serve method will start it.
func NewServer(
	cfg ServerConfig,
	summarizer summary.Summarizer,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		cfg:        cfg,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Handler returns the fully wrapped http.Handler which serves the API. It is
// what the Server uses for serving requests.
func (srv *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.Handle(APIEndpointAbout, NewAboutHandler())
	router.Handle(APIEndpointArtist, NewArtistHandler(srv.summarizer, srv.logger))
	router.NotFoundHandler = http.HandlerFunc(notFound)

	var handler http.Handler = router

	if srv.cfg.Gzip {
		srv.logger.Debug("adding gzip handler")
		handler = NewGzipHandler(handler, nil)
	}

	return NewRequestsHandler(handler, srv.logger)
}

// Serve starts listening on the configured address and serves requests in the
// background. It returns once the server is ready to accept connections.
// Trying to call this method more than once for the same server will result
// in panic.
func (srv *Server) Serve() error {
	if srv.httpSrv != nil {
		panic("Second Server.Serve call for the same server")
	}

	srv.httpSrv = &http.Server{
		Addr:              srv.cfg.Address,
		Handler:           srv.Handler(),
		ReadTimeout:       srv.cfg.ReadTimeout,
		ReadHeaderTimeout: srv.cfg.ReadTimeout,
		WriteTimeout:      srv.cfg.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(srv.logger.Handler(), slog.LevelError),
	}

	addr := srv.cfg.Address
	if addr == "" {
		addr = ":http"
	}

	lsn, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv.listener = lsn

	srv.wg.Add(1)
	go srv.serveGoroutine()

	return nil
}

func (srv *Server) serveGoroutine() {
	defer srv.wg.Done()

	srv.logger.Info("webserver started", slog.String("address", srv.listener.Addr().String()))
	err := srv.httpSrv.Serve(srv.listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		srv.logger.Error("webserver stopped", slog.String("error", err.Error()))
		return
	}

	srv.logger.Info("webserver stopped")
}

// Addr returns the address the server is listening on. It is only valid
// after Serve has returned without an error.
func (srv *Server) Addr() net.Addr {
	return srv.listener.Addr()
}

// Stop stops the webserver. Requests in progress are given until ctx is done
// to finish.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait syncs whoever called this with the server's stop.
func (srv *Server) Wait() {
	srv.wg.Wait()
}

func notFound(writer http.ResponseWriter, req *http.Request) {
	webutils.JSONError(writer, "Not found.", http.StatusNotFound)
}
