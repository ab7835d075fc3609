// Package src contains the Main function of artistinfo. It should set
// everything up, create the upstream clients and the webserver and run until
// it is told to stop.
//
// It is in package src because it is imported from the project's root folder.
package src

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"

	"github.com/ironsmile/artistinfo/src/config"
	"github.com/ironsmile/artistinfo/src/daemon"
	"github.com/ironsmile/artistinfo/src/summary"
	"github.com/ironsmile/artistinfo/src/upstream"
	"github.com/ironsmile/artistinfo/src/version"
	"github.com/ironsmile/artistinfo/src/webserver"
)

// shutdownTimeout is how long requests in progress are given to finish once a
// stop signal is received.
const shutdownTimeout = 15 * time.Second

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main() {
	flags, err := daemon.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	if flags.ShowVersion {
		version.Print(os.Stdout)
		return
	}

	cfg, err := config.Load(afero.NewOsFs(), config.LoadOptions{
		File:    flags.ConfigFile,
		DotEnv:  flags.DotEnvFile,
		Environ: env.ToMap(os.Environ()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Loading configuration: %s\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stdout, cfg.Debug || flags.Debug)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), daemon.StopSignals...)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("artistinfo stopped with an error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

// run serves the API until ctx is done and then stops the webserver.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	client := upstream.NewClient(upstream.Options{
		UserAgent:       cfg.UserAgent,
		Timeout:         config.Seconds(cfg.UpstreamTimeout),
		MusicBrainzRate: cfg.MusicBrainzRate,
		MaxCoverLookups: cfg.MaxCoverLookups,
		MusicBrainzURL:  cfg.MusicBrainzURL,
		WikidataURL:     cfg.WikidataURL,
		WikipediaURL:    cfg.WikipediaURL,
		CoverArtURL:     cfg.CoverArtURL,
		Logger:          logger,
	})

	svc := summary.NewService(client, summary.Options{
		CacheTTL:  config.Seconds(cfg.CacheTTL),
		CacheSize: cfg.CacheSize,
		Logger:    logger,
	})

	srv := webserver.NewServer(webserver.ServerConfig{
		Address:      cfg.Listen,
		Gzip:         cfg.Gzip,
		ReadTimeout:  config.Seconds(cfg.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.WriteTimeout),
	}, svc, logger)

	if err := srv.Serve(); err != nil {
		return fmt.Errorf("starting webserver: %w", err)
	}

	logger.Info("artistinfo started",
		slog.String("version", version.Version),
		slog.String("address", srv.Addr().String()),
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("stopping webserver: %w", err)
	}
	srv.Wait()

	return nil
}

// newLogger returns a JSON logger which writes in out.
func newLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", "artistinfo"))
}
