package src

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/artistinfo/src/config"
)

// TestRunStopsWithContext makes sure the service shuts down cleanly once its
// context is done.
func TestRunStopsWithContext(t *testing.T) {
	cfg := config.Default()
	cfg.Listen = "127.0.0.1:0"

	var logs bytes.Buffer
	logger := newLogger(&logs, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, &cfg, logger)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after its context was cancelled")
	}

	assert.Contains(t, logs.String(), "artistinfo started")
	assert.Contains(t, logs.String(), "shutting down")
}

// TestRunListenError checks that a failure to listen is returned.
func TestRunListenError(t *testing.T) {
	lsn, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lsn.Close()

	cfg := config.Default()
	cfg.Listen = lsn.Addr().String()

	err = run(context.Background(), &cfg, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting webserver")
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer

	logger := newLogger(&out, false)
	logger.Debug("hidden")
	assert.Empty(t, out.String())

	logger = newLogger(&out, true)
	logger.Debug("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "artistinfo", entry["app"])
	assert.Equal(t, "DEBUG", entry["level"])
}
