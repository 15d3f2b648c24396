package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/alion/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2024-01-12_00-00-00.log")
	assert.NotContains(t, names, "session_2024-01-03_00-00-00.log")
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{
		LogDir:      filepath.Join(t.TempDir(), "logs"),
		LogLevel:    "debug",
		LogFormat:   "json",
		ServiceName: "alion",
		Environment: "test",
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.Contains(t, string(data), `"service":"alion"`)
}

type fakeServer struct {
	err     error
	stopped bool
}

func (s *fakeServer) Stop(context.Context) error {
	s.stopped = true
	return s.err
}

type fakePool struct{ closed bool }

func (p *fakePool) Ping(context.Context) error { return nil }
func (p *fakePool) Close()                     { p.closed = true }

func TestGracefulShutdown(t *testing.T) {
	srv := &fakeServer{err: errors.New("deadline exceeded")}
	pool := &fakePool{}

	GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DBPool: pool})

	assert.True(t, srv.stopped)
	assert.True(t, pool.closed, "pool closes even when the server stop fails")
}
