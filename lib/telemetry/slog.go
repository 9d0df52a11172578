package telemetry

import (
	"log/slog"
	"os"
	"sync"
	"testing"
)

// InitSlog installs the default text logger on stderr.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

var setupTestOnce sync.Once

// SetupForTesting sets up debug logging for tests, ensuring that it
// isn't set up more than once. Exporters are never started in tests.
func SetupForTesting(t testing.TB) {
	t.Helper()
	setupTestOnce.Do(func() {
		InitSlog(true)
	})
}
