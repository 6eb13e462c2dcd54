package arith

import (
	"io"
	"log/slog"
	"testing"
)

// newTestHandler returns a handler that swallows log output so tests stay quiet.
func newTestHandler(t *testing.T) slog.Handler {
	t.Helper()
	return slog.NewTextHandler(io.Discard, nil)
}
