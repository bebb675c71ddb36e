package drive

import (
	"io"
	"log/slog"
	"testing"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func tempRoot(t *testing.T) *Root {
	t.Helper()
	return NewRoot(t.TempDir())
}
