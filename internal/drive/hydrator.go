package drive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexjbarnes/drive-sync/internal/state"
)

// downloader is the subset of remote.Client used for hydration.
// Extracted for testability.
type downloader interface {
	DownloadFile(ctx context.Context, path string) ([]byte, error)
}

// recordStore tracks the last synced content per path. Extracted for
// testability.
type recordStore interface {
	SetFileRecord(rec state.FileRecord) error
	DeleteFileRecord(path string) error
}

// Hydrator materializes placeholder files by downloading their content
// into the sync root. It implements syncengine.Drive.
type Hydrator struct {
	root    *Root
	remote  downloader
	records recordStore
	logger  *slog.Logger
	now     func() time.Time
}

func NewHydrator(root *Root, remote downloader, records recordStore, logger *slog.Logger) *Hydrator {
	return &Hydrator{
		root:    root,
		remote:  remote,
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// HydrateFile downloads path and replaces the local placeholder. The
// downloaded content is recorded as synced before it lands in the root,
// so the watcher event caused by the write is not uploaded back.
func (h *Hydrator) HydrateFile(ctx context.Context, path string) error {
	content, err := h.remote.DownloadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", path, err)
	}

	err = h.records.SetFileRecord(state.FileRecord{
		Path:     path,
		Hash:     state.ContentHash(content),
		Size:     int64(len(content)),
		SyncedAt: h.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("recording %s: %w", path, err)
	}

	if err := h.root.WriteFile(path, content); err != nil {
		if delErr := h.records.DeleteFileRecord(path); delErr != nil {
			h.logger.Warn("dropping record after failed hydration",
				slog.String("path", path),
				slog.String("error", delErr.Error()),
			)
		}

		return fmt.Errorf("hydrating %s: %w", path, err)
	}

	h.logger.Debug("file hydrated",
		slog.String("path", path),
		slog.Int("bytes", len(content)),
	)

	return nil
}
