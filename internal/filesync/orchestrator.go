// Package filesync pushes local file content to the remote drive.
package filesync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/alexjbarnes/drive-sync/internal/state"
)

// fileReader reads drive paths from the sync root. Extracted for testability.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

// uploader is the subset of remote.Client used to push content.
// Extracted for testability.
type uploader interface {
	UploadFile(ctx context.Context, path string, content []byte) error
}

// recordStore tracks the last synced content per path. Extracted for
// testability.
type recordStore interface {
	GetFileRecord(path string) (*state.FileRecord, error)
	SetFileRecord(rec state.FileRecord) error
	DeleteFileRecord(path string) error
}

// Orchestrator uploads files whose content differs from the last
// successful upload.
type Orchestrator struct {
	files   fileReader
	remote  uploader
	records recordStore
	logger  *slog.Logger
	now     func() time.Time
}

func NewOrchestrator(files fileReader, remote uploader, records recordStore, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		files:   files,
		remote:  remote,
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// Run syncs every path. A failing path does not stop the others; all
// failures are joined into the returned error.
func (o *Orchestrator) Run(ctx context.Context, paths []string) error {
	var errs []error

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := o.syncFile(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("syncing %s: %w", path, err))
		}
	}

	return errors.Join(errs...)
}

func (o *Orchestrator) syncFile(ctx context.Context, path string) error {
	content, err := o.files.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Deleted before we got to it. Forget the record so a file
		// recreated with the same content is uploaded again.
		if err := o.records.DeleteFileRecord(path); err != nil {
			return fmt.Errorf("deleting record: %w", err)
		}

		o.logger.Debug("file gone, record dropped", slog.String("path", path))

		return nil
	}

	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	hash := state.ContentHash(content)

	rec, err := o.records.GetFileRecord(path)
	if err != nil {
		return fmt.Errorf("loading record: %w", err)
	}

	if rec != nil && rec.Hash == hash {
		o.logger.Debug("content unchanged, skipping upload", slog.String("path", path))
		return nil
	}

	if err := o.remote.UploadFile(ctx, path, content); err != nil {
		return err
	}

	err = o.records.SetFileRecord(state.FileRecord{
		Path:     path,
		Hash:     hash,
		Size:     int64(len(content)),
		SyncedAt: o.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	o.logger.Info("file uploaded",
		slog.String("path", path),
		slog.Int("bytes", len(content)),
	)

	return nil
}
