package folders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

type offlineSynchronizer interface {
	Run(ctx context.Context, offlineFolderUUID string) error
}

// OfflineSync reconciles every folder with offline modifications, for
// example after the client reconnects. Different identities run
// concurrently up to workers at a time; a failure for one identity does
// not stop the others.
type OfflineSync struct {
	offline OfflineRepository
	sync    offlineSynchronizer
	workers int
	logger  *slog.Logger
}

func NewOfflineSync(offline OfflineRepository, synchronizer *SynchronizeOfflineModifications, workers int, logger *slog.Logger) *OfflineSync {
	if workers <= 0 {
		workers = 1
	}

	return &OfflineSync{
		offline: offline,
		sync:    synchronizer,
		workers: workers,
		logger:  logger,
	}
}

// RunAll returns the joined errors of every identity that failed.
func (o *OfflineSync) RunAll(ctx context.Context) error {
	ids, err := o.offline.UUIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing offline folders: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	o.logger.Info("reconciling offline folders", slog.Int("count", len(ids)))

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)

	g.SetLimit(o.workers)

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := o.sync.Run(ctx, id.String()); err != nil {
				o.logger.Warn("offline reconciliation failed",
					slog.String("uuid", id.String()),
					slog.String("error", err.Error()),
				)

				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
				mu.Unlock()
			}

			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
