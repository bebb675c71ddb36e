package folders

import (
	"context"
	"fmt"
	"log/slog"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/alexjbarnes/drive-sync/internal/keylock"
)

// OfflineRenamer records a rename made while disconnected. Nothing is
// sent to the backend; the recorded events are replayed on reconnect by
// SynchronizeOfflineModifications.
//
// It must share its Locker with SynchronizeOfflineModifications: both
// hold the folder's identity key, so a rename recorded during a replay
// waits for the replay to finish instead of being cleared by it.
type OfflineRenamer struct {
	offline OfflineRepository
	repo    Repository
	events  EventRepository
	locks   *keylock.Locker
	logger  *slog.Logger
}

func NewOfflineRenamer(offline OfflineRepository, repo Repository, events EventRepository, locks *keylock.Locker, logger *slog.Logger) *OfflineRenamer {
	if locks == nil {
		locks = keylock.New()
	}

	return &OfflineRenamer{
		offline: offline,
		repo:    repo,
		events:  events,
		locks:   locks,
		logger:  logger,
	}
}

// Run renames the offline view of id to newPath. The first offline edit
// of a folder seeds its offline record from the online index.
func (r *OfflineRenamer) Run(ctx context.Context, id FolderUuid, newPath FolderPath) error {
	unlock := r.locks.Lock(identityKey(id))
	defer unlock()

	offlineFolder, err := r.offline.SearchByPartial(ctx, Criteria{UUID: id})
	if err != nil {
		return fmt.Errorf("loading offline folder %s: %w", id, err)
	}

	if offlineFolder == nil {
		folder, err := r.repo.SearchByPartial(ctx, Criteria{UUID: id})
		if err != nil {
			return fmt.Errorf("loading online folder %s: %w", id, err)
		}

		if folder == nil {
			return &syncerr.NotFoundError{Path: newPath.String()}
		}

		offlineFolder = NewOfflineFolder(folder)
	}

	if err := offlineFolder.Rename(newPath); err != nil {
		return err
	}

	// Events go first: a stored event without an updated record still
	// replays, an updated record without its event does not.
	for _, event := range offlineFolder.PullDomainEvents() {
		if err := r.events.Store(ctx, event); err != nil {
			return fmt.Errorf("storing rename event for %s: %w", id, err)
		}
	}

	if err := r.offline.Update(ctx, offlineFolder); err != nil {
		return fmt.Errorf("updating offline folder %s: %w", id, err)
	}

	r.logger.Debug("offline rename recorded",
		slog.String("uuid", id.String()),
		slog.String("path", newPath.String()),
	)

	return nil
}
