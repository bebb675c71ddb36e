package folders

import (
	"context"
	"fmt"
	"log/slog"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/alexjbarnes/drive-sync/internal/keylock"
)

// folderRenamer is the subset of Renamer used during replay. Extracted
// for testability.
type folderRenamer interface {
	Run(ctx context.Context, folder *Folder, newPath FolderPath) error
}

// SynchronizeOfflineModifications replays the renames recorded for one
// folder while offline onto its online counterpart.
//
// Replay is match-then-advance: an event is applied only when its
// previous path equals the online folder's current path, and the first
// event that does not match ends the run. Later events are never tried
// past a divergence, so state the offline history cannot explain is left
// alone for a later run or a manual fix.
type SynchronizeOfflineModifications struct {
	offline OfflineRepository
	repo    Repository
	renamer folderRenamer
	events  EventRepository
	locks   *keylock.Locker
	logger  *slog.Logger
}

func NewSynchronizeOfflineModifications(
	offline OfflineRepository,
	repo Repository,
	renamer folderRenamer,
	events EventRepository,
	locks *keylock.Locker,
	logger *slog.Logger,
) *SynchronizeOfflineModifications {
	if locks == nil {
		locks = keylock.New()
	}

	return &SynchronizeOfflineModifications{
		offline: offline,
		repo:    repo,
		renamer: renamer,
		events:  events,
		locks:   locks,
		logger:  logger,
	}
}

// Run reconciles the offline record for offlineFolderUUID. A missing
// offline record is a no-op, and so is an id that is not a UUID since
// no record can exist for it. A missing online folder is an
// InconsistencyError. Once every recorded event has been applied the
// offline record and its events are removed.
func (s *SynchronizeOfflineModifications) Run(ctx context.Context, offlineFolderUUID string) error {
	id, err := NewFolderUuid(offlineFolderUUID)
	if err != nil {
		s.logger.Debug("no offline modifications",
			slog.String("uuid", offlineFolderUUID),
			slog.String("error", err.Error()),
		)

		return nil
	}

	unlock := s.locks.Lock(identityKey(id))
	defer unlock()

	offlineFolder, err := s.offline.SearchByPartial(ctx, Criteria{UUID: id})
	if err != nil {
		return fmt.Errorf("loading offline folder %s: %w", id, err)
	}

	if offlineFolder == nil {
		s.logger.Debug("no offline modifications", slog.String("uuid", id.String()))
		return nil
	}

	folder, err := s.onlineFolder(ctx, id)
	if err != nil {
		return err
	}

	events, err := s.events.Search(ctx, id)
	if err != nil {
		return fmt.Errorf("loading rename events for %s: %w", id, err)
	}

	if len(events) == 0 {
		return nil
	}

	for i, event := range events {
		if !event.PreviousPath.Equal(folder.Path) {
			s.logger.Info("offline history diverged, stopping replay",
				slog.String("uuid", id.String()),
				slog.String("online_path", folder.Path.String()),
				slog.String("event_previous_path", event.PreviousPath.String()),
				slog.Int("applied", i),
				slog.Int("recorded", len(events)),
			)

			return nil
		}

		if err := s.renamer.Run(ctx, folder, event.NextPath); err != nil {
			return fmt.Errorf("replaying rename %d of %d for %s: %w", i+1, len(events), id, err)
		}

		folder, err = s.onlineFolder(ctx, id)
		if err != nil {
			return err
		}
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("clearing rename events for %s: %w", id, err)
	}

	if err := s.offline.Delete(ctx, id); err != nil {
		return fmt.Errorf("removing offline folder %s: %w", id, err)
	}

	s.logger.Info("offline modifications reconciled",
		slog.String("uuid", id.String()),
		slog.String("path", folder.Path.String()),
		slog.Int("renames", len(events)),
	)

	return nil
}

func (s *SynchronizeOfflineModifications) onlineFolder(ctx context.Context, id FolderUuid) (*Folder, error) {
	folder, err := s.repo.SearchByPartial(ctx, Criteria{UUID: id})
	if err != nil {
		return nil, fmt.Errorf("loading online folder %s: %w", id, err)
	}

	if folder == nil {
		return nil, &syncerr.InconsistencyError{UUID: id.String()}
	}

	return folder, nil
}
