package folders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/alexjbarnes/drive-sync/internal/keylock"
)

func pathKey(p FolderPath) string { return "path:" + p.String() }

func identityKey(u FolderUuid) string { return "uuid:" + u.String() }

// remoteError tags a backend failure without translating it.
func remoteError(op string, err error) error {
	if errors.Is(err, syncerr.ErrRemoteOperation) {
		return err
	}

	return &syncerr.RemoteOperationError{Op: op, Err: err}
}

// checkDestination fails with a ConflictError when an existing folder
// other than folder occupies dest.
func checkDestination(ctx context.Context, repo Repository, folder *Folder, dest FolderPath) error {
	existing, err := repo.SearchByPartial(ctx, Criteria{Path: dest, Status: StatusExists})
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", dest, err)
	}

	if existing != nil && existing.UUID != folder.UUID {
		return &syncerr.ConflictError{Path: dest.String(), ExistingUUID: existing.UUID.String()}
	}

	return nil
}

// Mover moves a folder to a new path without ever overwriting another
// folder. Local state is only written after the backend accepts the move.
type Mover struct {
	repo   Repository
	remote RemoteFileSystem
	finder *Finder
	locks  *keylock.Locker
	logger *slog.Logger
}

// NewMover wires a Mover. locks is shared with the Renamer so both
// serialize on the same destination paths.
func NewMover(repo Repository, remote RemoteFileSystem, finder *Finder, locks *keylock.Locker, logger *slog.Logger) *Mover {
	if locks == nil {
		locks = keylock.New()
	}

	return &Mover{
		repo:   repo,
		remote: remote,
		finder: finder,
		locks:  locks,
		logger: logger,
	}
}

// Run moves folder so that its path becomes destination. The parent of
// destination must exist. A different name at the destination is
// applied as a rename after the move.
func (m *Mover) Run(ctx context.Context, folder *Folder, destination FolderPath) error {
	if destination.Equal(folder.Path) {
		return nil
	}

	if folder.IsRoot() || destination.IsRoot() || folder.Path.Contains(destination) {
		return fmt.Errorf("moving %s to %s: %w", folder.Path, destination, syncerr.ErrActionNotPermitted)
	}

	unlock := m.locks.Lock(pathKey(destination))
	defer unlock()

	if err := checkDestination(ctx, m.repo, folder, destination); err != nil {
		return err
	}

	parent, err := m.finder.Run(ctx, destination.Dirname())
	if err != nil {
		return err
	}

	renamed := destination.Name() != folder.Name()
	reparented := parent.UUID != folder.Parent

	if reparented {
		if err := m.remote.Move(ctx, folder.UUID, parent.UUID); err != nil {
			return remoteError("move", err)
		}
	}

	from := folder.Path

	if renamed {
		if err := m.remote.Rename(ctx, folder.UUID, destination); err != nil {
			if reparented {
				m.recordReparent(ctx, folder, parent, from)
			}

			return remoteError("rename", err)
		}
	}

	if err := folder.MoveTo(parent); err != nil {
		return err
	}

	if renamed {
		if err := folder.Rename(destination); err != nil {
			return err
		}
	}

	if err := m.repo.Update(ctx, folder); err != nil {
		return fmt.Errorf("updating moved folder %s: %w", folder.UUID, err)
	}

	m.logger.Info("folder moved",
		slog.String("uuid", folder.UUID.String()),
		slog.String("from", from.String()),
		slog.String("to", folder.Path.String()),
	)

	return nil
}

// recordReparent saves a move the backend accepted when the rename that
// should have followed it failed. The folder keeps its old name under
// the new parent, matching the backend.
func (m *Mover) recordReparent(ctx context.Context, folder *Folder, parent *Folder, from FolderPath) {
	err := folder.MoveTo(parent)
	if err == nil {
		err = m.repo.Update(ctx, folder)
	}

	if err != nil {
		m.logger.Warn("recording partial move",
			slog.String("uuid", folder.UUID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	m.logger.Warn("folder moved but not renamed",
		slog.String("uuid", folder.UUID.String()),
		slog.String("from", from.String()),
		slog.String("to", folder.Path.String()),
	)
}
