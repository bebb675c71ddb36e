package folders

import (
	"context"
	"fmt"
	"log/slog"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/alexjbarnes/drive-sync/internal/keylock"
)

// Renamer renames a folder in place (same parent) without overwriting
// another folder, then announces the rename on the IPC channel.
type Renamer struct {
	repo     Repository
	remote   RemoteFileSystem
	notifier Notifier
	locks    *keylock.Locker
	logger   *slog.Logger
}

func NewRenamer(repo Repository, remote RemoteFileSystem, notifier Notifier, locks *keylock.Locker, logger *slog.Logger) *Renamer {
	if locks == nil {
		locks = keylock.New()
	}

	return &Renamer{
		repo:     repo,
		remote:   remote,
		notifier: notifier,
		locks:    locks,
		logger:   logger,
	}
}

// Run renames folder to newPath. newPath must share the folder's
// dirname; anything else is a move and is rejected.
func (r *Renamer) Run(ctx context.Context, folder *Folder, newPath FolderPath) error {
	if newPath.Equal(folder.Path) {
		return nil
	}

	if folder.IsRoot() || newPath.IsRoot() || !newPath.Dirname().Equal(folder.Dirname()) {
		return fmt.Errorf("renaming %s to %s: %w", folder.Path, newPath, syncerr.ErrActionNotPermitted)
	}

	unlock := r.locks.Lock(pathKey(newPath))
	defer unlock()

	if err := checkDestination(ctx, r.repo, folder, newPath); err != nil {
		return err
	}

	if err := r.remote.Rename(ctx, folder.UUID, newPath); err != nil {
		return remoteError("rename", err)
	}

	oldName := folder.Name()

	if err := folder.Rename(newPath); err != nil {
		return err
	}

	if err := r.repo.Update(ctx, folder); err != nil {
		return fmt.Errorf("updating renamed folder %s: %w", folder.UUID, err)
	}

	r.logger.Info("folder renamed",
		slog.String("uuid", folder.UUID.String()),
		slog.String("from", oldName),
		slog.String("to", folder.Name()),
	)

	err := r.notifier.NotifyRenamed(ctx, FolderRenamed{
		UUID:    folder.UUID,
		OldName: oldName,
		NewName: folder.Name(),
		Path:    folder.Path,
	})
	if err != nil {
		r.logger.Warn("rename notification dropped",
			slog.String("uuid", folder.UUID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
