package folders

import "context"

//go:generate mockgen -destination=mocks_test.go -package=folders -mock_names=folderRenamer=MockFolderRenamer . Repository,OfflineRepository,EventRepository,RemoteFileSystem,Notifier,folderRenamer

// Criteria is a partial match. Zero-valued fields match anything.
type Criteria struct {
	UUID   FolderUuid
	Path   FolderPath
	Status Status
}

// Matches reports whether the given attributes satisfy every set field.
func (c Criteria) Matches(a Attributes) bool {
	if !c.UUID.IsZero() && c.UUID != a.UUID {
		return false
	}

	if !c.Path.IsZero() && !c.Path.Equal(a.Path) {
		return false
	}

	if c.Status != "" && c.Status != a.Status {
		return false
	}

	return true
}

// Repository is the local index of online folders. SearchByPartial
// returns nil, nil when nothing matches.
type Repository interface {
	SearchByPartial(ctx context.Context, criteria Criteria) (*Folder, error)
	Update(ctx context.Context, folder *Folder) error
}

// OfflineRepository holds folders whose last known state originated
// offline and has not been reconciled yet.
type OfflineRepository interface {
	SearchByPartial(ctx context.Context, criteria Criteria) (*OfflineFolder, error)
	Update(ctx context.Context, folder *OfflineFolder) error
	Delete(ctx context.Context, uuid FolderUuid) error
	UUIDs(ctx context.Context) ([]FolderUuid, error)
}

// EventRepository is the append-only rename log. Search returns the
// events of one aggregate in the order they were stored.
type EventRepository interface {
	Store(ctx context.Context, event FolderRenamedDomainEvent) error
	Search(ctx context.Context, aggregateID FolderUuid) ([]FolderRenamedDomainEvent, error)
	Delete(ctx context.Context, aggregateID FolderUuid) error
}

// RemoteFileSystem applies folder changes against the backend.
type RemoteFileSystem interface {
	Move(ctx context.Context, uuid FolderUuid, newParent FolderUuid) error
	Rename(ctx context.Context, uuid FolderUuid, newPath FolderPath) error
}

// FolderRenamed is published on the sync-engine IPC channel after a
// rename is committed.
type FolderRenamed struct {
	UUID    FolderUuid `json:"uuid"`
	OldName string     `json:"oldName"`
	NewName string     `json:"newName"`
	Path    FolderPath `json:"path"`
}

// Notifier is a best-effort side channel. Errors are logged by the
// caller and never undo the change being announced.
type Notifier interface {
	NotifyRenamed(ctx context.Context, event FolderRenamed) error
}
