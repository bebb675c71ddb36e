package folders

import (
	"fmt"
	"time"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/google/uuid"
)

// FolderRenamedDomainEvent records one rename observed while offline.
// Events for an aggregate are replayed in the order they were stored.
type FolderRenamedDomainEvent struct {
	EventID      string     `json:"eventId"`
	AggregateID  FolderUuid `json:"aggregateId"`
	PreviousPath FolderPath `json:"previousPath"`
	NextPath     FolderPath `json:"nextPath"`
	OccurredAt   time.Time  `json:"occurredAt"`
}

// NewFolderRenamedDomainEvent stamps a new event with an ID and the
// current time.
func NewFolderRenamedDomainEvent(aggregateID FolderUuid, previous, next FolderPath) FolderRenamedDomainEvent {
	return FolderRenamedDomainEvent{
		EventID:      uuid.NewString(),
		AggregateID:  aggregateID,
		PreviousPath: previous,
		NextPath:     next,
		OccurredAt:   time.Now().UTC(),
	}
}

// OfflineFolder is the last known state of a folder edited while
// disconnected. Renames accumulate as pending domain events until they
// are pulled and written to the event log.
type OfflineFolder struct {
	UUID   FolderUuid `json:"uuid"`
	Path   FolderPath `json:"path"`
	Parent FolderUuid `json:"parent,omitempty"`
	Status Status     `json:"status"`

	events []FolderRenamedDomainEvent
}

// NewOfflineFolder starts offline tracking from the online state.
func NewOfflineFolder(f *Folder) *OfflineFolder {
	return &OfflineFolder{
		UUID:   f.UUID,
		Path:   f.Path,
		Parent: f.Parent,
		Status: f.Status,
	}
}

func (o *OfflineFolder) Name() string { return o.Path.Name() }

func (o *OfflineFolder) Dirname() FolderPath { return o.Path.Dirname() }

func (o *OfflineFolder) Attributes() Attributes {
	return Attributes{
		UUID:   o.UUID,
		Path:   o.Path,
		Parent: o.Parent,
		Status: o.Status,
	}
}

// Rename changes the name in place and records the rename. Renaming to
// the current path records nothing.
func (o *OfflineFolder) Rename(to FolderPath) error {
	if to.Equal(o.Path) {
		return nil
	}

	if !to.Dirname().Equal(o.Dirname()) || to.IsRoot() {
		return fmt.Errorf("renaming %s to %s changes its parent: %w", o.Path, to, syncerr.ErrActionNotPermitted)
	}

	o.events = append(o.events, NewFolderRenamedDomainEvent(o.UUID, o.Path, to))
	o.Path = to

	return nil
}

// PullDomainEvents returns the pending events and clears them.
func (o *OfflineFolder) PullDomainEvents() []FolderRenamedDomainEvent {
	events := o.events
	o.events = nil

	return events
}

// Clone returns an independent copy, pending events included.
func (o *OfflineFolder) Clone() *OfflineFolder {
	c := *o
	c.events = append([]FolderRenamedDomainEvent(nil), o.events...)

	return &c
}
