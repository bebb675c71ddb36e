package folders

import (
	"fmt"
	"time"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
)

// Status is the remote lifecycle state of a folder.
type Status string

const (
	StatusExists  Status = "EXISTS"
	StatusTrashed Status = "TRASHED"
	StatusDeleted Status = "DELETED"
)

// Folder is the locally cached view of a remote folder. Path always
// equals the parent's path plus the folder's own name; Parent is empty
// only for the drive root.
type Folder struct {
	UUID      FolderUuid `json:"uuid"`
	Path      FolderPath `json:"path"`
	Parent    FolderUuid `json:"parent,omitempty"`
	Status    Status     `json:"status"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Attributes is a plain copy of the identity fields shared by Folder
// and OfflineFolder.
type Attributes struct {
	UUID   FolderUuid
	Path   FolderPath
	Parent FolderUuid
	Status Status
}

// FromAttributes builds a Folder from a set of attributes.
func FromAttributes(a Attributes) *Folder {
	return &Folder{
		UUID:   a.UUID,
		Path:   a.Path,
		Parent: a.Parent,
		Status: a.Status,
	}
}

func (f *Folder) Name() string { return f.Path.Name() }

func (f *Folder) Dirname() FolderPath { return f.Path.Dirname() }

func (f *Folder) IsRoot() bool { return f.Path.IsRoot() }

func (f *Folder) Attributes() Attributes {
	return Attributes{
		UUID:   f.UUID,
		Path:   f.Path,
		Parent: f.Parent,
		Status: f.Status,
	}
}

// Rename changes the folder name in place. The parent must stay the same.
func (f *Folder) Rename(to FolderPath) error {
	if !to.Dirname().Equal(f.Dirname()) || to.IsRoot() {
		return fmt.Errorf("renaming %s to %s changes its parent: %w", f.Path, to, syncerr.ErrActionNotPermitted)
	}

	f.Path = to
	f.UpdatedAt = time.Now().UTC()

	return nil
}

// MoveTo re-parents the folder under parent, keeping its name.
func (f *Folder) MoveTo(parent *Folder) error {
	path, err := parent.Path.Join(f.Name())
	if err != nil {
		return fmt.Errorf("moving %s under %s: %w", f.Path, parent.Path, err)
	}

	f.Path = path
	f.Parent = parent.UUID
	f.UpdatedAt = time.Now().UTC()

	return nil
}

// Clone returns an independent copy.
func (f *Folder) Clone() *Folder {
	c := *f
	return &c
}
