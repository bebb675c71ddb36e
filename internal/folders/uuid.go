package folders

import (
	"fmt"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/google/uuid"
)

// FolderUuid is the stable identity of a folder. It joins the online,
// offline, and remote representations and keys the event log.
type FolderUuid string

// NewFolderUuid validates s and returns it in canonical lowercase form.
func NewFolderUuid(s string) (FolderUuid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", syncerr.ErrInvalidUUID, s)
	}

	return FolderUuid(id.String()), nil
}

// RandomFolderUuid returns a fresh random identity.
func RandomFolderUuid() FolderUuid {
	return FolderUuid(uuid.NewString())
}

func (u FolderUuid) IsZero() bool { return u == "" }

func (u FolderUuid) String() string { return string(u) }
