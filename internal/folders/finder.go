package folders

import (
	"context"
	"fmt"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
)

// Finder resolves an existing folder by path.
type Finder struct {
	repo Repository
}

func NewFinder(repo Repository) *Finder {
	return &Finder{repo: repo}
}

// Run returns the existing folder at path, or a NotFoundError.
func (f *Finder) Run(ctx context.Context, path FolderPath) (*Folder, error) {
	folder, err := f.repo.SearchByPartial(ctx, Criteria{Path: path, Status: StatusExists})
	if err != nil {
		return nil, fmt.Errorf("finding folder %s: %w", path, err)
	}

	if folder == nil {
		return nil, &syncerr.NotFoundError{Path: path.String()}
	}

	return folder, nil
}
