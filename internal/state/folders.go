package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexjbarnes/drive-sync/internal/folders"
	bolt "go.etcd.io/bbolt"
)

// errStop ends a ForEach scan early once a match is found.
var errStop = errors.New("stop")

// FolderStore is the bbolt-backed folders.Repository. Folders are keyed
// by UUID; path lookups scan the bucket.
type FolderStore struct {
	s *State
}

// Folders returns the online folder index.
func (s *State) Folders() *FolderStore {
	return &FolderStore{s: s}
}

func (f *FolderStore) SearchByPartial(_ context.Context, criteria folders.Criteria) (*folders.Folder, error) {
	var found *folders.Folder

	err := f.s.db.View(func(tx *bolt.Tx) error {
		return searchBucket(tx.Bucket(foldersBucket), criteria, func(v []byte) (folders.Attributes, error) {
			folder := &folders.Folder{}
			if err := json.Unmarshal(v, folder); err != nil {
				return folders.Attributes{}, err
			}

			found = folder

			return folder.Attributes(), nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("searching folders: %w", err)
	}

	if found != nil && !criteria.Matches(found.Attributes()) {
		return nil, nil
	}

	return found, nil
}

func (f *FolderStore) Update(_ context.Context, folder *folders.Folder) error {
	err := f.s.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(foldersBucket), []byte(folder.UUID), folder)
	})
	if err != nil {
		return fmt.Errorf("saving folder %s: %w", folder.UUID, err)
	}

	return nil
}

// OfflineFolderStore is the bbolt-backed folders.OfflineRepository.
// Pending domain events are not persisted; callers pull them into the
// EventStore before saving.
type OfflineFolderStore struct {
	s *State
}

// OfflineFolders returns the offline folder records.
func (s *State) OfflineFolders() *OfflineFolderStore {
	return &OfflineFolderStore{s: s}
}

func (o *OfflineFolderStore) SearchByPartial(_ context.Context, criteria folders.Criteria) (*folders.OfflineFolder, error) {
	var found *folders.OfflineFolder

	err := o.s.db.View(func(tx *bolt.Tx) error {
		return searchBucket(tx.Bucket(offlineFoldersBucket), criteria, func(v []byte) (folders.Attributes, error) {
			folder := &folders.OfflineFolder{}
			if err := json.Unmarshal(v, folder); err != nil {
				return folders.Attributes{}, err
			}

			found = folder

			return folder.Attributes(), nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("searching offline folders: %w", err)
	}

	if found != nil && !criteria.Matches(found.Attributes()) {
		return nil, nil
	}

	return found, nil
}

func (o *OfflineFolderStore) Update(_ context.Context, folder *folders.OfflineFolder) error {
	err := o.s.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(offlineFoldersBucket), []byte(folder.UUID), folder)
	})
	if err != nil {
		return fmt.Errorf("saving offline folder %s: %w", folder.UUID, err)
	}

	return nil
}

func (o *OfflineFolderStore) Delete(_ context.Context, id folders.FolderUuid) error {
	return o.s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(offlineFoldersBucket).Delete([]byte(id))
	})
}

// UUIDs lists every offline identity in key order.
func (o *OfflineFolderStore) UUIDs(_ context.Context) ([]folders.FolderUuid, error) {
	var ids []folders.FolderUuid

	err := o.s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(offlineFoldersBucket).ForEach(func(k, _ []byte) error {
			ids = append(ids, folders.FolderUuid(k))
			return nil
		})
	})

	return ids, err
}

// searchBucket finds the first record matching criteria. decode parses a
// value, remembers it, and returns its attributes. A UUID criterion is a
// direct key lookup; anything else scans in key order.
func searchBucket(b *bolt.Bucket, criteria folders.Criteria, decode func([]byte) (folders.Attributes, error)) error {
	if !criteria.UUID.IsZero() {
		v := b.Get([]byte(criteria.UUID))
		if v == nil {
			return nil
		}

		_, err := decode(v)

		return err
	}

	err := b.ForEach(func(_, v []byte) error {
		attrs, err := decode(v)
		if err != nil {
			return err
		}

		if criteria.Matches(attrs) {
			return errStop
		}

		return nil
	})
	if errors.Is(err, errStop) {
		return nil
	}

	return err
}
