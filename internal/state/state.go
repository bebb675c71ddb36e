package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// stateDirPerm is the permission mode for the state directory.
	stateDirPerm = fs.FileMode(0o700)

	// stateFilePerm is the permission mode for the state database file.
	stateFilePerm = fs.FileMode(0o600)

	// stateOpenTimeout is the maximum time to wait for the bolt database lock.
	stateOpenTimeout = 5 * time.Second
)

var (
	foldersBucket        = []byte("folders")
	offlineFoldersBucket = []byte("offline_folders")
	eventsBucket         = []byte("events")
	filesBucket          = []byte("files")
	reportsBucket        = []byte("reports")
)

// FileRecord is the last content of a file that was successfully
// uploaded. Hash is the hex sha256 of that content.
type FileRecord struct {
	Path     string    `json:"path"`
	Hash     string    `json:"hash"`
	Size     int64     `json:"size"`
	SyncedAt time.Time `json:"syncedAt"`
}

// ContentHash returns the hex sha256 of content, the form stored in
// FileRecord.Hash.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// State wraps a bbolt database for all persistent application state.
type State struct {
	db *bolt.DB
}

// LoadAt opens the state database at path, creating it and its top-level
// buckets if they do not exist.
func LoadAt(path string) (*State, error) {
	if err := os.MkdirAll(filepath.Dir(path), stateDirPerm); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := bolt.Open(path, stateFilePerm, &bolt.Options{Timeout: stateOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{foldersBucket, offlineFoldersBucket, eventsBucket, filesBucket, reportsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing state db: %w", err)
	}

	return &State{db: db}, nil
}

// Close closes the database.
func (s *State) Close() error {
	return s.db.Close()
}

// GetFileRecord returns the sync record for path, or nil if the file was
// never uploaded.
func (s *State) GetFileRecord(path string) (*FileRecord, error) {
	var rec *FileRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(filesBucket).Get([]byte(path))
		if v == nil {
			return nil
		}

		rec = &FileRecord{}

		return json.Unmarshal(v, rec)
	})

	return rec, err
}

// SetFileRecord persists the sync record for rec.Path.
func (s *State) SetFileRecord(rec FileRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		return tx.Bucket(filesBucket).Put([]byte(rec.Path), data)
	})
}

// DeleteFileRecord removes the sync record for path.
func (s *State) DeleteFileRecord(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(filesBucket).Delete([]byte(path))
	})
}

// AllFileRecords returns every sync record keyed by path.
func (s *State) AllFileRecords() (map[string]FileRecord, error) {
	result := make(map[string]FileRecord)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(filesBucket).ForEach(func(k, v []byte) error {
			var rec FileRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}

			result[string(k)] = rec

			return nil
		})
	})

	return result, err
}

// putJSON marshals v under key in bucket.
func putJSON(b *bolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return b.Put(key, data)
}
