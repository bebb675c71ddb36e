package state

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/alexjbarnes/drive-sync/internal/folders"
	bolt "go.etcd.io/bbolt"
)

// EventStore is the bbolt-backed folders.EventRepository. Each aggregate
// gets a nested bucket under "events" keyed by a big-endian sequence, so
// a cursor walk returns events in insertion order.
type EventStore struct {
	s *State
}

// Events returns the rename event log.
func (s *State) Events() *EventStore {
	return &EventStore{s: s}
}

func (e *EventStore) Store(_ context.Context, event folders.FolderRenamedDomainEvent) error {
	err := e.s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(eventsBucket).CreateBucketIfNotExists([]byte(event.AggregateID))
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		return putJSON(b, sequenceKey(seq), event)
	})
	if err != nil {
		return fmt.Errorf("storing event for %s: %w", event.AggregateID, err)
	}

	return nil
}

func (e *EventStore) Search(_ context.Context, aggregateID folders.FolderUuid) ([]folders.FolderRenamedDomainEvent, error) {
	var events []folders.FolderRenamedDomainEvent

	err := e.s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(eventsBucket).Bucket([]byte(aggregateID))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var event folders.FolderRenamedDomainEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return err
			}

			events = append(events, event)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading events for %s: %w", aggregateID, err)
	}

	return events, nil
}

func (e *EventStore) Delete(_ context.Context, aggregateID folders.FolderUuid) error {
	return e.s.db.Update(func(tx *bolt.Tx) error {
		parent := tx.Bucket(eventsBucket)
		if parent.Bucket([]byte(aggregateID)) == nil {
			return nil
		}

		return parent.DeleteBucket([]byte(aggregateID))
	})
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)

	return key
}
