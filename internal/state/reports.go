package state

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Report is a captured error waiting to be uploaded.
type Report struct {
	ID         string            `json:"id"`
	Message    string            `json:"message"`
	Attrs      map[string]string `json:"attrs,omitempty"`
	CapturedAt time.Time         `json:"capturedAt"`
}

// SaveReport persists r keyed by its ID.
func (s *State) SaveReport(r Report) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(reportsBucket), []byte(r.ID), r)
	})
}

// AllReports returns every stored report.
func (s *State) AllReports() ([]Report, error) {
	var reports []Report

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(reportsBucket).ForEach(func(_, v []byte) error {
			var r Report
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			reports = append(reports, r)

			return nil
		})
	})

	return reports, err
}

// DeleteReport removes a report once it has been delivered.
func (s *State) DeleteReport(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(reportsBucket).Delete([]byte(id))
	})
}

// ReportCount returns the number of stored reports.
func (s *State) ReportCount() int {
	count := 0
	_ = s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(reportsBucket).Stats().KeyN
		return nil
	})

	return count
}
