// Package ledger owns the durable booking record set.
package ledger

import (
	"sweetcrumb/database/jsonstore"
	"sweetcrumb/models"
)

// Store is the booking ledger contract. ReadAll and WriteAll are wholesale:
// the caller is expected to hold its own lock around any read-check-write
// sequence, since two interleaved Append calls could otherwise both see the
// same snapshot.
type Store interface {
	ReadAll() ([]models.Booking, error)
	WriteAll(bookings []models.Booking) error
	HasDate(date string) (bool, error)
	Append(b models.Booking) error
}

// FileStore backs the ledger with a single JSON array file.
type FileStore struct {
	col *jsonstore.Collection[models.Booking]
}

// NewFileStore returns a ledger stored at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{col: jsonstore.New[models.Booking](path)}
}

// ReadAll returns every booking in stored order. A missing file is an empty
// ledger, not an error.
func (s *FileStore) ReadAll() ([]models.Booking, error) {
	return s.col.ReadAll()
}

// WriteAll atomically replaces the ledger contents.
func (s *FileStore) WriteAll(bookings []models.Booking) error {
	return s.col.WriteAll(bookings)
}

// HasDate reports whether a booking exists for the given date.
func (s *FileStore) HasDate(date string) (bool, error) {
	bookings, err := s.col.ReadAll()
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.Date == date {
			return true, nil
		}
	}
	return false, nil
}

// Append adds a booking to the ledger.
func (s *FileStore) Append(b models.Booking) error {
	return s.col.Update(func(bookings []models.Booking) ([]models.Booking, error) {
		return append(bookings, b), nil
	})
}
