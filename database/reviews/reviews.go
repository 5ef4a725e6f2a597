// Package reviews stores customer reviews, following the same single-file
// pattern as the booking ledger.
package reviews

import (
	"sweetcrumb/database/jsonstore"
	"sweetcrumb/models"
)

// Store is the review collection contract.
type Store interface {
	ReadAll() ([]models.Review, error)
	Append(r models.Review) error
}

// FileStore backs the review collection with a JSON array file.
type FileStore struct {
	col *jsonstore.Collection[models.Review]
}

func NewFileStore(path string) *FileStore {
	return &FileStore{col: jsonstore.New[models.Review](path)}
}

func (s *FileStore) ReadAll() ([]models.Review, error) {
	return s.col.ReadAll()
}

// Append adds a review. The read-modify-write runs under the collection
// lock, so concurrent reviews cannot overwrite each other.
func (s *FileStore) Append(r models.Review) error {
	return s.col.Update(func(all []models.Review) ([]models.Review, error) {
		return append(all, r), nil
	})
}
