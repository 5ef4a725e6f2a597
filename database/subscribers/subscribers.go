// Package subscribers stores the email-signup list.
package subscribers

import (
	"strings"

	"sweetcrumb/database/jsonstore"
	"sweetcrumb/models"
)

// Store is the subscriber list contract.
type Store interface {
	ReadAll() ([]models.Subscriber, error)
	Add(sub models.Subscriber) error
}

// FileStore backs the subscriber list with a JSON array file.
type FileStore struct {
	col *jsonstore.Collection[models.Subscriber]
}

func NewFileStore(path string) *FileStore {
	return &FileStore{col: jsonstore.New[models.Subscriber](path)}
}

func (s *FileStore) ReadAll() ([]models.Subscriber, error) {
	return s.col.ReadAll()
}

// Add appends the subscriber unless the address is already on the list.
// Matching is case-insensitive and the check-then-append runs under the
// collection lock, so the same address can never be stored twice even under
// concurrent signups.
func (s *FileStore) Add(sub models.Subscriber) error {
	return s.col.Update(func(all []models.Subscriber) ([]models.Subscriber, error) {
		for _, existing := range all {
			if strings.EqualFold(existing.Email, sub.Email) {
				return all, nil
			}
		}
		return append(all, sub), nil
	})
}
