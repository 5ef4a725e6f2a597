package subscribers

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetcrumb/models"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "subscribers.json"))
}

func subscriber(id, email string) models.Subscriber {
	return models.Subscriber{
		ID:        id,
		Email:     email,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAddAndReadAll(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add(subscriber("a", "ada@example.com")))

	all, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ada@example.com", all[0].Email)
}

func TestAddDuplicateEmailIsNoOp(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add(subscriber("a", "ada@example.com")))
	require.NoError(t, store.Add(subscriber("b", "ADA@example.com")))

	all, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].ID, "the original signup is kept")
}

func TestConcurrentAddSameEmail(t *testing.T) {
	store := newStore(t)

	const attempts = 20
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Add(subscriber(fmt.Sprintf("s-%d", i), "ada@example.com")))
		}()
	}
	wg.Wait()

	all, err := store.ReadAll()
	require.NoError(t, err)
	assert.Len(t, all, 1, "concurrent signups of one address must store it once")
}

func TestConcurrentAddDistinctEmailsLosesNothing(t *testing.T) {
	store := newStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			email := fmt.Sprintf("person-%d@example.com", i)
			assert.NoError(t, store.Add(subscriber(fmt.Sprintf("s-%d", i), email)))
		}()
	}
	wg.Wait()

	all, err := store.ReadAll()
	require.NoError(t, err)
	assert.Len(t, all, writers, "every concurrent signup must be kept")
}
