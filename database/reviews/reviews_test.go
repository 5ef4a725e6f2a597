package reviews

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
	return NewFileStore(filepath.Join(t.TempDir(), "reviews.json"))
}

func review(id string) models.Review {
	return models.Review{
		ID:        id,
		Name:      "Grace",
		Rating:    5,
		Comment:   "Wonderful cake!",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppendAndReadAll(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Append(review("a")))
	require.NoError(t, store.Append(review("b")))

	all, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}

func TestConcurrentAppendLosesNothing(t *testing.T) {
	store := newStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(review(fmt.Sprintf("r-%d", i))))
		}()
	}
	wg.Wait()

	all, err := store.ReadAll()
	require.NoError(t, err)
	assert.Len(t, all, writers, "every concurrent review must be kept")
}
