package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetcrumb/models"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
}

func booking(date, method string) models.Booking {
	return models.Booking{
		Date:      date,
		Method:    method,
		Name:      "Ada",
		Phone:     "+1 555 0100",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReadAllMissingFileIsEmptyLedger(t *testing.T) {
	bookings, err := newStore(t).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	store := newStore(t)

	want := []models.Booking{
		booking("2025-06-10", models.MethodCash),
		booking("2025-06-11", models.MethodCard),
	}
	require.NoError(t, store.WriteAll(want))

	got, err := store.ReadAll()
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestHasDate(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Append(booking("2025-06-10", models.MethodCash)))

	got, err := store.HasDate("2025-06-10")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = store.HasDate("2025-06-11")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestAppendKeepsExistingRecords(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Append(booking("2025-06-10", models.MethodCash)))
	require.NoError(t, store.Append(booking("2025-06-11", models.MethodCard)))

	got, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-06-10", got[0].Date)
	assert.Equal(t, "2025-06-11", got[1].Date)
}
