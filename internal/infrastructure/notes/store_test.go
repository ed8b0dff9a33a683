package notes

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbook/backend/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "exports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	id, err := store.Save(ctx, &domain.ExportedNote{
		ListName:  "Weekend Shop",
		Content:   "=== Weekend Shop ===\n[ ] Onion",
		CreatedAt: created,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	note, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, note.ID)
	assert.Equal(t, "Weekend Shop", note.ListName)
	assert.Contains(t, note.Content, "Onion")
	assert.True(t, note.CreatedAt.Equal(created))
}

func TestStore_GetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestStore_SaveNilNote(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(context.Background(), nil)
	assert.Error(t, err)
}

func TestStore_ZeroTimeDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, &domain.ExportedNote{ListName: "Quick", Content: "x"})
	require.NoError(t, err)

	note, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestStore_IDsAreUnique(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := store.Save(ctx, &domain.ExportedNote{ListName: "L", Content: "c"})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exports.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)

	id, err := store.Save(ctx, &domain.ExportedNote{ListName: "Persisted", Content: "body"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	note, err := reopened.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", note.ListName)
}
