package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testMessages(n int) []domain.ChatMessage {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	messages := make([]domain.ChatMessage, n)
	for i := range messages {
		msgType := domain.MessageSent
		if i%2 == 1 {
			msgType = domain.MessageReceived
		}
		messages[i] = domain.ChatMessage{
			ID:        string(rune('a' + i)),
			Text:      "message",
			Type:      msgType,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return messages
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(tempDir, "medlink.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not rerun applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestTranscriptStore_LoadMissingTranscriptIsEmpty(t *testing.T) {
	store := setupTestStore(t)
	ts := store.TranscriptStore()

	messages, err := ts.Load(context.Background(), 404)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestTranscriptStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ts := store.TranscriptStore()
	ctx := context.Background()

	saved := testMessages(4)
	require.NoError(t, ts.Save(ctx, 7, saved))

	loaded, err := ts.Load(ctx, 7)
	require.NoError(t, err)
	require.Len(t, loaded, 4)
	for i := range saved {
		assert.Equal(t, saved[i].ID, loaded[i].ID)
		assert.Equal(t, saved[i].Type, loaded[i].Type)
		assert.True(t, saved[i].Timestamp.Equal(loaded[i].Timestamp),
			"timestamp %d mismatch: %v vs %v", i, saved[i].Timestamp, loaded[i].Timestamp)
	}
}

func TestTranscriptStore_SaveReplacesWholesale(t *testing.T) {
	store := setupTestStore(t)
	ts := store.TranscriptStore()
	ctx := context.Background()

	require.NoError(t, ts.Save(ctx, 7, testMessages(5)))
	require.NoError(t, ts.Save(ctx, 7, testMessages(2)))

	loaded, err := ts.Load(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, loaded, 2, "a save replaces the prior transcript, never appends")
}

func TestTranscriptStore_TranscriptsAreIsolatedPerPatient(t *testing.T) {
	store := setupTestStore(t)
	ts := store.TranscriptStore()
	ctx := context.Background()

	require.NoError(t, ts.Save(ctx, 7, testMessages(3)))
	require.NoError(t, ts.Save(ctx, 8, testMessages(1)))

	require.NoError(t, ts.Delete(ctx, 8))

	seven, err := ts.Load(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, seven, 3)

	eight, err := ts.Load(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, eight)
}

func TestTranscriptStore_DeleteMissingIsNoError(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.TranscriptStore().Delete(context.Background(), 404))
}

func TestTranscriptStore_SurvivesReopen(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.TranscriptStore().Save(context.Background(), 7, testMessages(2)))
	require.NoError(t, store.Close())

	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.TranscriptStore().Load(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}
