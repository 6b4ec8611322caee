package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

func TestSessionStore_LoadEmptyIsSignedOut(t *testing.T) {
	store := NewSessionStore(newTestConfigStore(t))

	session, err := store.Load()
	require.NoError(t, err)
	assert.False(t, session.Authenticated())
	assert.Equal(t, domain.RoleUnknown, session.Role)
}

func TestSessionStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewSessionStore(newTestConfigStore(t))

	require.NoError(t, store.Save(domain.Session{
		Credential: "tok-abc",
		Role:       domain.RoleDoctor,
		UserID:     "7",
	}))

	session, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", session.Credential)
	assert.Equal(t, domain.RoleDoctor, session.Role)
	assert.Equal(t, "7", session.UserID)
	assert.False(t, session.Initialized, "initialization is runtime state, never persisted")
}

func TestSessionStore_ClearRemovesEverything(t *testing.T) {
	config := newTestConfigStore(t)
	store := NewSessionStore(config)

	require.NoError(t, store.Save(domain.Session{Credential: "tok-abc", Role: domain.RolePatient, UserID: "3"}))
	require.NoError(t, store.Clear())

	session, err := store.Load()
	require.NoError(t, err)
	assert.False(t, session.Authenticated())
	assert.Empty(t, session.UserID)
}

func TestSessionStore_SharedFileIsLastWriteWins(t *testing.T) {
	dir := t.TempDir()

	configA, err := NewConfigStore(dir)
	require.NoError(t, err)
	configB, err := NewConfigStore(dir)
	require.NoError(t, err)

	storeA := NewSessionStore(configA)
	storeB := NewSessionStore(configB)

	require.NoError(t, storeA.Save(domain.Session{Credential: "tok-a"}))
	require.NoError(t, storeB.Save(domain.Session{Credential: "tok-b"}))

	// Both processes observe the most recent write.
	sessionA, err := storeA.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-b", sessionA.Credential)
}

func TestWatcher_FiresOnExternalWrite(t *testing.T) {
	dir := t.TempDir()

	config, err := NewConfigStore(dir)
	require.NoError(t, err)

	changed := make(chan struct{}, 1)
	watcher, err := NewWatcher(config, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Close()

	// A second store writing the same file simulates another process.
	other, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, NewSessionStore(other).Save(domain.Session{Credential: "tok-ext"}))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the external write")
	}
}
