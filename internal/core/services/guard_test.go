package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medlink-care/medlink-cli/internal/adapters/driven/storage/memory"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

func TestAccessGuard_LoadingBeforeHydration(t *testing.T) {
	session := NewSessionService(memory.NewSessionStore())
	guard := NewAccessGuard(session)

	assert.Equal(t, domain.GuardLoading, guard.Decide(),
		"an uninitialized session must hold, never redirect")
}

func TestAccessGuard_RedirectWhenSignedOut(t *testing.T) {
	session := NewSessionService(memory.NewSessionStore())
	session.Hydrate()
	guard := NewAccessGuard(session)

	assert.Equal(t, domain.GuardRedirect, guard.Decide())
}

func TestAccessGuard_AllowWhenAuthenticated(t *testing.T) {
	session := NewSessionService(memory.NewSessionStore())
	session.Hydrate()
	session.Login("tok-abc")
	guard := NewAccessGuard(session)

	assert.Equal(t, domain.GuardAllow, guard.Decide())
}

func TestAccessGuard_FollowsSessionTransitions(t *testing.T) {
	store := memory.NewSessionStore()
	session := NewSessionService(store)
	guard := NewAccessGuard(session)

	assert.Equal(t, domain.GuardLoading, guard.Decide())

	session.Hydrate()
	assert.Equal(t, domain.GuardRedirect, guard.Decide())

	session.Login("tok-abc")
	assert.Equal(t, domain.GuardAllow, guard.Decide())

	session.Logout()
	assert.Equal(t, domain.GuardRedirect, guard.Decide(),
		"logout must fall back to redirect, not loading")
}
