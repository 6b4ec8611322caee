package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-care/medlink-cli/internal/adapters/driven/storage/memory"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

func newAuthFixture() (*AuthService, *SessionService, *fakeGateway) {
	gw := newFakeGateway()
	session := NewSessionService(memory.NewSessionStore())
	session.Hydrate()
	return NewAuthService(session, gw), session, gw
}

func TestAuthService_SignInEstablishesSessionAndRole(t *testing.T) {
	auth, session, gw := newAuthFixture()
	gw.ProfileFn = func() (*domain.UserProfile, error) {
		return &domain.UserProfile{ID: 42, Username: "drcrusher", UserType: domain.RoleDoctor}, nil
	}

	profile, err := auth.SignIn(context.Background(), &fakeProvider{credential: "tok-42"})
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "drcrusher", profile.Username)

	current := session.Current()
	assert.True(t, current.Authenticated())
	assert.Equal(t, "tok-42", current.Credential)
	assert.Equal(t, domain.RoleDoctor, current.Role)
	assert.Equal(t, "42", current.UserID)
}

func TestAuthService_SignInAcquireFailureLeavesSignedOut(t *testing.T) {
	auth, session, _ := newAuthFixture()

	_, err := auth.SignIn(context.Background(), &fakeProvider{err: domain.ErrLoginFailed})
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
	assert.False(t, session.Current().Authenticated())
}

func TestAuthService_ProfileFailureKeepsCredentialRoleUnderived(t *testing.T) {
	auth, session, gw := newAuthFixture()
	gw.ProfileFn = func() (*domain.UserProfile, error) {
		return nil, errors.New("backend unavailable")
	}

	_, err := auth.SignIn(context.Background(), &fakeProvider{credential: "tok-42"})
	require.Error(t, err)

	current := session.Current()
	assert.True(t, current.Authenticated(), "the credential lands before the profile fetch")
	assert.Equal(t, domain.RoleUnknown, current.Role)
}

func TestAuthService_RefreshProfileRederivesRole(t *testing.T) {
	auth, session, gw := newAuthFixture()
	session.Login("tok-42")

	gw.ProfileFn = func() (*domain.UserProfile, error) {
		return &domain.UserProfile{ID: 9, UserType: domain.RolePatient}, nil
	}

	profile, err := auth.RefreshProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RolePatient, profile.UserType)
	assert.Equal(t, domain.RolePatient, session.Current().Role)
	assert.Equal(t, "9", session.Current().UserID)
}

func TestAuthService_SignOutClearsSession(t *testing.T) {
	auth, session, _ := newAuthFixture()
	session.Login("tok-42")

	auth.SignOut()
	assert.False(t, session.Current().Authenticated())
}
