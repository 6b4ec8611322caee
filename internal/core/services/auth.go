package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService orchestrates sign-in and role derivation. The session service
// itself never touches the network; this is the one place that sequences
// credential acquisition, the profile fetch, and the resulting role update.
type AuthService struct {
	session driving.SessionService
	api     driven.APIGateway
}

// NewAuthService creates the sign-in orchestrator.
func NewAuthService(session driving.SessionService, api driven.APIGateway) *AuthService {
	return &AuthService{session: session, api: api}
}

// SignIn acquires a credential via the given strategy and establishes the
// session. The credential lands before the profile fetch, so a profile
// failure leaves an authenticated session with the role not yet derived.
func (s *AuthService) SignIn(ctx context.Context, provider driven.CredentialProvider) (*domain.UserProfile, error) {
	logger.Section("Sign In")
	logger.Debug("method=%s", provider.Method())

	credential, err := provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire credential: %w", err)
	}

	s.session.Login(credential)

	profile, err := s.RefreshProfile(ctx)
	if err != nil {
		logger.Warn("profile fetch after login failed: %v (role not derived)", err)
		return nil, err
	}
	return profile, nil
}

// RefreshProfile refetches the signed-in user's profile and re-derives the
// session role and user id from it.
func (s *AuthService) RefreshProfile(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := s.api.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	s.session.UpdateRole(profile.UserType, strconv.Itoa(profile.ID))
	return profile, nil
}

// SignOut clears the session.
func (s *AuthService) SignOut() {
	s.session.Logout()
}
