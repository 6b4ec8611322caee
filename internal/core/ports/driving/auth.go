package driving

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// AuthService orchestrates sign-in: it acquires a credential via a pluggable
// strategy, hands it to the session service, then derives the role from a
// profile fetch. The single flow serves both the password and wallet
// variants.
type AuthService interface {
	// SignIn acquires a credential and establishes the session. A profile
	// fetch failure leaves the session authenticated with the role not yet
	// derived; the returned error reports only that step.
	SignIn(ctx context.Context, provider driven.CredentialProvider) (*domain.UserProfile, error)

	// RefreshProfile refetches the profile and re-derives the role.
	RefreshProfile(ctx context.Context) (*domain.UserProfile, error)

	// SignOut clears the session.
	SignOut()
}
