package services

import (
	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// Ensure AccessGuard implements the interface.
var _ driving.AccessGuard = (*AccessGuard)(nil)

// AccessGuard decides whether the current session may render a protected
// view. States: uninitialized (hold with a loading state, never redirect),
// unauthenticated (redirect to login), authenticated (render). Transitions
// are driven solely by session changes.
type AccessGuard struct {
	session driving.SessionService
}

// NewAccessGuard creates a guard over the given session service.
func NewAccessGuard(session driving.SessionService) *AccessGuard {
	return &AccessGuard{session: session}
}

// Decide returns the guard's answer for the current session.
func (g *AccessGuard) Decide() domain.GuardDecision {
	current := g.session.Current()

	if !current.Initialized {
		return domain.GuardLoading
	}
	if !current.Authenticated() {
		return domain.GuardRedirect
	}
	return domain.GuardAllow
}
