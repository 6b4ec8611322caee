package driving

import "github.com/medlink-care/medlink-cli/internal/core/domain"

// AccessGuard decides, per navigation, whether the current session is
// sufficient to render a protected view.
type AccessGuard interface {
	// Decide returns Allow iff the session is hydrated and a credential is
	// present, Loading while hydration has not finished, and Redirect
	// otherwise.
	Decide() domain.GuardDecision
}
