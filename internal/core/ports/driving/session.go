package driving

import "github.com/medlink-care/medlink-cli/internal/core/domain"

// SessionService owns the client-side session. All mutations write through
// to persistent storage before updating in-memory state; no method here
// performs network calls, so none can fail beyond being a no-op on invalid
// arguments.
type SessionService interface {
	// Hydrate reads persisted credential and role at startup and marks the
	// session initialized, exactly once. Absence of persisted data is a
	// valid state. Subsequent calls are no-ops.
	Hydrate()

	// Login persists the credential and marks the session authenticated.
	// An empty credential is a no-op. Role is established separately once a
	// profile fetch succeeds.
	Login(credential string)

	// UpdateRole persists and sets the role, and optionally the user id.
	// Only meaningful after Login.
	UpdateRole(role domain.Role, userID string)

	// Logout clears the persisted credential and role. Subsequent protected
	// navigations redirect.
	Logout()

	// Reload re-reads persisted state after an external write (another
	// process sharing the storage; last write wins). Initialized stays true.
	Reload()

	// Current returns the session snapshot.
	Current() domain.Session

	// Subscribe registers a listener invoked after every session change.
	// The returned function cancels the subscription.
	Subscribe(fn func(domain.Session)) (cancel func())
}
