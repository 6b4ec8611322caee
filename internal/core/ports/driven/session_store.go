package driven

import "github.com/medlink-care/medlink-cli/internal/core/domain"

// SessionStore persists session state across restarts. All session service
// mutations write through here synchronously before touching in-memory
// state, so a reload mid-session reconstructs the same session.
//
// Absence of persisted data is a valid state, not an error: Load returns a
// zero session in that case.
type SessionStore interface {
	// Load reads the persisted credential, role, and user id.
	Load() (domain.Session, error)

	// Save persists the credential, role, and user id.
	Save(session domain.Session) error

	// Clear removes all persisted session state.
	Clear() error
}
