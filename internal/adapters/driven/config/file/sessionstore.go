package file

import (
	"fmt"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Session state keys in the config file.
const (
	keySessionCredential = "session.key"
	keySessionRole       = "session.user_type"
	keySessionUserID     = "session.id"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore persists session state as flattened keys in the shared TOML
// config file. Writes land on disk before Save returns, so a second process
// watching the file sees every session change.
type SessionStore struct {
	config *ConfigStore
}

// NewSessionStore creates a session store over the given config store.
func NewSessionStore(config *ConfigStore) *SessionStore {
	return &SessionStore{config: config}
}

// Load reads persisted session state. A file with no session keys yields a
// zero session; that is a valid signed-out state.
func (s *SessionStore) Load() (domain.Session, error) {
	if err := s.config.Load(); err != nil {
		return domain.Session{}, fmt.Errorf("reading session state: %w", err)
	}

	return domain.Session{
		Credential: s.config.GetString(keySessionCredential),
		Role:       domain.Role(s.config.GetString(keySessionRole)),
		UserID:     s.config.GetString(keySessionUserID),
	}, nil
}

// Save persists the credential, role, and user id.
func (s *SessionStore) Save(session domain.Session) error {
	if err := s.config.Set(keySessionCredential, session.Credential); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	if err := s.config.Set(keySessionRole, string(session.Role)); err != nil {
		return fmt.Errorf("persisting role: %w", err)
	}
	if err := s.config.Set(keySessionUserID, session.UserID); err != nil {
		return fmt.Errorf("persisting user id: %w", err)
	}
	return nil
}

// Clear removes all persisted session state.
func (s *SessionStore) Clear() error {
	for _, key := range []string{keySessionCredential, keySessionRole, keySessionUserID} {
		if err := s.config.Delete(key); err != nil {
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}
	return nil
}
