package memory

import (
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore for
// testing.
type SessionStore struct {
	mu      sync.RWMutex
	session domain.Session
	saved   bool

	// SaveErr, LoadErr and ClearErr force failures when set.
	SaveErr  error
	LoadErr  error
	ClearErr error
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Load returns the stored session; a never-saved store yields a zero session.
func (s *SessionStore) Load() (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return domain.Session{}, s.LoadErr
	}
	session := s.session
	session.Initialized = false // persisted state never carries init
	return session, nil
}

// Save stores the session.
func (s *SessionStore) Save(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.session = session
	s.saved = true
	return nil
}

// Clear removes stored session state.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.session = domain.Session{}
	s.saved = false
	return nil
}

// Saved reports whether Save has been called since the last Clear.
func (s *SessionStore) Saved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved
}
