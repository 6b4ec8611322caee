package services

import (
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService owns the client-side session state. Every mutation writes
// through to the persisted store before touching in-memory state, so a
// restart mid-session reconstructs the same session. No method performs
// network calls.
type SessionService struct {
	store driven.SessionStore

	mu      sync.RWMutex
	session domain.Session

	subMu   sync.Mutex
	subs    map[int]func(domain.Session)
	nextSub int
}

// NewSessionService creates a session service backed by the given store.
func NewSessionService(store driven.SessionStore) *SessionService {
	return &SessionService{
		store: store,
		subs:  make(map[int]func(domain.Session)),
	}
}

// Hydrate reads persisted state and marks the session initialized, exactly
// once. Absence of persisted data is a valid signed-out state; hydration
// itself never fails.
func (s *SessionService) Hydrate() {
	s.mu.Lock()
	if s.session.Initialized {
		s.mu.Unlock()
		return
	}

	loaded, err := s.store.Load()
	if err != nil {
		logger.Warn("session hydrate: %v (starting signed out)", err)
		loaded = domain.Session{}
	}
	loaded.Initialized = true
	s.session = loaded
	s.mu.Unlock()

	logger.Debug("session hydrated: authenticated=%t role=%s",
		loaded.Authenticated(), loaded.Role)
	s.notify()
}

// Login persists the credential and marks the session authenticated.
// An empty credential is a no-op. Role stays whatever it was until a
// profile fetch establishes it via UpdateRole.
func (s *SessionService) Login(credential string) {
	if credential == "" {
		logger.Warn("login called with empty credential, ignoring")
		return
	}

	s.mu.Lock()
	next := s.session
	next.Credential = credential
	if err := s.store.Save(next); err != nil {
		logger.Warn("persisting session: %v", err)
	}
	s.session = next
	s.mu.Unlock()

	logger.Info("session authenticated")
	s.notify()
}

// UpdateRole persists and sets the derived role and user id. A no-op unless
// a credential is present.
func (s *SessionService) UpdateRole(role domain.Role, userID string) {
	s.mu.Lock()
	if !s.session.Authenticated() {
		s.mu.Unlock()
		logger.Warn("role update without credential, ignoring")
		return
	}

	next := s.session
	next.Role = role
	if userID != "" {
		next.UserID = userID
	}
	if err := s.store.Save(next); err != nil {
		logger.Warn("persisting session: %v", err)
	}
	s.session = next
	s.mu.Unlock()

	logger.Debug("session role updated: %s", role)
	s.notify()
}

// Logout clears persisted credential and role.
func (s *SessionService) Logout() {
	s.mu.Lock()
	if err := s.store.Clear(); err != nil {
		logger.Warn("clearing session store: %v", err)
	}
	s.session = domain.Session{Initialized: s.session.Initialized}
	s.mu.Unlock()

	logger.Info("session cleared")
	s.notify()
}

// Reload re-reads persisted state after an external write. Shared storage is
// last-write-wins across processes; the in-memory view follows whatever is
// on disk now.
func (s *SessionService) Reload() {
	s.mu.Lock()
	wasInitialized := s.session.Initialized
	loaded, err := s.store.Load()
	if err != nil {
		s.mu.Unlock()
		logger.Warn("session reload: %v (keeping current state)", err)
		return
	}
	loaded.Initialized = wasInitialized
	s.session = loaded
	s.mu.Unlock()

	logger.Debug("session reloaded from storage")
	s.notify()
}

// Current returns the session snapshot.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Subscribe registers a listener invoked after every session change.
func (s *SessionService) Subscribe(fn func(domain.Session)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify invokes all subscribers with the current snapshot.
func (s *SessionService) notify() {
	snapshot := s.Current()

	s.subMu.Lock()
	listeners := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
