package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DefaultDebounceWindow is the quiet period after the last keystroke before
// a search fetch is issued.
const DefaultDebounceWindow = 500 * time.Millisecond

// DirectoryService maintains the searchable patient directory. Keystrokes
// reset a debounce timer so intermediate queries issue no network traffic;
// clearing the query fetches immediately. Every scheduled fetch carries a
// monotonically increasing sequence number and a completion only applies if
// its sequence is still the newest, so results never arrive out of order
// from the user's point of view.
type DirectoryService struct {
	api    driven.APIGateway
	window time.Duration
	ctx    context.Context

	mu       sync.Mutex
	query    string
	patients []domain.PatientSummary
	loading  bool
	lastErr  error
	seq      uint64
	timer    *time.Timer
	closed   bool

	onUpdate func()
}

// NewDirectoryService creates a directory cache over the gateway.
// A zero window uses DefaultDebounceWindow.
func NewDirectoryService(ctx context.Context, api driven.APIGateway, window time.Duration) *DirectoryService {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &DirectoryService{
		api:    api,
		window: window,
		ctx:    ctx,
	}
}

// SetOnUpdate registers the single listener notified after every state change.
func (s *DirectoryService) SetOnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// SetQuery updates the search text. A non-empty change schedules a fetch
// after the debounce window, measured from the last keystroke; clearing the
// text fetches immediately since an empty query is the common reset action.
func (s *DirectoryService) SetQuery(text string) {
	s.mu.Lock()
	if s.closed || text == s.query {
		s.mu.Unlock()
		return
	}
	s.query = text
	s.stopTimerLocked()

	if text == "" {
		seq := s.nextSeqLocked()
		s.loading = true
		s.mu.Unlock()
		s.fireUpdate()
		go s.fetch("", seq)
		return
	}

	seq := s.nextSeqLocked()
	s.loading = true
	s.timer = time.AfterFunc(s.window, func() {
		s.fetch(text, seq)
	})
	s.mu.Unlock()
	s.fireUpdate()
}

// Search replaces the query and fetches immediately, bypassing the debounce.
// The debounce exists to absorb keystrokes; a caller that already holds the
// final text has nothing to absorb.
func (s *DirectoryService) Search(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.query = text
	s.stopTimerLocked()
	seq := s.nextSeqLocked()
	s.loading = true
	s.mu.Unlock()
	s.fireUpdate()
	go s.fetch(text, seq)
}

// Refresh issues an immediate fetch for the current query, superseding any
// pending debounce or in-flight fetch.
func (s *DirectoryService) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()
	query := s.query
	seq := s.nextSeqLocked()
	s.loading = true
	s.mu.Unlock()
	s.fireUpdate()
	go s.fetch(query, seq)
}

// AddPatient creates a patient and refreshes the directory on success.
func (s *DirectoryService) AddPatient(ctx context.Context, patient domain.NewPatient) error {
	if patient.Name == "" {
		return domain.ErrInvalidInput
	}

	if _, err := s.api.AddPatient(ctx, patient); err != nil {
		return fmt.Errorf("add patient: %w", err)
	}

	logger.Info("patient added, refreshing directory")
	s.Refresh()
	return nil
}

// Snapshot returns the cache's current state.
func (s *DirectoryService) Snapshot() driving.DirectorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients := make([]domain.PatientSummary, len(s.patients))
	copy(patients, s.patients)

	return driving.DirectorySnapshot{
		Query:    s.query,
		Patients: patients,
		Loading:  s.loading,
		Err:      s.lastErr,
	}
}

// Close cancels any pending debounce timer. In-flight fetches are not
// interrupted; their results are discarded.
func (s *DirectoryService) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopTimerLocked()
	s.seq++ // orphan anything still in flight
	s.mu.Unlock()
}

// fetch performs a directory fetch tagged with seq. A completion whose seq
// has been superseded is discarded; a failure preserves the previous list.
func (s *DirectoryService) fetch(query string, seq uint64) {
	logger.Section("Directory Fetch")
	logger.Debug("query=%q seq=%d", query, seq)

	patients, err := s.api.SearchPatients(s.ctx, query)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		logger.Debug("discarding superseded fetch: seq=%d current=%d", seq, s.seq)
		return
	}

	s.loading = false
	if err != nil {
		logger.Warn("directory fetch failed: %v (keeping previous list)", err)
		s.lastErr = err
	} else {
		if patients == nil {
			patients = []domain.PatientSummary{}
		}
		s.patients = patients
		s.lastErr = nil
		logger.Debug("directory updated: %d patients", len(patients))
	}
	s.mu.Unlock()
	s.fireUpdate()
}

// nextSeqLocked advances and returns the fetch sequence (caller holds mu).
func (s *DirectoryService) nextSeqLocked() uint64 {
	s.seq++
	return s.seq
}

// stopTimerLocked cancels any pending debounce timer (caller holds mu).
func (s *DirectoryService) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fireUpdate invokes the update listener, if set, without holding the lock.
func (s *DirectoryService) fireUpdate() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
