package memory

import (
	"context"
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure TranscriptStore implements the interface.
var _ driven.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore is an in-memory implementation of driven.TranscriptStore
// for testing.
type TranscriptStore struct {
	mu          sync.RWMutex
	transcripts map[int][]domain.ChatMessage

	// SaveErr and LoadErr force failures when set.
	SaveErr error
	LoadErr error
}

// NewTranscriptStore creates an empty in-memory transcript store.
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{
		transcripts: make(map[int][]domain.ChatMessage),
	}
}

// Load returns the transcript for a patient, empty if none exists.
func (s *TranscriptStore) Load(_ context.Context, patientID int) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}

	stored := s.transcripts[patientID]
	messages := make([]domain.ChatMessage, len(stored))
	copy(messages, stored)
	return messages, nil
}

// Save replaces the transcript for a patient.
func (s *TranscriptStore) Save(_ context.Context, patientID int, messages []domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}

	stored := make([]domain.ChatMessage, len(messages))
	copy(stored, messages)
	s.transcripts[patientID] = stored
	return nil
}

// Delete removes one patient's transcript.
func (s *TranscriptStore) Delete(_ context.Context, patientID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, patientID)
	return nil
}

// Len returns the number of stored messages for a patient.
func (s *TranscriptStore) Len(patientID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcripts[patientID])
}
