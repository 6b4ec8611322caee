package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// MaxTranscriptLength caps a patient's persisted transcript. The collaborator
// never expires transcripts, so without a cap storage grows unbounded; the
// oldest entries are trimmed on persist once the cap is exceeded.
const MaxTranscriptLength = 200

// errorReplyText is the inline message shown when the assistant call fails.
const errorReplyText = "Sorry, I couldn't process your request. Please try again."

// ChatService manages per-patient assistant transcripts. Transcripts load
// from persisted storage on selection (never the network), are re-persisted
// after every append, and assistant failures surface only as an inline error
// entry.
type ChatService struct {
	api   driven.APIGateway
	store driven.TranscriptStore

	mu        sync.Mutex
	patientID int
	messages  []domain.ChatMessage

	onUpdate func()

	// now is injectable for tests.
	now func() time.Time
}

// NewChatService creates a chat service over the gateway and transcript store.
func NewChatService(api driven.APIGateway, store driven.TranscriptStore) *ChatService {
	return &ChatService{
		api:   api,
		store: store,
		now:   time.Now,
	}
}

// SetOnUpdate registers the single listener notified after every transcript
// change.
func (s *ChatService) SetOnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// SelectPatient loads patientID's persisted transcript, replacing any
// previous patient's transcript in memory. Selecting 0 clears the in-memory
// transcript without touching storage.
func (s *ChatService) SelectPatient(ctx context.Context, patientID int) error {
	if patientID == 0 {
		s.mu.Lock()
		s.patientID = 0
		s.messages = nil
		s.mu.Unlock()
		s.fireUpdate()
		return nil
	}

	messages, err := s.store.Load(ctx, patientID)
	if err != nil {
		return fmt.Errorf("load transcript for patient %d: %w", patientID, err)
	}

	s.mu.Lock()
	s.patientID = patientID
	s.messages = messages
	s.mu.Unlock()

	logger.Debug("transcript loaded for patient %d: %d messages", patientID, len(messages))
	s.fireUpdate()
	return nil
}

// Send appends prompt as a sent entry immediately, calls the assistant, and
// appends exactly one of a received or error entry after resolution. The
// assistant failure itself is swallowed; only input validation errors
// propagate.
func (s *ChatService) Send(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	patientID := s.patientID
	s.mu.Unlock()
	if patientID == 0 {
		return domain.ErrNoPatientSelected
	}

	// Optimistic append before the network call resolves.
	s.append(ctx, patientID, domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      prompt,
		Type:      domain.MessageSent,
		Timestamp: s.now(),
	})

	reply, err := s.api.Chat(ctx, patientID, prompt)
	if err != nil {
		logger.Warn("assistant call failed: %v", err)
		s.append(ctx, patientID, domain.ChatMessage{
			ID:        uuid.NewString(),
			Text:      errorReplyText,
			Type:      domain.MessageError,
			Timestamp: s.now(),
		})
		return nil
	}

	s.append(ctx, patientID, domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      domain.NormalizeReply(reply),
		Type:      domain.MessageReceived,
		Timestamp: s.now(),
	})
	return nil
}

// Transcript returns the selected patient's in-memory transcript.
func (s *ChatService) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]domain.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// ClearHistory removes the selected patient's transcript from memory and
// storage. Other patients' transcripts are untouched.
func (s *ChatService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	patientID := s.patientID
	s.mu.Unlock()
	if patientID == 0 {
		return domain.ErrNoPatientSelected
	}

	if err := s.store.Delete(ctx, patientID); err != nil {
		return fmt.Errorf("clear transcript for patient %d: %w", patientID, err)
	}

	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()

	logger.Info("transcript cleared for patient %d", patientID)
	s.fireUpdate()
	return nil
}

// append adds a message, trims to the retention cap, and re-persists the
// whole transcript. The append survives even if persistence fails.
func (s *ChatService) append(ctx context.Context, patientID int, msg domain.ChatMessage) {
	s.mu.Lock()
	if s.patientID != patientID {
		// Patient changed mid-send; the entry belongs to the old transcript.
		s.mu.Unlock()
		logger.Debug("dropping chat append for deselected patient %d", patientID)
		return
	}
	s.messages = append(s.messages, msg)
	if len(s.messages) > MaxTranscriptLength {
		s.messages = s.messages[len(s.messages)-MaxTranscriptLength:]
	}
	snapshot := make([]domain.ChatMessage, len(s.messages))
	copy(snapshot, s.messages)
	s.mu.Unlock()

	if err := s.store.Save(ctx, patientID, snapshot); err != nil {
		logger.Warn("persisting transcript for patient %d: %v", patientID, err)
	}
	s.fireUpdate()
}

// fireUpdate invokes the update listener, if set, without holding the lock.
func (s *ChatService) fireUpdate() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
