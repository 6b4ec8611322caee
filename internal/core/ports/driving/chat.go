package driving

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// ChatService manages the per-patient assistant transcript. Transcripts load
// from persisted storage when a patient becomes selected and are re-persisted
// after every append.
type ChatService interface {
	// SelectPatient loads patientID's transcript from storage, replacing any
	// previous patient's transcript. Selecting 0 clears the in-memory
	// transcript without touching storage.
	SelectPatient(ctx context.Context, patientID int) error

	// Send appends the prompt as a sent entry immediately, then calls the
	// assistant. On success it appends the normalised reply as received; on
	// failure it appends a synthetic error entry and swallows the failure.
	// Exactly one of the two follows every send.
	Send(ctx context.Context, prompt string) error

	// Transcript returns the selected patient's in-memory transcript,
	// oldest first.
	Transcript() []domain.ChatMessage

	// ClearHistory removes the selected patient's transcript from memory
	// and storage. Other patients' transcripts are untouched.
	ClearHistory(ctx context.Context) error

	// SetOnUpdate registers the single listener notified after every
	// transcript change.
	SetOnUpdate(fn func())
}
