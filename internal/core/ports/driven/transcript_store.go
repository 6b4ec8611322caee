package driven

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// TranscriptStore persists per-patient assistant transcripts. Transcripts
// load from storage when a patient is selected (never from the network) and
// are re-persisted wholesale after every append.
type TranscriptStore interface {
	// Load returns the persisted transcript for a patient, oldest first.
	// A patient with no transcript yields an empty slice, not an error.
	Load(ctx context.Context, patientID int) ([]domain.ChatMessage, error)

	// Save replaces the persisted transcript for a patient.
	Save(ctx context.Context, patientID int, messages []domain.ChatMessage) error

	// Delete removes one patient's transcript only.
	Delete(ctx context.Context, patientID int) error
}
