package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// transcriptStore implements driven.TranscriptStore.
type transcriptStore struct {
	store *Store
}

var _ driven.TranscriptStore = (*transcriptStore)(nil)

// Load retrieves one patient's transcript in send order. A patient without a
// transcript yields an empty slice.
func (s *transcriptStore) Load(ctx context.Context, patientID int) ([]domain.ChatMessage, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT message_id, text, type, sent_at
		FROM chat_messages
		WHERE patient_id = ?
		ORDER BY position
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("querying transcript: %w", err)
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		var msg domain.ChatMessage
		var msgType string
		var sentAt time.Time
		if err := rows.Scan(&msg.ID, &msg.Text, &msgType, &sentAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		msg.Type = domain.MessageType(msgType)
		msg.Timestamp = sentAt
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcript: %w", err)
	}
	return messages, nil
}

// Save replaces one patient's transcript wholesale. Saving inside a single
// transaction keeps concurrent readers from observing a half-written
// transcript.
func (s *transcriptStore) Save(ctx context.Context, patientID int, messages []domain.ChatMessage) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_messages WHERE patient_id = ?", patientID); err != nil {
		return fmt.Errorf("clearing transcript: %w", err)
	}

	for i, msg := range messages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chat_messages (patient_id, position, message_id, text, type, sent_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, patientID, i, msg.ID, msg.Text, string(msg.Type), msg.Timestamp.UTC())
		if err != nil {
			return fmt.Errorf("inserting message %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transcript: %w", err)
	}
	return nil
}

// Delete removes one patient's transcript. Deleting a transcript that does
// not exist is not an error.
func (s *transcriptStore) Delete(ctx context.Context, patientID int) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM chat_messages WHERE patient_id = ?", patientID); err != nil {
		return fmt.Errorf("deleting transcript: %w", err)
	}
	return nil
}
