package domain

import (
	"regexp"
	"strings"
	"time"
)

// MessageType classifies a chat transcript entry.
type MessageType string

// Message types.
const (
	// MessageSent is a clinician message, appended optimistically before the
	// network call resolves.
	MessageSent MessageType = "sent"
	// MessageReceived is the assistant's reply.
	MessageReceived MessageType = "received"
	// MessageError is a synthetic entry appended when the assistant call
	// fails; the failure does not propagate any further.
	MessageError MessageType = "error"
)

// IsValid returns true if the message type is recognised.
func (t MessageType) IsValid() bool {
	return t == MessageSent || t == MessageReceived || t == MessageError
}

// ChatMessage is one entry in a patient's assistant transcript.
type ChatMessage struct {
	// ID is a client-assigned unique id.
	ID string `json:"id"`
	// Text is the message body.
	Text string `json:"text"`
	// Type is sent, received, or error.
	Type MessageType `json:"type"`
	// Timestamp is when the entry was appended.
	Timestamp time.Time `json:"timestamp"`
}

// boldSpan matches the collaborator's markdown-style emphasis markers.
var boldSpan = regexp.MustCompile(`\*\*(.*?)\*\*`)

// NormalizeReply cleans up an assistant reply for display: bold spans lose
// their markers (the view applies its own emphasis) and literal "\n"
// sequences become real newlines.
func NormalizeReply(text string) string {
	text = boldSpan.ReplaceAllString(text, "$1")
	return strings.ReplaceAll(text, `\n`, "\n")
}
