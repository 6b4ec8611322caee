// Package chat provides the patient-scoped assistant view.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// View renders the selected patient's transcript and accepts prompts. The
// sent entry shows up immediately; the reply or inline error follows when
// the assistant call resolves.
type View struct {
	styles *styles.Styles
	chat   driving.ChatService

	patient *domain.PatientSummary
	input   textinput.Model
	sending bool
	width   int
	height  int
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, chat driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "Ask about this patient..."
	input.CharLimit = 1024
	input.Width = 60
	input.Focus()

	return &View{
		styles: s,
		chat:   chat,
		input:  input,
		width:  80,
		height: 24,
	}
}

// Init initialises the chat view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// SetPatient switches the transcript to the given patient.
func (v *View) SetPatient(patient domain.PatientSummary) tea.Cmd {
	v.patient = &patient
	chat := v.chat
	return func() tea.Msg {
		if err := chat.SelectPatient(context.Background(), patient.ID); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return messages.TranscriptUpdated{}
	}
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return v, v.send()

		case "ctrl+l":
			chat := v.chat
			return v, func() tea.Msg {
				if err := chat.ClearHistory(context.Background()); err != nil {
					return messages.ErrorOccurred{Err: err}
				}
				return messages.TranscriptUpdated{}
			}
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case messages.TranscriptUpdated:
		v.sending = false
		return v, nil
	}

	return v, nil
}

// send submits the prompt off the update loop. The optimistic sent entry is
// appended by the service before the call resolves, so the next transcript
// update already shows it.
func (v *View) send() tea.Cmd {
	prompt := strings.TrimSpace(v.input.Value())
	if prompt == "" || v.sending {
		return nil
	}

	v.input.Reset()
	v.sending = true
	chat := v.chat

	return func() tea.Msg {
		if err := chat.Send(context.Background(), prompt); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return messages.TranscriptUpdated{}
	}
}

// View renders the transcript and prompt input.
func (v *View) View() string {
	var b strings.Builder

	if v.patient == nil {
		b.WriteString(v.styles.Title.Render("Assistant"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Select a patient first."))
		return b.String()
	}

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Assistant · %s", v.patient.Name)))
	b.WriteString("\n\n")

	transcript := v.chat.Transcript()
	if len(transcript) == 0 {
		b.WriteString(v.styles.Muted.Render("No messages yet."))
		b.WriteString("\n")
	}
	for _, msg := range transcript {
		switch msg.Type {
		case domain.MessageSent:
			b.WriteString(v.styles.Sent.Render("you  ") + v.styles.Normal.Render(msg.Text))
		case domain.MessageReceived:
			b.WriteString(v.styles.Success.Render("med  ") + v.styles.Received.Render(msg.Text))
		case domain.MessageError:
			b.WriteString(v.styles.Error.Render("med  " + msg.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")
	if v.sending {
		b.WriteString(v.styles.Muted.Render("Waiting for reply..."))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Help.Render("[enter] Send  [ctrl+l] Clear history  [esc] Menu"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Patient returns the currently selected patient, if any.
func (v *View) Patient() *domain.PatientSummary {
	return v.patient
}
