// Package login provides the sign-in view for the TUI.
package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// field identifies which input has focus.
type field int

const (
	fieldUsername field = iota
	fieldPassword
)

// View is the sign-in form.
type View struct {
	styles   *styles.Styles
	auth     driving.AuthService
	provider func(username, password string) driven.CredentialProvider

	username textinput.Model
	password textinput.Model
	focused  field

	submitting bool
	err        error
	width      int
	height     int
}

// NewView creates a new login view.
func NewView(s *styles.Styles, auth driving.AuthService, provider func(username, password string) driven.CredentialProvider) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 128
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &View{
		styles:   s,
		auth:     auth,
		provider: provider,
		username: username,
		password: password,
		focused:  fieldUsername,
		width:    80,
		height:   24,
	}
}

// Init initialises the login view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the form for a fresh sign-in.
func (v *View) Reset() {
	v.username.Reset()
	v.password.Reset()
	v.focused = fieldUsername
	v.username.Focus()
	v.password.Blur()
	v.submitting = false
	v.err = nil
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			v.toggleFocus()
			return v, nil

		case "enter":
			if v.focused == fieldUsername {
				v.toggleFocus()
				return v, nil
			}
			return v, v.submit()
		}

	case messages.SignInCompleted:
		v.submitting = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, nil
	}

	var cmd tea.Cmd
	if v.focused == fieldUsername {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

// submit runs the sign-in flow off the update loop.
func (v *View) submit() tea.Cmd {
	username := strings.TrimSpace(v.username.Value())
	password := v.password.Value()
	if username == "" || password == "" {
		return nil
	}

	v.submitting = true
	v.err = nil
	auth := v.auth
	provider := v.provider(username, password)

	return func() tea.Msg {
		profile, err := auth.SignIn(context.Background(), provider)
		return messages.SignInCompleted{Profile: profile, Err: err}
	}
}

func (v *View) toggleFocus() {
	if v.focused == fieldUsername {
		v.focused = fieldPassword
		v.username.Blur()
		v.password.Focus()
	} else {
		v.focused = fieldUsername
		v.password.Blur()
		v.username.Focus()
	}
}

// View renders the sign-in form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("MedLink"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Sign in to continue"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.InputField.Render(v.username.View()))
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.password.View()))
	b.WriteString("\n\n")

	switch {
	case v.submitting:
		b.WriteString(v.styles.Muted.Render("Signing in..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	default:
		b.WriteString(v.styles.Help.Render("[tab] switch field  [enter] sign in  [ctrl+c] quit"))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Err returns the last sign-in error, if any.
func (v *View) Err() error {
	return v.err
}

// Submitting reports whether a sign-in is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}
