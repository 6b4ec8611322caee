// Package status provides the session status bar component.
package status

import (
	"fmt"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// Bar renders a one-line session summary at the bottom of the screen.
type Bar struct {
	styles  *styles.Styles
	session domain.Session
	width   int
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s, width: 80}
}

// SetSession updates the rendered session snapshot.
func (b *Bar) SetSession(session domain.Session) {
	b.session = session
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders the bar.
func (b *Bar) View() string {
	var text string
	switch {
	case !b.session.Initialized:
		text = "restoring session..."
	case !b.session.Authenticated():
		text = "signed out"
	default:
		text = fmt.Sprintf("signed in · %s", b.session.Role)
	}
	return b.styles.StatusBar.Width(b.width).Render(text)
}
