// Package profile shows the signed-in user's profile.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// View fetches and renders the signed-in user's profile. Each visit
// refetches, which also re-derives the session role.
type View struct {
	styles *styles.Styles
	auth   driving.AuthService

	profile *domain.UserProfile
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new profile view.
func NewView(s *styles.Styles, auth driving.AuthService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		auth:   auth,
		width:  80,
		height: 24,
	}
}

// Init triggers the profile fetch.
func (v *View) Init() tea.Cmd {
	v.loading = true
	auth := v.auth
	return func() tea.Msg {
		profile, err := auth.RefreshProfile(context.Background())
		return messages.ProfileLoaded{Profile: profile, Err: err}
	}
}

// Update handles messages for the profile view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if loaded, ok := msg.(messages.ProfileLoaded); ok {
		v.loading = false
		v.err = loaded.Err
		if loaded.Err == nil {
			v.profile = loaded.Profile
		}
	}
	return v, nil
}

// View renders the profile.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Profile"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading profile..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("profile unavailable"))
	case v.profile == nil:
		b.WriteString(v.styles.Muted.Render("No profile loaded."))
	default:
		b.WriteString(fmt.Sprintf("%s %s\n", v.styles.Subtitle.Render("Username:"), v.profile.Username))
		b.WriteString(fmt.Sprintf("%s %s\n", v.styles.Subtitle.Render("Role:"), v.profile.UserType))
		if v.profile.InstitutionName != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", v.styles.Subtitle.Render("Institution:"), v.profile.InstitutionName))
		}
		if v.profile.Specialisation != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", v.styles.Subtitle.Render("Specialisation:"), v.profile.Specialisation))
		}
		if v.profile.Experience > 0 {
			b.WriteString(fmt.Sprintf("%s %d years\n", v.styles.Subtitle.Render("Experience:"), v.profile.Experience))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] Menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Profile returns the loaded profile, if any.
func (v *View) Profile() *domain.UserProfile {
	return v.profile
}
