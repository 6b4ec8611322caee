// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// keyActiveMenuItem persists the last-visited menu position so a restart
// lands the user where they left off.
const keyActiveMenuItem = "ui.active_menu_item"

// Item represents a single menu option.
type Item struct {
	Label  string
	View   messages.ViewType
	Logout bool // If true, selecting this item signs out
	Quit   bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	config   driven.ConfigStore
	items    []Item
	selected int
	width    int
	height   int
}

// NewView creates a new menu view. The selection is restored from config
// when a previous position was persisted.
func NewView(s *styles.Styles, config driven.ConfigStore) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		config: config,
		items: []Item{
			{Label: "Patients", View: messages.ViewPatients},
			{Label: "Assistant", View: messages.ViewChat},
			{Label: "Community", View: messages.ViewCommunity},
			{Label: "Profile", View: messages.ViewProfile},
			{Label: "Sign out", Logout: true},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}

	if config != nil {
		if saved := config.GetInt(keyActiveMenuItem); saved > 0 && saved < len(v.items) {
			v.selected = saved
		}
	}
	return v
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.persistSelection()
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
			v.persistSelection()
		}
		return v, nil

	case "enter":
		item := v.items[v.selected]
		if item.Quit {
			return v, tea.Quit
		}
		if item.Logout {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewLogin}
			}
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}

	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// persistSelection saves the cursor position; failures are ignored since
// the position is a convenience, not state the app depends on.
func (v *View) persistSelection() {
	if v.config != nil {
		_ = v.config.Set(keyActiveMenuItem, v.selected)
	}
}

// View renders the menu.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("MedLink"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Patient Management"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(item.Label)
		}
		b.WriteString(cursor + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedItem returns the currently selected item.
func (v *View) SelectedItem() Item {
	return v.items[v.selected]
}
