// Package patients provides the patient directory and records view.
package patients

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// View shows the searchable patient directory with a records pane for the
// selected patient. Keystrokes feed the directory service, which debounces
// the fetch; the view renders whatever the cache currently holds.
type View struct {
	styles    *styles.Styles
	directory driving.DirectoryService
	records   driving.RecordService

	search   textinput.Model
	selected int
	width    int
	height   int
}

// NewView creates a new patients view.
func NewView(s *styles.Styles, directory driving.DirectoryService, records driving.RecordService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	search := textinput.New()
	search.Placeholder = "Search patients..."
	search.CharLimit = 256
	search.Width = 40
	search.Focus()

	return &View{
		styles:    s,
		directory: directory,
		records:   records,
		search:    search,
		width:     80,
		height:    24,
	}
}

// Init initialises the patients view and triggers the initial directory load.
func (v *View) Init() tea.Cmd {
	v.directory.Refresh()
	return textinput.Blink
}

// Update handles messages for the patients view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "ctrl+j":
			snap := v.directory.Snapshot()
			if v.selected < len(snap.Patients)-1 {
				v.selected++
			}
			return v, nil

		case "ctrl+r":
			v.directory.Refresh()
			return v, nil

		case "enter":
			snap := v.directory.Snapshot()
			if v.selected >= len(snap.Patients) {
				return v, nil
			}
			patient := snap.Patients[v.selected]
			v.records.Select(patient.ID)
			return v, func() tea.Msg {
				return messages.PatientSelected{Patient: patient}
			}
		}

		// Everything else edits the search box and feeds the debounced
		// directory query.
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		v.directory.SetQuery(v.search.Value())
		return v, cmd

	case messages.DirectoryUpdated:
		snap := v.directory.Snapshot()
		if v.selected >= len(snap.Patients) {
			v.selected = 0
		}
		return v, nil
	}

	return v, nil
}

// View renders the directory and the selected patient's records.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Patients"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.search.View()))
	b.WriteString("\n\n")

	snap := v.directory.Snapshot()
	switch {
	case snap.Err != nil:
		b.WriteString(v.styles.Error.Render("directory unavailable, showing last known list"))
		b.WriteString("\n\n")
	case snap.Loading:
		b.WriteString(v.styles.Muted.Render("Searching..."))
		b.WriteString("\n\n")
	}

	if len(snap.Patients) == 0 && !snap.Loading {
		b.WriteString(v.styles.Muted.Render("No patients found."))
		b.WriteString("\n")
	}

	for i, patient := range snap.Patients {
		cursor := "  "
		line := fmt.Sprintf("%s (%d, %s)", patient.Name, patient.Age, patient.Gender)
		rendered := v.styles.Normal.Render(line)
		if i == v.selected {
			cursor = "> "
			rendered = v.styles.Selected.Render(line)
		}
		b.WriteString(cursor + rendered + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderRecords())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] Navigate  [Enter] Select  [ctrl+r] Refresh  [esc] Menu"))

	return b.String()
}

// renderRecords shows the record cache for the selected patient.
func (v *View) renderRecords() string {
	snap := v.records.Snapshot()
	if snap.PatientID == 0 {
		return v.styles.Muted.Render("Select a patient to view records.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Records"))
	b.WriteString("\n")

	switch {
	case snap.Loading:
		b.WriteString(v.styles.Muted.Render("Loading records..."))
	case snap.Err != nil:
		b.WriteString(v.styles.Error.Render("records unavailable"))
	case len(snap.Records) == 0:
		b.WriteString(v.styles.Muted.Render("No records for this patient."))
	default:
		for _, record := range snap.Records {
			b.WriteString(fmt.Sprintf("  %s [%s] %s\n",
				v.styles.Normal.Render(record.Name),
				record.RecordType,
				v.styles.Muted.Render(record.Date)))
			if record.Summary != "" {
				b.WriteString("    " + v.styles.Muted.Render(record.Summary) + "\n")
			}
		}
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Reset clears the search box and selection.
func (v *View) Reset() {
	v.search.Reset()
	v.selected = 0
	v.directory.SetQuery("")
}

// Selected returns the cursor index in the directory list.
func (v *View) Selected() int {
	return v.selected
}
