package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for MedLink.

The TUI signs you in (or restores a stored session), then gives you the
patient directory with live search, per-patient records and assistant chat,
and the community board.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  Esc      - Back to menu
  Ctrl+L   - Clear chat transcript
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Panic recovery so terminal state and a stack trace survive a crash.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Session:          sessionService,
		Guard:            accessGuard,
		Auth:             authService,
		Directory:        directoryService,
		Records:          recordService,
		Chat:             chatService,
		Community:        communityService,
		Config:           configStore,
		PasswordProvider: passwordProvider,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Bridge the async caches into the update loop: every cache change
	// becomes a message, so views re-render from fresh snapshots.
	directoryService.SetOnUpdate(func() { p.Send(messages.DirectoryUpdated{}) })
	defer directoryService.SetOnUpdate(nil)
	recordService.SetOnUpdate(func() { p.Send(messages.RecordsUpdated{}) })
	defer recordService.SetOnUpdate(nil)
	chatService.SetOnUpdate(func() { p.Send(messages.TranscriptUpdated{}) })
	defer chatService.SetOnUpdate(nil)
	cancel := sessionService.Subscribe(func(s domain.Session) {
		p.Send(messages.SessionChanged{Session: s})
	})
	defer cancel()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
