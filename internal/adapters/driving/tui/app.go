package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/components/status"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/keymap"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/views/chat"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/views/community"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/views/login"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/views/menu"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/views/patients"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/views/profile"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Protected views are gated by the access guard: before hydration the app
// holds on a loading screen, a signed-out session lands on login, and a
// logout from anywhere falls back to login on the next session change.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the application-level keybindings.
	keys *keymap.KeyMap

	// loginView is the sign-in form.
	loginView *login.View

	// menuView is the main navigation menu.
	menuView *menu.View

	// patientsView is the directory and records view.
	patientsView *patients.View

	// chatView is the patient-scoped assistant view.
	chatView *chat.View

	// communityView is the discussion forum view.
	communityView *community.View

	// profileView shows the signed-in user's profile.
	profileView *profile.View

	// statusBar renders the session summary line.
	statusBar *status.Bar

	// currentView tracks which protected view is active once the guard
	// allows rendering.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		styles:        s,
		keys:          keymap.DefaultKeyMap(),
		loginView:     login.NewView(s, ports.Auth, ports.PasswordProvider),
		menuView:      menu.NewView(s, ports.Config),
		patientsView:  patients.NewView(s, ports.Directory, ports.Records),
		chatView:      chat.NewView(s, ports.Chat),
		communityView: community.NewView(s, ports.Community),
		profileView:   profile.NewView(s, ports.Auth),
		statusBar:     status.NewBar(s),
		currentView:   messages.ViewMenu,
	}, nil
}

// Init implements tea.Model. Hydration happens here so the first frame
// renders the loading state, never a premature redirect.
func (a *App) Init() tea.Cmd {
	session := a.ports.Session
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("MedLink"),
		func() tea.Msg {
			session.Hydrate()
			return messages.SessionChanged{Session: session.Current()}
		},
	)
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.loginView.SetDimensions(msg.Width, msg.Height)
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.patientsView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.communityView.SetDimensions(msg.Width, msg.Height)
		a.profileView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case messages.SessionChanged:
		a.statusBar.SetSession(msg.Session)
		return a, nil

	case messages.SignInCompleted:
		a.loginView, cmd = a.loginView.Update(msg)
		if msg.Err == nil {
			// The guard flips to allow on the session change; land on
			// the menu.
			a.currentView = messages.ViewMenu
		}
		return a, cmd

	case messages.ViewChanged:
		if msg.View == messages.ViewLogin {
			// Sign out path: clear the session, the guard redirects.
			a.ports.Auth.SignOut()
			a.loginView.Reset()
			return a, a.loginView.Init()
		}
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewPatients:
			return a, a.patientsView.Init()
		case messages.ViewChat:
			return a, a.chatView.Init()
		case messages.ViewCommunity:
			return a, a.communityView.Init()
		case messages.ViewProfile:
			return a, a.profileView.Init()
		case messages.ViewLoading, messages.ViewLogin, messages.ViewMenu:
			// No initialisation needed.
		}
		return a, nil

	case messages.PatientSelected:
		a.currentView = messages.ViewChat
		return a, a.chatView.SetPatient(msg.Patient)

	case messages.DirectoryUpdated:
		a.patientsView, cmd = a.patientsView.Update(msg)
		return a, cmd

	case messages.RecordsUpdated:
		return a, nil

	case messages.TranscriptUpdated:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.PostsLoaded:
		a.communityView, cmd = a.communityView.Update(msg)
		return a, cmd

	case messages.ProfileLoaded:
		a.profileView, cmd = a.profileView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

		switch a.decision() {
		case domain.GuardLoading:
			// Hold: no view accepts input yet.
			return a, nil
		case domain.GuardRedirect:
			a.loginView, cmd = a.loginView.Update(msg)
			return a, cmd
		case domain.GuardAllow:
		}

		// Esc returns to the menu from any protected view.
		if key.Matches(msg, a.keys.Back) && a.currentView != messages.ViewMenu {
			a.currentView = messages.ViewMenu
			return a, nil
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewPatients:
			a.patientsView, cmd = a.patientsView.Update(msg)
		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
		case messages.ViewCommunity:
			a.communityView, cmd = a.communityView.Update(msg)
		case messages.ViewProfile, messages.ViewLoading, messages.ViewLogin:
			// Profile is read-only; loading and login are handled above.
		}
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.decision() {
	case domain.GuardLoading:
		body = a.styles.Muted.Render("Restoring session...")
	case domain.GuardRedirect:
		body = a.loginView.View()
	case domain.GuardAllow:
		switch a.currentView {
		case messages.ViewPatients:
			body = a.patientsView.View()
		case messages.ViewChat:
			body = a.chatView.View()
		case messages.ViewCommunity:
			body = a.communityView.View()
		case messages.ViewProfile:
			body = a.profileView.View()
		default:
			body = a.menuView.View()
		}
	}

	if a.err != nil {
		body += "\n" + a.styles.Error.Render(a.err.Error())
	}
	return body + "\n" + a.statusBar.View()
}

// decision asks the guard what the current session permits.
func (a *App) decision() domain.GuardDecision {
	return a.ports.Guard.Decide()
}

// CurrentView returns the active protected view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error shown.
func (a *App) Err() error {
	return a.err
}
