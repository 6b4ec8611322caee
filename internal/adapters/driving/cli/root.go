// Package cli implements the command line interface for MedLink. Commands
// talk to the core exclusively through driving ports; the concrete services
// are injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root.
var (
	sessionService   driving.SessionService
	accessGuard      driving.AccessGuard
	authService      driving.AuthService
	directoryService driving.DirectoryService
	recordService    driving.RecordService
	chatService      driving.ChatService
	communityService driving.CommunityService
	configStore      driven.ConfigStore
	doctorRegistry   driven.DoctorRegistry

	// Credential strategy constructors; commands never see the gateway or
	// the registry directly.
	passwordProvider func(username, password string) driven.CredentialProvider
	walletProvider   func(address string) driven.CredentialProvider
)

// Services bundles everything the CLI needs from the composition root.
type Services struct {
	Session   driving.SessionService
	Guard     driving.AccessGuard
	Auth      driving.AuthService
	Directory driving.DirectoryService
	Records   driving.RecordService
	Chat      driving.ChatService
	Community driving.CommunityService
	Config    driven.ConfigStore
	Registry  driven.DoctorRegistry

	PasswordProvider func(username, password string) driven.CredentialProvider
	WalletProvider   func(address string) driven.CredentialProvider
}

// SetServices wires the injected services into the command tree.
func SetServices(s *Services) {
	sessionService = s.Session
	accessGuard = s.Guard
	authService = s.Auth
	directoryService = s.Directory
	recordService = s.Records
	chatService = s.Chat
	communityService = s.Community
	configStore = s.Config
	doctorRegistry = s.Registry
	passwordProvider = s.PasswordProvider
	walletProvider = s.WalletProvider
}

// SetVersion overrides the build version string.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "medlink",
	Short: "Patient management from the terminal",
	Long: `MedLink is a client for the MedConnect patient management service.

It manages your session, the patient directory, per-patient medical records,
an AI assistant chat per patient, and the community discussion board.

Run 'medlink tui' for the interactive interface, or use the subcommands
directly for scripting.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		// Restore the persisted session before any command runs.
		if sessionService != nil {
			sessionService.Hydrate()
		}
	},
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
