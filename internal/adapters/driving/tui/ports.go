// Package tui provides the interactive terminal user interface for MedLink.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns client-side authentication state.
	Session driving.SessionService

	// Guard gates protected views on session state.
	Guard driving.AccessGuard

	// Auth orchestrates sign-in and role derivation.
	Auth driving.AuthService

	// Directory is the searchable patient directory cache.
	Directory driving.DirectoryService

	// Records is the per-patient record cache.
	Records driving.RecordService

	// Chat manages per-patient assistant transcripts.
	Chat driving.ChatService

	// Community is the discussion forum service.
	Community driving.CommunityService

	// Config persists UI state such as the last-visited view.
	Config driven.ConfigStore

	// PasswordProvider builds the password sign-in strategy for the login
	// view. Wiring it as a constructor keeps the gateway out of the TUI.
	PasswordProvider func(username, password string) driven.CredentialProvider
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Guard == nil {
		return ErrMissingAccessGuard
	}
	if p.Auth == nil {
		return ErrMissingAuthService
	}
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	if p.Records == nil {
		return ErrMissingRecordService
	}
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Community == nil {
		return ErrMissingCommunityService
	}
	if p.PasswordProvider == nil {
		return ErrMissingPasswordProvider
	}
	return nil
}
