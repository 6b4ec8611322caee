// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLoading is the pre-hydration hold screen.
	ViewLoading ViewType = iota
	// ViewLogin is the sign-in view.
	ViewLogin
	// ViewMenu is the main navigation menu.
	ViewMenu
	// ViewPatients is the patient directory and records view.
	ViewPatients
	// ViewChat is the patient-scoped assistant view.
	ViewChat
	// ViewCommunity is the discussion forum view.
	ViewCommunity
	// ViewProfile shows the signed-in user's profile.
	ViewProfile
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewLogin:
		return "login"
	case ViewMenu:
		return "menu"
	case ViewPatients:
		return "patients"
	case ViewChat:
		return "chat"
	case ViewCommunity:
		return "community"
	case ViewProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SessionChanged carries a session snapshot after any session mutation;
// the app re-evaluates the access guard on every one.
type SessionChanged struct {
	Session domain.Session
}

// SignInCompleted carries the outcome of a sign-in attempt.
type SignInCompleted struct {
	Profile *domain.UserProfile
	Err     error
}

// DirectoryUpdated signals that the patient directory cache changed.
type DirectoryUpdated struct{}

// RecordsUpdated signals that the record cache changed.
type RecordsUpdated struct{}

// TranscriptUpdated signals that the chat transcript changed.
type TranscriptUpdated struct{}

// PatientSelected is sent when a patient is picked from the directory.
type PatientSelected struct {
	Patient domain.PatientSummary
}

// PostsLoaded carries the community post list.
type PostsLoaded struct {
	Posts []domain.Post
	Err   error
}

// ProfileLoaded carries the signed-in user's profile.
type ProfileLoaded struct {
	Profile *domain.UserProfile
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
