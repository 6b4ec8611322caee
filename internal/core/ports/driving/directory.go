package driving

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// DirectorySnapshot is the patient directory cache's current state.
type DirectorySnapshot struct {
	// Query is the current search text.
	Query string
	// Patients is the last successfully fetched list for Query (or an
	// earlier query if the latest fetch failed).
	Patients []domain.PatientSummary
	// Loading reports whether a fetch is scheduled or in flight.
	Loading bool
	// Err is the last fetch failure; a failed fetch preserves the previous
	// list and surfaces here.
	Err error
}

// DirectoryService maintains the searchable patient directory. Query changes
// are debounced; only the most recently issued fetch's result is ever
// applied, regardless of network completion order.
type DirectoryService interface {
	// SetQuery updates the search text. A non-empty change schedules a fetch
	// after the debounce window; clearing the text fetches immediately.
	SetQuery(text string)

	// Refresh issues an immediate fetch for the current query, superseding
	// anything in flight. Used on startup and after mutations.
	Refresh()

	// Search replaces the query and fetches immediately, bypassing the
	// debounce. For one-shot callers that already hold the final text.
	Search(text string)

	// AddPatient creates a patient and refreshes the directory on success.
	// A failure leaves the cached list intact.
	AddPatient(ctx context.Context, patient domain.NewPatient) error

	// Snapshot returns the cache's current state.
	Snapshot() DirectorySnapshot

	// SetOnUpdate registers the single listener notified after every state
	// change. Intended for the driving adapter's event loop.
	SetOnUpdate(fn func())

	// Close cancels any pending debounce timer.
	Close()
}
