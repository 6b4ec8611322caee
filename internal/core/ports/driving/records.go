package driving

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// RecordsSnapshot is the record cache's current state for the selected
// patient.
type RecordsSnapshot struct {
	// PatientID is the selected patient, or 0 when none is selected.
	PatientID int
	// Records is the last successfully fetched list for PatientID. An empty
	// list is a valid "no records" state, not an error.
	Records []domain.MedicalRecord
	// Loading reports whether a fetch is in flight.
	Loading bool
	// Err is the last fetch failure for PatientID.
	Err error
}

// RecordService caches medical records for the currently selected patient.
// Selecting a new patient replaces the previous patient's records outright;
// in-flight fetches are tagged with the requesting patient id and stale
// responses discarded, so the newest selection always wins.
type RecordService interface {
	// Select makes patientID the current patient and fetches its records,
	// replacing any previous patient's records.
	Select(patientID int)

	// Refresh refetches the selected patient's records, superseding any
	// in-flight fetch. Called after report creation.
	Refresh()

	// AddReport submits a report for the selected patient and, on success,
	// triggers a refetch. On failure prior state stays intact.
	AddReport(ctx context.Context, record domain.NewRecord) error

	// Snapshot returns the cache's current state.
	Snapshot() RecordsSnapshot

	// SetOnUpdate registers the single listener notified after every state
	// change.
	SetOnUpdate(fn func())
}
