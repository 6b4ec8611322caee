package driven

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// APIGateway is the authenticated request gateway to the MedLink REST
// collaborator. Implementations attach the session credential to protected
// calls, failing fast with domain.ErrUnauthenticated when none is present,
// and normalise failures to domain.RequestError / domain.ErrEmptyResponse.
//
// The gateway never retries and never mutates session state; role updates
// happen in the caller after a successful Profile call.
type APIGateway interface {
	// Login exchanges a username/password pair for an opaque credential.
	// This is the one unauthenticated call.
	Login(ctx context.Context, username, password string) (string, error)

	// Profile fetches the signed-in user's profile.
	Profile(ctx context.Context) (*domain.UserProfile, error)

	// SearchPatients returns the patient directory filtered by query.
	// An empty query returns the unfiltered directory; an empty result is
	// a valid "no results", not an error.
	SearchPatients(ctx context.Context, query string) ([]domain.PatientSummary, error)

	// AddPatient creates a patient under the signed-in doctor.
	AddPatient(ctx context.Context, patient domain.NewPatient) (*domain.PatientSummary, error)

	// Records returns all medical records for a patient.
	Records(ctx context.Context, patientID int) ([]domain.MedicalRecord, error)

	// AddRecord submits a new report. The collaborator computes summary and
	// tags asynchronously; callers refetch rather than append locally.
	AddRecord(ctx context.Context, record domain.NewRecord) error

	// Chat sends a prompt scoped to a patient and returns the raw assistant
	// reply (markup not yet normalised).
	Chat(ctx context.Context, patientID int, prompt string) (string, error)

	// Posts returns all community forum posts.
	Posts(ctx context.Context) ([]domain.Post, error)

	// AddPost creates a community post.
	AddPost(ctx context.Context, post domain.NewPost) error

	// AddComment adds a comment to a post. Callers refetch the post list
	// afterwards rather than appending locally.
	AddComment(ctx context.Context, postID int, comment string) error
}
