package driven

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// DoctorRegistry is the boundary to the external wallet-based doctor
// registry. It is consumed read-only (Doctor) and write-only
// (RegisterDoctor); the registry's own logic is never re-implemented here.
type DoctorRegistry interface {
	// Doctor looks up the registration for a wallet address.
	// An unregistered address yields a record with IsRegistered=false.
	Doctor(ctx context.Context, address string) (*domain.DoctorRecord, error)

	// RegisterDoctor submits a new registration for a wallet address.
	RegisterDoctor(ctx context.Context, record domain.DoctorRecord) error
}
