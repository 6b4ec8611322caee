package memory

import (
	"context"
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure DoctorRegistry implements the interface.
var _ driven.DoctorRegistry = (*DoctorRegistry)(nil)

// DoctorRegistry is an in-memory implementation of driven.DoctorRegistry for
// testing.
type DoctorRegistry struct {
	mu      sync.RWMutex
	doctors map[string]domain.DoctorRecord

	// Lookups counts Doctor calls, for cache tests.
	Lookups int

	// LookupErr forces Doctor failures when set.
	LookupErr error
}

// NewDoctorRegistry creates an empty in-memory registry.
func NewDoctorRegistry() *DoctorRegistry {
	return &DoctorRegistry{
		doctors: make(map[string]domain.DoctorRecord),
	}
}

// Doctor looks up a registration by wallet address.
func (r *DoctorRegistry) Doctor(_ context.Context, address string) (*domain.DoctorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lookups++
	if r.LookupErr != nil {
		return nil, r.LookupErr
	}

	rec, ok := r.doctors[address]
	if !ok {
		return &domain.DoctorRecord{Address: address, IsRegistered: false}, nil
	}
	return &rec, nil
}

// RegisterDoctor stores a registration.
func (r *DoctorRegistry) RegisterDoctor(_ context.Context, record domain.DoctorRecord) error {
	if record.Address == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record.IsRegistered = true
	r.doctors[record.Address] = record
	return nil
}
