// Package file implements the doctor registry over a provisioned JSON file.
// The file mirrors the on-chain registry contents for offline use; an
// operator (or a future chain client) refreshes it out of band.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.DoctorRegistry = (*Registry)(nil)

// Registry serves doctor registrations from a JSON file keyed by wallet
// address. A missing file is an empty registry, not an error.
type Registry struct {
	mu      sync.Mutex
	path    string
	doctors map[string]domain.DoctorRecord
}

// Open loads the registry at path, creating parent directories as needed so
// registrations can be written back.
func Open(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		doctors: make(map[string]domain.DoctorRecord),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}
	if err := json.Unmarshal(data, &r.doctors); err != nil {
		return nil, fmt.Errorf("parsing registry file: %w", err)
	}
	return r, nil
}

// Doctor looks up the registration for a wallet address.
func (r *Registry) Doctor(_ context.Context, address string) (*domain.DoctorRecord, error) {
	if address == "" {
		return nil, domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.doctors[address]
	if !ok {
		return &domain.DoctorRecord{Address: address, IsRegistered: false}, nil
	}
	return &record, nil
}

// RegisterDoctor records a registration and persists the file.
func (r *Registry) RegisterDoctor(_ context.Context, record domain.DoctorRecord) error {
	if record.Address == "" {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record.IsRegistered = true
	r.doctors[record.Address] = record
	return r.flushLocked()
}

// flushLocked writes the registry file (caller holds mu).
func (r *Registry) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	data, err := json.MarshalIndent(r.doctors, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("writing registry file: %w", err)
	}
	return nil
}
