package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService caches medical records for the selected patient. Every fetch
// is tagged with the requesting patient id and a sequence number; completions
// for a patient who is no longer selected, or superseded by a newer fetch,
// are discarded. The newest selection always wins regardless of network
// completion order.
type RecordService struct {
	api driven.APIGateway
	ctx context.Context

	mu        sync.Mutex
	patientID int
	records   []domain.MedicalRecord
	loading   bool
	lastErr   error
	seq       uint64

	onUpdate func()
}

// NewRecordService creates a record cache over the gateway.
func NewRecordService(ctx context.Context, api driven.APIGateway) *RecordService {
	return &RecordService{api: api, ctx: ctx}
}

// SetOnUpdate registers the single listener notified after every state change.
func (s *RecordService) SetOnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// Select makes patientID the current patient, replaces the previous
// patient's records outright, and fetches the new patient's records.
// Selecting 0 clears the cache without fetching.
func (s *RecordService) Select(patientID int) {
	s.mu.Lock()
	s.patientID = patientID
	s.records = nil
	s.lastErr = nil
	seq := s.nextSeqLocked()
	if patientID == 0 {
		s.loading = false
		s.mu.Unlock()
		s.fireUpdate()
		return
	}
	s.loading = true
	s.mu.Unlock()
	s.fireUpdate()

	go s.fetch(patientID, seq)
}

// Refresh refetches the selected patient's records, superseding any fetch
// still in flight. A no-op when no patient is selected.
func (s *RecordService) Refresh() {
	s.mu.Lock()
	patientID := s.patientID
	if patientID == 0 {
		s.mu.Unlock()
		return
	}
	seq := s.nextSeqLocked()
	s.loading = true
	s.mu.Unlock()
	s.fireUpdate()

	go s.fetch(patientID, seq)
}

// AddReport submits a report for the selected patient. On success the record
// list is refetched rather than appended locally, because the collaborator
// computes summary and tags asynchronously. On failure prior state stays
// intact and only this step's error is reported.
func (s *RecordService) AddReport(ctx context.Context, record domain.NewRecord) error {
	s.mu.Lock()
	patientID := s.patientID
	s.mu.Unlock()

	if patientID == 0 {
		return domain.ErrNoPatientSelected
	}
	if record.Name == "" || record.URL == "" {
		return domain.ErrInvalidInput
	}
	record.PatientID = patientID

	if err := s.api.AddRecord(ctx, record); err != nil {
		return fmt.Errorf("add report: %w", err)
	}

	logger.Info("report added for patient %d, refetching records", patientID)
	s.Refresh()
	return nil
}

// Snapshot returns the cache's current state.
func (s *RecordService) Snapshot() driving.RecordsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.MedicalRecord, len(s.records))
	copy(records, s.records)

	return driving.RecordsSnapshot{
		PatientID: s.patientID,
		Records:   records,
		Loading:   s.loading,
		Err:       s.lastErr,
	}
}

// fetch retrieves records for patientID tagged with seq. Stale completions
// (superseded sequence or different selected patient) are discarded.
func (s *RecordService) fetch(patientID int, seq uint64) {
	logger.Section("Records Fetch")
	logger.Debug("patient=%d seq=%d", patientID, seq)

	records, err := s.api.Records(s.ctx, patientID)

	s.mu.Lock()
	if seq != s.seq || patientID != s.patientID {
		s.mu.Unlock()
		logger.Debug("discarding stale records fetch for patient %d", patientID)
		return
	}

	s.loading = false
	if err != nil {
		logger.Warn("records fetch failed: %v", err)
		s.lastErr = err
	} else {
		if records == nil {
			records = []domain.MedicalRecord{}
		}
		s.records = records
		s.lastErr = nil
		logger.Debug("records updated: %d entries", len(records))
	}
	s.mu.Unlock()
	s.fireUpdate()
}

// nextSeqLocked advances and returns the fetch sequence (caller holds mu).
func (s *RecordService) nextSeqLocked() uint64 {
	s.seq++
	return s.seq
}

// fireUpdate invokes the update listener, if set, without holding the lock.
func (s *RecordService) fireUpdate() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
