package services

import (
	"context"
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure the fake satisfies the gateway port.
var _ driven.APIGateway = (*fakeGateway)(nil)

// fakeGateway is a configurable APIGateway test double. Each call records
// its arguments; behaviour is overridden per test via the Fn fields.
type fakeGateway struct {
	mu sync.Mutex

	SearchCalls  []string
	RecordsCalls []int
	ChatCalls    []string
	PostsCalls   int

	LoginFn      func(username, password string) (string, error)
	ProfileFn    func() (*domain.UserProfile, error)
	SearchFn     func(query string) ([]domain.PatientSummary, error)
	AddPatientFn func(patient domain.NewPatient) (*domain.PatientSummary, error)
	RecordsFn    func(patientID int) ([]domain.MedicalRecord, error)
	AddRecordFn  func(record domain.NewRecord) error
	ChatFn       func(patientID int, prompt string) (string, error)
	PostsFn      func() ([]domain.Post, error)
	AddPostFn    func(post domain.NewPost) error
	AddCommentFn func(postID int, comment string) error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{}
}

func (f *fakeGateway) Login(_ context.Context, username, password string) (string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(username, password)
	}
	return "tok-" + username, nil
}

func (f *fakeGateway) Profile(_ context.Context) (*domain.UserProfile, error) {
	if f.ProfileFn != nil {
		return f.ProfileFn()
	}
	return &domain.UserProfile{ID: 1, Username: "drwho", UserType: domain.RoleDoctor}, nil
}

func (f *fakeGateway) SearchPatients(_ context.Context, query string) ([]domain.PatientSummary, error) {
	f.mu.Lock()
	f.SearchCalls = append(f.SearchCalls, query)
	fn := f.SearchFn
	f.mu.Unlock()

	if fn != nil {
		return fn(query)
	}
	return []domain.PatientSummary{}, nil
}

func (f *fakeGateway) AddPatient(_ context.Context, patient domain.NewPatient) (*domain.PatientSummary, error) {
	if f.AddPatientFn != nil {
		return f.AddPatientFn(patient)
	}
	return &domain.PatientSummary{ID: 99, Name: patient.Name}, nil
}

func (f *fakeGateway) Records(_ context.Context, patientID int) ([]domain.MedicalRecord, error) {
	f.mu.Lock()
	f.RecordsCalls = append(f.RecordsCalls, patientID)
	fn := f.RecordsFn
	f.mu.Unlock()

	if fn != nil {
		return fn(patientID)
	}
	return []domain.MedicalRecord{}, nil
}

func (f *fakeGateway) AddRecord(_ context.Context, record domain.NewRecord) error {
	if f.AddRecordFn != nil {
		return f.AddRecordFn(record)
	}
	return nil
}

func (f *fakeGateway) Chat(_ context.Context, patientID int, prompt string) (string, error) {
	f.mu.Lock()
	f.ChatCalls = append(f.ChatCalls, prompt)
	fn := f.ChatFn
	f.mu.Unlock()

	if fn != nil {
		return fn(patientID, prompt)
	}
	return "ok", nil
}

func (f *fakeGateway) Posts(_ context.Context) ([]domain.Post, error) {
	f.mu.Lock()
	f.PostsCalls++
	fn := f.PostsFn
	f.mu.Unlock()

	if fn != nil {
		return fn()
	}
	return []domain.Post{}, nil
}

func (f *fakeGateway) AddPost(_ context.Context, post domain.NewPost) error {
	if f.AddPostFn != nil {
		return f.AddPostFn(post)
	}
	return nil
}

func (f *fakeGateway) AddComment(_ context.Context, postID int, comment string) error {
	if f.AddCommentFn != nil {
		return f.AddCommentFn(postID, comment)
	}
	return nil
}

func (f *fakeGateway) searchCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SearchCalls)
}

func (f *fakeGateway) lastSearchCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.SearchCalls) == 0 {
		return ""
	}
	return f.SearchCalls[len(f.SearchCalls)-1]
}

func (f *fakeGateway) recordsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.RecordsCalls)
}

func (f *fakeGateway) postsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PostsCalls
}

// fakeProvider is a canned credential provider.
type fakeProvider struct {
	method     driven.AuthMethod
	credential string
	err        error
}

func (p *fakeProvider) Method() driven.AuthMethod {
	if p.method == "" {
		return driven.AuthMethodPassword
	}
	return p.method
}

func (p *fakeProvider) Acquire(context.Context) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.credential, nil
}
