package cli

import (
	"context"
	"testing"
	"time"

	"github.com/medlink-care/medlink-cli/internal/adapters/driven/storage/memory"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/services"
)

// cannedGateway serves fixed data for command tests.
type cannedGateway struct {
	patients []domain.PatientSummary
	records  []domain.MedicalRecord
	posts    []domain.Post
	reply    string
}

func (g *cannedGateway) Login(context.Context, string, string) (string, error) {
	return "tok-test", nil
}

func (g *cannedGateway) Profile(context.Context) (*domain.UserProfile, error) {
	return &domain.UserProfile{
		ID:              3,
		Username:        "drgarcia",
		UserType:        domain.RoleDoctor,
		InstitutionName: "St Mary's",
	}, nil
}

func (g *cannedGateway) SearchPatients(_ context.Context, query string) ([]domain.PatientSummary, error) {
	if query == "" {
		return g.patients, nil
	}
	var out []domain.PatientSummary
	for _, p := range g.patients {
		if p.Name == query {
			out = append(out, p)
		}
	}
	return out, nil
}

func (g *cannedGateway) AddPatient(_ context.Context, p domain.NewPatient) (*domain.PatientSummary, error) {
	added := domain.PatientSummary{
		ID:     len(g.patients) + 1,
		Name:   p.Name,
		Age:    p.Age,
		Gender: p.Gender,
	}
	g.patients = append(g.patients, added)
	return &added, nil
}

func (g *cannedGateway) Records(context.Context, int) ([]domain.MedicalRecord, error) {
	return g.records, nil
}

func (g *cannedGateway) AddRecord(_ context.Context, r domain.NewRecord) error {
	g.records = append(g.records, domain.MedicalRecord{
		Name:       r.Name,
		URL:        r.URL,
		RecordType: r.RecordType,
	})
	return nil
}

func (g *cannedGateway) Chat(context.Context, int, string) (string, error) {
	return g.reply, nil
}

func (g *cannedGateway) Posts(context.Context) ([]domain.Post, error) {
	return g.posts, nil
}

func (g *cannedGateway) AddPost(_ context.Context, p domain.NewPost) error {
	g.posts = append(g.posts, domain.Post{
		ID:    len(g.posts) + 1,
		Title: p.Title,
		Desc:  p.Desc,
	})
	return nil
}

func (g *cannedGateway) AddComment(_ context.Context, postID int, comment string) error {
	for i := range g.posts {
		if g.posts[i].ID == postID {
			g.posts[i].Comments = append(g.posts[i].Comments, domain.Comment{Comment: comment})
		}
	}
	return nil
}

// setupTestServices replaces the injected services with fakes backed by a
// canned gateway, and returns a cleanup restoring the previous wiring.
func setupTestServices(t *testing.T) (*cannedGateway, func()) {
	t.Helper()

	gw := &cannedGateway{
		patients: []domain.PatientSummary{
			{ID: 1, Name: "Amos Burton", Age: 38, Gender: "male"},
			{ID: 2, Name: "Camina Drummer", Age: 34, Gender: "female"},
		},
		records: []domain.MedicalRecord{
			{Name: "Blood panel", RecordType: "lab", Date: "2026-08-20"},
		},
		posts: []domain.Post{
			{ID: 1, Title: "Dosage question", Author: "drgarcia", Likes: 2},
		},
		reply: "All values within range.",
	}

	old := Services{
		Session:          sessionService,
		Guard:            accessGuard,
		Auth:             authService,
		Directory:        directoryService,
		Records:          recordService,
		Chat:             chatService,
		Community:        communityService,
		Config:           configStore,
		Registry:         doctorRegistry,
		PasswordProvider: passwordProvider,
		WalletProvider:   walletProvider,
	}

	session := services.NewSessionService(memory.NewSessionStore())
	session.Hydrate()
	session.Login("tok-test")

	ctx := context.Background()
	directory := services.NewDirectoryService(ctx, gw, 10*time.Millisecond)

	SetServices(&Services{
		Session:   session,
		Guard:     services.NewAccessGuard(session),
		Auth:      services.NewAuthService(session, gw),
		Directory: directory,
		Records:   services.NewRecordService(ctx, gw),
		Chat:      services.NewChatService(gw, memory.NewTranscriptStore()),
		Community: services.NewCommunityService(gw),
		Config:    memory.NewConfigStore(),
		Registry:  memory.NewDoctorRegistry(),
		PasswordProvider: func(username, password string) driven.CredentialProvider {
			return staticProvider{credential: "tok-" + username}
		},
		WalletProvider: func(address string) driven.CredentialProvider {
			return staticProvider{credential: "wallet:" + address}
		},
	})

	return gw, func() {
		directory.Close()
		SetServices(&old)
	}
}

type staticProvider struct {
	credential string
}

func (staticProvider) Method() driven.AuthMethod { return driven.AuthMethodPassword }
func (p staticProvider) Acquire(context.Context) (string, error) {
	return p.credential, nil
}
