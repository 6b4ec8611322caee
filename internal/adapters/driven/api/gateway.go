// Package api provides the HTTP implementation of the APIGateway port.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driven.APIGateway = (*Gateway)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://medconnect-co7la.ondigitalocean.app/api"
	DefaultTimeout = 30 * time.Second

	// DefaultRequestRate throttles outbound calls proactively; the
	// collaborator publishes no limit headers to react to.
	DefaultRequestRate = 5.0
)

// CredentialSource yields the current session. The gateway only ever reads
// it; session mutations stay with the session service.
type CredentialSource interface {
	Current() domain.Session
}

// Config holds configuration for the HTTP gateway.
type Config struct {
	// BaseURL is the collaborator's API root (default: the hosted MedLink API).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond caps outbound request rate (default: 5).
	RequestsPerSecond float64
}

// Gateway is the authenticated HTTP gateway to the MedLink REST collaborator.
// Every protected call attaches the session credential, fails fast without
// one, and never retries: callers own staleness handling and the UI owns
// error presentation.
type Gateway struct {
	client  *http.Client
	baseURL string
	session CredentialSource
	limiter *rate.Limiter
}

// NewGateway creates an HTTP gateway over the given session source.
func NewGateway(session CredentialSource, cfg Config) *Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestRate
	}

	return &Gateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: session,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// loginRequest is the credential exchange payload.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the issued token.
type loginResponse struct {
	Key string `json:"key"`
}

// chatRequest is the assistant prompt payload.
type chatRequest struct {
	PatientID int    `json:"patient_id"`
	Prompt    string `json:"prompt"`
}

// chatResponse carries the raw assistant reply.
type chatResponse struct {
	Response string `json:"response"`
}

// commentRequest is the comment creation payload.
type commentRequest struct {
	PostID  int    `json:"id"`
	Comment string `json:"comment"`
}

// Login exchanges a username/password pair for a credential. This is the one
// call issued without an Authorization header.
func (g *Gateway) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidInput
	}

	body, err := g.do(ctx, http.MethodPost, "/auth/login/", loginRequest{Username: username, Password: password}, false)
	if err != nil {
		if reqErr, ok := domain.IsRequestError(err); ok && reqErr.Status == http.StatusBadRequest {
			return "", domain.ErrLoginFailed
		}
		return "", err
	}
	if len(body) == 0 {
		return "", domain.ErrEmptyResponse
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if resp.Key == "" {
		return "", domain.ErrLoginFailed
	}
	return resp.Key, nil
}

// Profile fetches the signed-in user's profile.
func (g *Gateway) Profile(ctx context.Context) (*domain.UserProfile, error) {
	body, err := g.do(ctx, http.MethodGet, "/userProfile/", nil, true)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, domain.ErrEmptyResponse
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}

// SearchPatients returns the directory filtered by query. An empty body is a
// valid empty directory.
func (g *Gateway) SearchPatients(ctx context.Context, query string) ([]domain.PatientSummary, error) {
	path := "/patients/"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}

	body, err := g.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return []domain.PatientSummary{}, nil
	}

	var patients []domain.PatientSummary
	if err := json.Unmarshal(body, &patients); err != nil {
		return nil, fmt.Errorf("decoding patients: %w", err)
	}
	return patients, nil
}

// AddPatient creates a patient under the signed-in doctor.
func (g *Gateway) AddPatient(ctx context.Context, patient domain.NewPatient) (*domain.PatientSummary, error) {
	body, err := g.do(ctx, http.MethodPost, "/patients/", patient, true)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, domain.ErrEmptyResponse
	}

	var created domain.PatientSummary
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decoding created patient: %w", err)
	}
	return &created, nil
}

// Records returns all records for a patient. An empty body is a valid
// no-records state.
func (g *Gateway) Records(ctx context.Context, patientID int) ([]domain.MedicalRecord, error) {
	body, err := g.do(ctx, http.MethodGet, "/records/"+strconv.Itoa(patientID), nil, true)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return []domain.MedicalRecord{}, nil
	}

	var records []domain.MedicalRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

// AddRecord submits a new report.
func (g *Gateway) AddRecord(ctx context.Context, record domain.NewRecord) error {
	_, err := g.do(ctx, http.MethodPost, "/records/", record, true)
	return err
}

// Chat sends a patient-scoped prompt and returns the raw reply.
func (g *Gateway) Chat(ctx context.Context, patientID int, prompt string) (string, error) {
	body, err := g.do(ctx, http.MethodPost, "/chat/", chatRequest{PatientID: patientID, Prompt: prompt}, true)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", domain.ErrEmptyResponse
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if resp.Response == "" {
		return "", domain.ErrEmptyResponse
	}
	return resp.Response, nil
}

// Posts returns all community posts.
func (g *Gateway) Posts(ctx context.Context) ([]domain.Post, error) {
	body, err := g.do(ctx, http.MethodGet, "/posts/", nil, true)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return []domain.Post{}, nil
	}

	var posts []domain.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("decoding posts: %w", err)
	}
	return posts, nil
}

// AddPost creates a community post.
func (g *Gateway) AddPost(ctx context.Context, post domain.NewPost) error {
	_, err := g.do(ctx, http.MethodPost, "/posts/", post, true)
	return err
}

// AddComment adds a comment to a post.
func (g *Gateway) AddComment(ctx context.Context, postID int, comment string) error {
	_, err := g.do(ctx, http.MethodPost, "/comment/", commentRequest{PostID: postID, Comment: comment}, true)
	return err
}

// do issues one request. Protected calls fail fast without a credential,
// before any network traffic. Non-2xx responses and transport failures are
// normalised to domain.RequestError; a transport failure carries status 0.
func (g *Gateway) do(ctx context.Context, method, path string, payload any, authenticated bool) ([]byte, error) {
	var credential string
	if authenticated {
		credential = g.session.Current().Credential
		if credential == "" {
			return nil, domain.ErrUnauthenticated
		}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Token "+credential)
	}

	logger.Debug("%s %s", method, path)
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &domain.RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RequestError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = resp.Status
		}
		return nil, &domain.RequestError{Status: resp.StatusCode, Message: message}
	}

	return body, nil
}
