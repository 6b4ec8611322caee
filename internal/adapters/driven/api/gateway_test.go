package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// staticSession is a canned CredentialSource.
type staticSession struct {
	credential string
}

func (s *staticSession) Current() domain.Session {
	return domain.Session{Credential: s.credential, Initialized: true}
}

func newTestGateway(t *testing.T, credential string, handler http.HandlerFunc) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGateway(&staticSession{credential: credential}, Config{
		BaseURL:           server.URL,
		RequestsPerSecond: 1000, // keep tests fast
	})
}

func TestGateway_LoginExchangesCredentials(t *testing.T) {
	var gotAuth string
	gw := newTestGateway(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login/", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "drwho", req["username"])

		json.NewEncoder(w).Encode(map[string]string{"key": "tok-abc"})
	})

	token, err := gw.Login(context.Background(), "drwho", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	assert.Empty(t, gotAuth, "the login call itself carries no Authorization header")
}

func TestGateway_LoginRejectionIsLoginFailed(t *testing.T) {
	gw := newTestGateway(t, "", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"non_field_errors":["Unable to log in"]}`, http.StatusBadRequest)
	})

	_, err := gw.Login(context.Background(), "drwho", "wrong")
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
}

func TestGateway_LoginValidatesInput(t *testing.T) {
	gw := newTestGateway(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := gw.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = gw.Login(context.Background(), "drwho", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGateway_ProtectedCallFailsFastWithoutCredential(t *testing.T) {
	called := false
	gw := newTestGateway(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := gw.SearchPatients(context.Background(), "jo")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.False(t, called, "no network traffic without a credential")
}

func TestGateway_AttachesTokenHeader(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Token tok-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]domain.PatientSummary{{ID: 1, Name: "Amos Burton"}})
	})

	patients, err := gw.SearchPatients(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Amos Burton", patients[0].Name)
}

func TestGateway_SearchQueryIsEscaped(t *testing.T) {
	var gotQuery string
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		w.Write([]byte("[]"))
	})

	_, err := gw.SearchPatients(context.Background(), "name with spaces")
	require.NoError(t, err)
	assert.Equal(t, "name with spaces", gotQuery)
}

func TestGateway_NonOKBecomesRequestError(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server exploded", http.StatusInternalServerError)
	})

	_, err := gw.SearchPatients(context.Background(), "")
	require.Error(t, err)

	reqErr, ok := domain.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Contains(t, reqErr.Message, "server exploded")
}

func TestGateway_TransportFailureHasZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	gw := NewGateway(&staticSession{credential: "tok-abc"}, Config{
		BaseURL:           server.URL,
		RequestsPerSecond: 1000,
	})

	_, err := gw.SearchPatients(context.Background(), "")
	reqErr, ok := domain.IsRequestError(err)
	require.True(t, ok)
	assert.Zero(t, reqErr.Status)
}

func TestGateway_EmptyListBodiesAreValid(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		// 200 with no body at all.
	})

	patients, err := gw.SearchPatients(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, patients)

	records, err := gw.Records(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, records)

	posts, err := gw.Posts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGateway_ProfileEmptyBodyIsError(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {})

	_, err := gw.Profile(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestGateway_ProfileRoundTrip(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/userProfile/", r.URL.Path)
		json.NewEncoder(w).Encode(domain.UserProfile{ID: 42, Username: "drcrusher", UserType: domain.RoleDoctor})
	})

	profile, err := gw.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, profile.ID)
	assert.Equal(t, domain.RoleDoctor, profile.UserType)
}

func TestGateway_RecordsPassesPatientID(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/records/7", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.MedicalRecord{{Name: "mri.pdf"}})
	})

	records, err := gw.Records(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestGateway_ChatRoundTrip(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.EqualValues(t, 7, req["patient_id"])
		require.Equal(t, "how is the patient", req["prompt"])
		json.NewEncoder(w).Encode(map[string]string{"response": "**Stable.**"})
	})

	reply, err := gw.Chat(context.Background(), 7, "how is the patient")
	require.NoError(t, err)
	assert.Equal(t, "**Stable.**", reply, "the gateway returns raw markup untouched")
}

func TestGateway_ChatEmptyReplyIsError(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": ""})
	})

	_, err := gw.Chat(context.Background(), 7, "hello")
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestGateway_AddCommentPayload(t *testing.T) {
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/comment/", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.EqualValues(t, 3, req["id"])
		require.Equal(t, "useful", req["comment"])
	})

	assert.NoError(t, gw.AddComment(context.Background(), 3, "useful"))
}

func TestGateway_NeverRetries(t *testing.T) {
	calls := 0
	gw := newTestGateway(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "flaky", http.StatusBadGateway)
	})

	_, err := gw.SearchPatients(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
