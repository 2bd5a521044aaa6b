package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	apperrors "projects-manager-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGitHubService points the client at a local mock API server.
// go-github prefixes enterprise URLs with /api/v3, so handlers match on
// path suffixes.
func newTestGitHubService(server *httptest.Server) *GitHubService {
	s := NewGitHubService(5, 2)
	s.baseURL = server.URL
	return s
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{"unauthorized is permanent", http.StatusUnauthorized, false},
		{"forbidden is permanent", http.StatusForbidden, false},
		{"not found is permanent", http.StatusNotFound, false},
		{"gone is permanent", http.StatusGone, false},
		{"server error is transient", http.StatusInternalServerError, true},
		{"bad gateway is transient", http.StatusBadGateway, true},
		{"unprocessable is permanent", http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &github.Response{Response: &http.Response{StatusCode: tt.status}}

			classified := classify(resp, errors.New("boom"))
			var extErr *apperrors.ExternalServiceError
			require.ErrorAs(t, classified, &extErr)
			assert.Equal(t, tt.status, extErr.Status)
			assert.Equal(t, tt.transient, extErr.Transient)
		})
	}
}

func TestClassify_NetworkFailureTransient(t *testing.T) {
	classified := classify(nil, errors.New("connection refused"))

	var extErr *apperrors.ExternalServiceError
	require.ErrorAs(t, classified, &extErr)
	assert.Equal(t, 0, extErr.Status)
	assert.True(t, extErr.Transient)
}

func TestTestConnection_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/user"))
		assert.Contains(t, r.Header.Get("Authorization"), "token-under-test")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"login": "octocat", "id": int64(1)})
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	err := s.TestConnection(context.Background(), "token-under-test")

	assert.NoError(t, err)
}

func TestTestConnection_BadCredentialNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	err := s.TestConnection(context.Background(), "bad-token")

	var extErr *apperrors.ExternalServiceError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, http.StatusUnauthorized, extErr.Status)
	assert.False(t, extErr.Transient)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "permanent failures must not retry")
}

func TestTestConnection_TransientFailureRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"login": "octocat"})
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	err := s.TestConnection(context.Background(), "token-under-test")

	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestEnsureLabel_ExistingLabelReused(t *testing.T) {
	var created int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/labels/"):
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{"name": "work", "color": "0f6fff"})
		case r.Method == http.MethodPost:
			atomic.AddInt32(&created, 1)
			w.WriteHeader(http.StatusCreated)
		}
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	err := s.EnsureLabel(context.Background(), "tok", "acme", "widgets", "work")

	assert.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&created), "existing label must never be recreated")
}

func TestEnsureLabel_CreatesMissingLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/labels/"):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/labels"):
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "work", payload["name"])
			assert.Equal(t, "0f6fff", payload["color"])
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"name": "work"})
		}
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	err := s.EnsureLabel(context.Background(), "tok", "acme", "widgets", "work")

	assert.NoError(t, err)
}

func TestEnsureLabel_ConcurrentCreateIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
		case http.MethodPost:
			// Another collaborator won the create race.
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "Validation Failed"})
		}
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	err := s.EnsureLabel(context.Background(), "tok", "acme", "widgets", "work")

	assert.NoError(t, err)
}

func TestCreateIssue_MapsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/repos/acme/widgets/issues"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ship login page", payload["title"])
		assert.Contains(t, payload["labels"], "work")

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       int64(9001),
			"number":   42,
			"html_url": "https://github.example.com/acme/widgets/issues/42",
			"state":    "open",
		})
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	result, err := s.CreateIssue(context.Background(), "tok", "acme", "widgets", IssueRequest{
		Title:  "Ship login page",
		Body:   "Due: 2026-09-01",
		Labels: []string{"work"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9001), result.ID)
	assert.Equal(t, 42, result.Number)
	assert.Equal(t, "open", result.State)
}

func TestCloseIssue_PatchesState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/repos/acme/widgets/issues/42"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "closed", payload["state"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     int64(9001),
			"number": 42,
			"state":  "closed",
		})
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	result, err := s.CloseIssue(context.Background(), "tok", "acme", "widgets", 42)

	require.NoError(t, err)
	assert.Equal(t, "closed", result.State)
}

func TestListMilestones_AllStates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/repos/acme/widgets/milestones"))
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"number": 1, "title": "v1.0", "state": "open"},
			{"number": 2, "title": "v0.9", "state": "closed"},
		})
	}))
	defer server.Close()

	s := newTestGitHubService(server)
	milestones, err := s.ListMilestones(context.Background(), "tok", "acme", "widgets")

	require.NoError(t, err)
	require.Len(t, milestones, 2)
	assert.Equal(t, "v1.0", milestones[0].Title)
	assert.Equal(t, "closed", milestones[1].State)
}
