package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds.Username)

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1", "username": "alice"})
	})

	s, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", s.Token)
	assert.Equal(t, "alice", s.Username)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestClient_ListTasks_SendsBearerAndStatus(t *testing.T) {
	t.Parallel()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.Equal(t, "completed", r.URL.Query().Get("status"))

		_ = json.NewEncoder(w).Encode([]Task{{ID: "t1", Title: "done", Status: "completed"}})
	})

	list, err := c.ListTasks(context.Background(), &Session{Token: "tok-1"}, "completed")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "done", list[0].Title)
}

func TestClient_ListTasks_Unauthenticated(t *testing.T) {
	t.Parallel()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthenticated"})
	})

	_, err := c.ListTasks(context.Background(), &Session{Token: "stale"}, "")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClient_UpdateTask_NullMeansMissing(t *testing.T) {
	t.Parallel()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		_, _ = w.Write([]byte("null"))
	})

	title := "x"
	task, err := c.UpdateTask(context.Background(), &Session{Token: "tok"}, "no-such-id", Patch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, task, "a null answer means the task was not found")
}

func TestClient_Unavailable(t *testing.T) {
	t.Parallel()

	// a closed server is as unreachable as it gets
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	err := c.Register(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ValidationDetailSurfaces(t *testing.T) {
	t.Parallel()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":  "validation error",
			"fields": map[string]string{"title": "required"},
		})
	})

	_, err := c.CreateTask(context.Background(), &Session{Token: "tok"}, Draft{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
	assert.Contains(t, err.Error(), "title: required")
}
