package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 3*time.Second)
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","user":{"id":"u1","name":"Ada","email":"a@b.com"}}`))
	})

	res, err := c.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "t1", res.Token)
	require.Equal(t, "u1", res.User.ID)
	require.Equal(t, "a@b.com", gotBody["email"])
	require.Equal(t, "secret1", gotBody["password"])
}

func TestLogin_RemoteErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"wrong password"}`))
	})

	_, err := c.Login(context.Background(), "a@b.com", "nope")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnauthorized)

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusUnauthorized, re.Status)
	assert.Equal(t, "wrong password", re.Message)
	assert.Equal(t, "wrong password", Message(err))
}

func TestLogin_RemoteErrorWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
	assert.Empty(t, Message(err))
}

func TestRegister_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user":{"id":"u2","name":"Ada","email":"ada@example.com"}}`))
	})

	u, err := c.Register(context.Background(), "Ada", "ada@example.com", "abc123")
	require.NoError(t, err)
	require.Equal(t, "u2", u.ID)
}

func TestDeleteAccount_SendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	c.SetToken("t1")

	require.NoError(t, c.DeleteAccount(context.Background(), "u1"))
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.Equal(t, "/api/users/u1", gotPath)
}

func TestDeleteAccount_FailureMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"quota exceeded"}`))
	})

	err := c.DeleteAccount(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, "quota exceeded", Message(err))
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	require.NoError(t, c.Ping(context.Background()))
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, time.Second)
	err := c.Ping(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnavailable))
}
