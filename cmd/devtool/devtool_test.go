package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/alion/internal/auth"
)

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&TokenCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&HealthCheckCommand{})

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"health-check", "migrate", "token"}, names)

	_, ok := r.Get("deploy")
	assert.False(t, ok)
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("DB_USER", "alion")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "game")

	got := databaseURL()
	assert.Equal(t, "postgres://alion:p%40ss@db:5433/game?sslmode=disable", got)
	assert.Equal(t, "postgres://alion:xxxxx@db:5433/game?sslmode=disable", redactPassword(got))
}

func TestTokenCommand_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, (&TokenCommand{}).Run([]string{"caesar"}))
}

func TestTokenCommand_RejectsBadUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	assert.Error(t, (&TokenCommand{}).Run([]string{"caesar", "not-a-uuid"}))
}

func TestMintToken_VerifiesWithSameSecret(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	token, id, ttl, err := mintToken(secret, []string{"caesar", "9b2e7c1a-3d4f-4a5b-8c6d-7e8f9a0b1c2d", "1h"})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	v, err := auth.NewVerifier(secret)
	require.NoError(t, err)
	got, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, got.UserID)
	assert.Equal(t, "caesar", got.Username)
}

func TestHealthCheckCommand(t *testing.T) {
	var ready atomic.Bool
	ready.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" && !ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, (&HealthCheckCommand{}).Run([]string{srv.URL}))

	ready.Store(false)
	assert.Error(t, (&HealthCheckCommand{}).Run([]string{srv.URL + "/"}))
}
