package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redlegion/sessionkit/pkg/session"
)

func TestSession_IsExpiredAt(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &session.Session{ExpiresAt: expiry}

	assert.False(t, s.IsExpiredAt(expiry.Add(-time.Second)))
	// Exactly at expiry the session still holds
	assert.False(t, s.IsExpiredAt(expiry))
	assert.True(t, s.IsExpiredAt(expiry.Add(time.Second)))

	var nilSession *session.Session
	assert.False(t, nilSession.IsExpiredAt(expiry))
}

func TestSession_Roles(t *testing.T) {
	t.Parallel()

	s := &session.Session{Roles: []string{"Miner", "Pilot"}}

	assert.True(t, s.HasRole("Miner"))
	assert.False(t, s.HasRole("Payroll"))
	// Matching is exact, not case-insensitive
	assert.False(t, s.HasRole("miner"))

	assert.True(t, s.HasAnyRole("Payroll", "Pilot"))
	assert.False(t, s.HasAnyRole("Payroll", "Admin"))
	// An empty requirement list is satisfied by definition
	assert.True(t, s.HasAnyRole())

	var nilSession *session.Session
	assert.False(t, nilSession.HasRole("Miner"))
	assert.False(t, nilSession.HasAnyRole())
}

func TestSession_JSONRedactsSecrets(t *testing.T) {
	t.Parallel()

	s := session.Session{
		ID:          uuid.New(),
		Token:       "secret-session-token",
		UserID:      "u1",
		AccessToken: "secret-upstream-token",
		Fingerprint: "aabbccdd",
		Roles:       []string{"Miner"},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret-session-token")
	assert.NotContains(t, string(data), "secret-upstream-token")
	assert.NotContains(t, string(data), "aabbccdd")
	assert.Contains(t, string(data), "u1")
}

func TestMetadataFrom(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:9999"
	r.Header.Set("User-Agent", "TestBrowser/1.0")
	r.Header.Set("Accept-Language", "en-US")
	r.Header.Set("Accept-Encoding", "gzip")

	meta := session.MetadataFrom(r)
	assert.Equal(t, "203.0.113.7", meta.IPAddress)
	assert.Equal(t, "TestBrowser/1.0", meta.UserAgent)
	assert.Equal(t, "en-US", meta.AcceptLanguage)
	assert.Equal(t, "gzip", meta.AcceptEncoding)

	t.Run("honors forwarding headers", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")

		meta := session.MetadataFrom(r)
		assert.Equal(t, "198.51.100.4", meta.IPAddress)
	})
}
