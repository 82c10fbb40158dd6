package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redlegion/sessionkit/pkg/cookie"
	"github.com/redlegion/sessionkit/pkg/session"
)

func newCookieManager(t *testing.T) *cookie.Manager {
	t.Helper()
	mgr, err := cookie.New([]string{testCookieSecret})
	require.NoError(t, err)
	return mgr
}

// newBrowserRequest builds a request with the metadata a real browser
// would carry, stable across calls so fingerprints match.
func newBrowserRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("User-Agent", "TestBrowser/1.0")
	r.Header.Set("Accept-Language", "en-US")
	r.Header.Set("Accept-Encoding", "gzip")
	return r
}

func TestManager_IssueResolveRevoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clock := newFakeClock(managerEpoch)
	m := newTestManager(t, clock)

	// Issue after the (out-of-band) OAuth exchange
	rec := httptest.NewRecorder()
	sess, err := m.Issue(ctx, rec, newBrowserRequest(t, "/auth/callback"), testIdentity("u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)

	headerValue := rec.Header().Get("X-Session-Token")
	require.NotEmpty(t, headerValue)

	// Resolve on a later request carrying the issued token
	r := newBrowserRequest(t, "/payroll")
	r.Header.Set("X-Session-Token", headerValue)

	got, err := m.Resolve(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	// Revoke terminates the session and clears the response token
	revokeRec := httptest.NewRecorder()
	require.NoError(t, m.Revoke(ctx, revokeRec, r))

	_, err = m.Resolve(ctx, r)
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	// Revoking again, or with no token at all, stays a no-op
	require.NoError(t, m.Revoke(ctx, httptest.NewRecorder(), r))
	require.NoError(t, m.Revoke(ctx, httptest.NewRecorder(), newBrowserRequest(t, "/logout")))
}

func TestManager_ResolveWithoutToken(t *testing.T) {
	t.Parallel()
	clock := newFakeClock(managerEpoch)
	m := newTestManager(t, clock)

	_, err := m.Resolve(context.Background(), newBrowserRequest(t, "/payroll"))
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestManager_IssueRejectsBadIdentity(t *testing.T) {
	t.Parallel()
	clock := newFakeClock(managerEpoch)
	m := newTestManager(t, clock)

	_, err := m.Issue(context.Background(), httptest.NewRecorder(), newBrowserRequest(t, "/auth/callback"), session.Identity{})
	assert.ErrorIs(t, err, session.ErrInvalidIdentity)
}

func TestManager_Middleware(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	issue := func(t *testing.T, m *session.Manager) string {
		t.Helper()
		rec := httptest.NewRecorder()
		_, err := m.Issue(ctx, rec, newBrowserRequest(t, "/auth/callback"), testIdentity("u1"))
		require.NoError(t, err)
		return rec.Header().Get("X-Session-Token")
	}

	t.Run("attaches session when valid", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock(managerEpoch)
		m := newTestManager(t, clock)
		headerValue := issue(t, m)

		var seen *session.Session
		handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = session.FromContext(r.Context())
		}))

		r := newBrowserRequest(t, "/payroll")
		r.Header.Set("X-Session-Token", headerValue)
		handler.ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, seen)
		assert.Equal(t, "u1", seen.UserID)
	})

	t.Run("passes through without a session", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock(managerEpoch)
		m := newTestManager(t, clock)

		called := false
		handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, ok := session.FromContext(r.Context())
			assert.False(t, ok)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newBrowserRequest(t, "/public"))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("require session rejects anonymous requests", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock(managerEpoch)
		m := newTestManager(t, clock)

		handler := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newBrowserRequest(t, "/payroll"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("require session rejects expired sessions", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock(managerEpoch)
		m := newTestManager(t, clock, session.WithSessionTimeout(time.Hour))
		headerValue := issue(t, m)

		clock.Advance(2 * time.Hour)

		handler := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		}))

		r := newBrowserRequest(t, "/payroll")
		r.Header.Set("X-Session-Token", headerValue)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("require roles authorizes by capability", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock(managerEpoch)
		m := newTestManager(t, clock)
		headerValue := issue(t, m) // roles: Miner, Pilot

		ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		allowed := m.RequireSession(m.RequireRoles("Miner")(ok))
		denied := m.RequireSession(m.RequireRoles("Payroll")(ok))

		r := newBrowserRequest(t, "/payroll")
		r.Header.Set("X-Session-Token", headerValue)

		rec := httptest.NewRecorder()
		allowed.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		denied.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("require roles without a session is unauthorized", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock(managerEpoch)
		m := newTestManager(t, clock)

		handler := m.RequireRoles("Payroll")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newBrowserRequest(t, "/payroll"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestManager_IssueWithCookieTransport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clock := newFakeClock(managerEpoch)
	cookieMgr := newCookieManager(t)
	m := newTestManager(t, clock, session.WithCookieManager(cookieMgr))

	rec := httptest.NewRecorder()
	sess, err := m.Issue(ctx, rec, newBrowserRequest(t, "/auth/callback"), testIdentity("u1"))
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	// The raw token never appears in the cookie value
	assert.False(t, strings.Contains(cookies[0].Value, sess.Token))

	r := newBrowserRequest(t, "/payroll")
	r.AddCookie(cookies[0])

	got, err := m.Resolve(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	// Revoke clears the cookie
	revokeRec := httptest.NewRecorder()
	require.NoError(t, m.Revoke(ctx, revokeRec, r))
	cleared := revokeRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}
