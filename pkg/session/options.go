package session

import (
	"log/slog"
	"time"

	"github.com/redlegion/sessionkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets the full session policy.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithStore sets a custom session store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport sets how session tokens travel between client and server.
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithCookieManager wires the signed-cookie transport; the cookie name
// and Secure flag come from the configuration. Ignored when an explicit
// transport is also set.
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieManager = cookieMgr
		m.cookieOptions = opts
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides the time source, letting tests drive expiry
// deterministically instead of sleeping.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithFingerprintFunc replaces the default metadata fingerprint.
func WithFingerprintFunc(fn FingerprintFunc) Option {
	return func(m *Manager) {
		m.fingerprintFunc = fn
	}
}

// WithEvictionPolicy selects which session the concurrency limiter
// evicts; the default is oldest-created.
func WithEvictionPolicy(policy EvictionPolicy) Option {
	return func(m *Manager) {
		m.evictionPolicy = policy
	}
}

// WithSessionTimeout overrides the session lifetime.
func WithSessionTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.config.SessionTimeout = d
	}
}

// WithMaxConcurrentSessions overrides the per-user session cap.
func WithMaxConcurrentSessions(n int) Option {
	return func(m *Manager) {
		m.config.MaxConcurrentSessions = n
	}
}

// WithMaxRefreshes overrides the per-session refresh cap.
func WithMaxRefreshes(n int) Option {
	return func(m *Manager) {
		m.config.MaxRefreshes = n
	}
}

// WithCleanupInterval overrides the sweep period (0 disables the sweeper).
func WithCleanupInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.config.CleanupInterval = d
	}
}
