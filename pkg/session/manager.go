package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/redlegion/sessionkit/pkg/cookie"
	"github.com/redlegion/sessionkit/pkg/fingerprint"
)

// FingerprintFunc derives a device fingerprint from request metadata.
type FingerprintFunc func(meta Metadata) string

// Manager owns the session lifecycle: issuing, validating, refreshing,
// invalidating and sweeping expired grants. Construct one instance at
// process start and pass it into request handlers; Start/Stop bracket
// the background sweeper.
type Manager struct {
	config          Config
	store           Store
	transport       Transport
	cookieManager   *cookie.Manager
	cookieOptions   []cookie.Option
	log             *slog.Logger
	now             func() time.Time
	fingerprintFunc FingerprintFunc
	evictionPolicy  EvictionPolicy

	mu      sync.Mutex
	started bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// New creates a session manager. The configuration is validated here,
// once; a Manager never mutates it afterwards.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		config:         DefaultConfig(),
		now:            time.Now,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		evictionPolicy: EvictOldestCreated,
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.config.Validate(); err != nil {
		return nil, err
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.MaxConcurrentSessions, m.evictionPolicy)
	}

	if m.transport == nil {
		if m.cookieManager != nil {
			m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.config.SecureCookies, m.cookieOptions...)
		} else {
			m.transport = NewHeaderTransport("X-Session-Token")
		}
	}

	if m.fingerprintFunc == nil && m.config.EnableFingerprinting {
		m.fingerprintFunc = func(meta Metadata) string {
			return fingerprint.FromComponents(meta.IPAddress, meta.UserAgent, meta.AcceptLanguage, meta.AcceptEncoding)
		}
	}

	return m, nil
}

// Create issues a new session for an identity the upstream OAuth
// exchange has already verified. Admission control runs first: when the
// user is at the concurrency limit, their oldest session is evicted
// before the new one is admitted.
func (m *Manager) Create(ctx context.Context, identity Identity, meta Metadata) (string, *Session, error) {
	if identity.UserID == "" {
		return "", nil, ErrInvalidIdentity
	}

	// The sweeper may not have been started by the process's startup
	// hooks; starting here is a no-op when it already runs.
	m.Start()

	token, err := generateToken(m.config.TokenLength)
	if err != nil {
		return "", nil, err
	}

	now := m.now()

	var fp string
	if m.config.EnableFingerprinting && m.fingerprintFunc != nil {
		fp = m.fingerprintFunc(meta)
	}

	sess := &Session{
		ID:           uuid.New(),
		Token:        token,
		UserID:       identity.UserID,
		Username:     identity.Username,
		AccessToken:  identity.AccessToken,
		Roles:        append([]string(nil), identity.Roles...),
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.config.SessionTimeout),
		LastActivity: now,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Fingerprint:  fp,
		IsActive:     true,
		MaxRefreshes: m.config.MaxRefreshes,
	}

	evicted, err := m.store.Create(ctx, sess)
	if err != nil {
		return "", nil, err
	}

	if evicted != nil {
		m.log.InfoContext(ctx, "evicted oldest session over concurrency limit",
			slog.String("user_id", identity.UserID),
			slog.String("session_id", evicted.ID.String()),
		)
	}

	m.log.InfoContext(ctx, "session created",
		slog.String("user_id", identity.UserID),
		slog.String("username", identity.Username),
		slog.String("session_id", sess.ID.String()),
		slog.String("ip", meta.IPAddress),
	)

	return token, sess, nil
}

// Validate is the authorization gate for every protected request. On
// success it updates the session's last activity and returns the record;
// it never extends the expiry, only Refresh does.
func (m *Manager) Validate(ctx context.Context, token string, meta Metadata) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	now := m.now()

	sess, err := m.store.Get(ctx, token, now)
	if err != nil {
		return nil, err
	}

	if err := m.securityCheck(ctx, sess, meta); err != nil {
		return nil, err
	}

	if err := m.store.Touch(ctx, token, now); err != nil {
		return nil, err
	}
	sess.LastActivity = now

	return sess, nil
}

// securityCheck compares the request's binding metadata with what the
// session was created from. A divergence is a hard failure signaling
// possible token theft, never silently tolerated.
func (m *Manager) securityCheck(ctx context.Context, sess *Session, meta Metadata) error {
	if m.config.RequireSameIP && sess.IPAddress != meta.IPAddress {
		m.log.WarnContext(ctx, "session ip mismatch",
			slog.String("user_id", sess.UserID),
			slog.String("bound_ip", sess.IPAddress),
			slog.String("request_ip", meta.IPAddress),
		)
		return ErrSecurityMismatch
	}

	if m.config.RequireSameUserAgent && sess.UserAgent != meta.UserAgent {
		m.log.WarnContext(ctx, "session user agent mismatch",
			slog.String("user_id", sess.UserID),
		)
		return ErrSecurityMismatch
	}

	if m.config.EnableFingerprinting && sess.Fingerprint != "" && m.fingerprintFunc != nil {
		if m.fingerprintFunc(meta) != sess.Fingerprint {
			m.log.WarnContext(ctx, "session fingerprint mismatch",
				slog.String("user_id", sess.UserID),
			)
			return ErrSecurityMismatch
		}
	}

	return nil
}

// Refresh renews a session's expiry, bounded by the refresh limit. A
// session that exhausts its limit is retired permanently before the
// failure is reported, so the total renewable lifetime from creation is
// SessionTimeout × (MaxRefreshes + 1).
func (m *Manager) Refresh(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	sess, err := m.store.Refresh(ctx, token, m.config.SessionTimeout, m.now())
	if err != nil {
		return nil, err
	}

	m.log.InfoContext(ctx, "session refreshed",
		slog.String("user_id", sess.UserID),
		slog.String("session_id", sess.ID.String()),
		slog.Int("refresh_count", sess.RefreshCount),
	)

	return sess, nil
}

// Invalidate terminates a session. A missing token is a silent no-op,
// not an error.
func (m *Manager) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// InvalidateAllForUser terminates every session for a user, e.g. on a
// role revocation or a compromised account. Returns the number removed.
func (m *Manager) InvalidateAllForUser(ctx context.Context, userID string) (int, error) {
	n, err := m.store.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		m.log.InfoContext(ctx, "invalidated all sessions for user",
			slog.String("user_id", userID),
			slog.Int("count", n),
		)
	}

	return n, nil
}

// Cleanup runs one sweep, reclaiming expired and inactive records. It is
// an optimization, not a security boundary: Validate and Refresh enforce
// expiry synchronously whether or not the sweeper ever runs.
func (m *Manager) Cleanup(ctx context.Context) (int, error) {
	n, err := m.store.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, err
	}

	if n > 0 {
		m.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int("count", n))
	}

	return n, nil
}

// Stats returns a read-only aggregate snapshot for observability.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	return m.store.Stats(ctx, m.now())
}

// Start launches the periodic cleanup sweeper. Calling it when the
// sweeper already runs, or when the cleanup interval is zero, is a
// no-op. Invoke it from the process's startup hooks; Create also calls
// it lazily as a safety net.
func (m *Manager) Start() {
	if m.config.CleanupInterval <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return
	}
	m.started = true
	m.stop = make(chan struct{})

	m.wg.Add(1)
	go m.sweepLoop(m.stop)
}

// Stop cancels the sweeper and waits for an in-flight sweep to finish.
// No background work survives it. The manager remains usable; Start may
// be called again.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	close(m.stop)
	m.mu.Unlock()

	m.wg.Wait()
}

// sweepLoop wakes every CleanupInterval and reclaims stale records. A
// failed sweep is logged and swallowed; the loop keeps running on the
// next interval regardless.
func (m *Manager) sweepLoop(stop <-chan struct{}) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := m.Cleanup(context.Background()); err != nil {
				m.log.Error("session cleanup sweep failed", slog.Any("error", err))
			}
		case <-stop:
			return
		}
	}
}
