package session

import (
	"context"
	"time"
)

// Stats is a read-only aggregate snapshot of a store, intended for
// dashboards. It is never consulted for authorization decisions.
type Stats struct {
	TotalSessions   int `json:"total_sessions"`
	ActiveSessions  int `json:"active_sessions"`
	ExpiredSessions int `json:"expired_sessions"`
	UniqueUsers     int `json:"unique_users"`
}

// Store is the source of truth for session records. Multi-step
// operations (admission control in Create, bounded renewal in Refresh)
// are single methods so implementations can make them atomic.
//
// Time-dependent methods take the current instant explicitly; stores
// never consult the wall clock themselves, which keeps expiry behavior
// deterministic under test.
type Store interface {
	// Create inserts a new record, enforcing the per-user concurrency
	// limit first. When the user is at the limit the evicted session is
	// returned alongside a nil error.
	Create(ctx context.Context, session *Session) (evicted *Session, err error)

	// Get returns the record for a token. An expired record is removed
	// and reported as ErrSessionExpired so it can never be returned
	// again, even on retry.
	Get(ctx context.Context, token string, now time.Time) (*Session, error)

	// Touch updates the record's last-activity timestamp.
	Touch(ctx context.Context, token string, at time.Time) error

	// Refresh extends the record's expiry by ttl and increments its
	// refresh count. A record at its refresh limit is removed and
	// reported as ErrRefreshLimitExceeded; an expired record is removed
	// and reported as ErrSessionExpired.
	Refresh(ctx context.Context, token string, ttl time.Duration, now time.Time) (*Session, error)

	// Delete removes a record. Unknown tokens are a silent no-op.
	Delete(ctx context.Context, token string) error

	// DeleteAllForUser removes every record for a user, returning the
	// number removed.
	DeleteAllForUser(ctx context.Context, userID string) (int, error)

	// DeleteExpired sweeps out records that are expired or inactive,
	// returning the number removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	// TokensForUser returns a snapshot of the user's token list.
	TokensForUser(ctx context.Context, userID string) ([]string, error)

	// Stats returns aggregate counts without mutating anything.
	Stats(ctx context.Context, now time.Time) (Stats, error)
}

// EvictionPolicy selects which session the admission control removes
// when a user is at the concurrency limit.
type EvictionPolicy int

const (
	// EvictOldestCreated removes the session with the smallest creation
	// time, ties broken by insertion order. This is the default.
	EvictOldestCreated EvictionPolicy = iota

	// EvictLeastRecentlyActive removes the session with the oldest
	// last-activity timestamp instead.
	EvictLeastRecentlyActive
)
