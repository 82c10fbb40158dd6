package session

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps session records in process memory: a primary
// token-to-record map plus a per-user token index. The two structures are
// only ever updated together under one mutex, so they cannot diverge. A
// process restart clears all sessions, which is documented behavior.
type MemoryStore struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	byUser     map[string][]string // user_id -> tokens in insertion order
	maxPerUser int
	policy     EvictionPolicy
}

// NewMemoryStore creates an in-memory store enforcing maxPerUser
// concurrent sessions per user (0 disables the limit).
func NewMemoryStore(maxPerUser int, policy EvictionPolicy) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*Session),
		byUser:     make(map[string][]string),
		maxPerUser: maxPerUser,
		policy:     policy,
	}
}

// Create inserts a record after enforcing the per-user limit. The limit
// check, possible eviction and insert happen under one lock so two
// concurrent creates for the same user cannot jointly exceed the limit.
func (m *MemoryStore) Create(ctx context.Context, session *Session) (*Session, error) {
	if session == nil || session.Token == "" || session.UserID == "" {
		return nil, ErrInvalidRecord
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.Token]; exists {
		return nil, ErrDuplicateToken
	}

	var evicted *Session
	if m.maxPerUser > 0 {
		if victim := m.pickEvictionVictim(session.UserID, session.CreatedAt); victim != "" {
			evicted = m.sessions[victim].clone()
			m.removeLocked(victim)
		}
	}

	stored := session.clone()
	m.sessions[stored.Token] = stored
	m.byUser[stored.UserID] = append(m.byUser[stored.UserID], stored.Token)

	return evicted, nil
}

// pickEvictionVictim returns the token to evict for the user, or "" when
// the user is under the limit. Iterating the index in insertion order
// with a strict comparison makes ties deterministic: the first-inserted
// session wins the eviction.
func (m *MemoryStore) pickEvictionVictim(userID string, now time.Time) string {
	var active []string
	for _, token := range m.byUser[userID] {
		s, ok := m.sessions[token]
		if ok && s.IsActive && !s.IsExpiredAt(now) {
			active = append(active, token)
		}
	}

	if len(active) < m.maxPerUser {
		return ""
	}

	victim := active[0]
	for _, token := range active[1:] {
		if m.evictsBefore(m.sessions[token], m.sessions[victim]) {
			victim = token
		}
	}
	return victim
}

func (m *MemoryStore) evictsBefore(a, b *Session) bool {
	if m.policy == EvictLeastRecentlyActive {
		return a.LastActivity.Before(b.LastActivity)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// Get returns a copy of the record. Inactive records are reported before
// expiry is considered; an expired record is removed on the spot so a
// retry can never resurrect it.
func (m *MemoryStore) Get(ctx context.Context, token string, now time.Time) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrInvalidToken
	}

	if !s.IsActive {
		return nil, ErrSessionInactive
	}

	if s.IsExpiredAt(now) {
		m.removeLocked(token)
		return nil, ErrSessionExpired
	}

	return s.clone(), nil
}

// Touch updates only the last-activity timestamp.
func (m *MemoryStore) Touch(ctx context.Context, token string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return ErrInvalidToken
	}

	s.LastActivity = at
	return nil
}

// Refresh performs the bounded renewal as one atomic step: limit check,
// expiry check and the expiry/count/activity update all happen under the
// lock, so no caller can observe a stale expiry after a refresh commits.
func (m *MemoryStore) Refresh(ctx context.Context, token string, ttl time.Duration, now time.Time) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrInvalidToken
	}

	if s.RefreshCount >= s.MaxRefreshes {
		// Retire the session permanently instead of leaving it
		// refreshable-but-blocked.
		m.removeLocked(token)
		return nil, ErrRefreshLimitExceeded
	}

	if s.IsExpiredAt(now) {
		m.removeLocked(token)
		return nil, ErrSessionExpired
	}

	s.ExpiresAt = now.Add(ttl)
	s.RefreshCount++
	s.LastActivity = now

	return s.clone(), nil
}

// Delete removes a record. Missing tokens are a silent no-op, making
// invalidation idempotent.
func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(token)
	return nil
}

// DeleteAllForUser removes every record for the user. The token list is
// snapshotted before iterating because removeLocked mutates it.
func (m *MemoryStore) DeleteAllForUser(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tokens := slices.Clone(m.byUser[userID])
	for _, token := range tokens {
		m.removeLocked(token)
	}

	return len(tokens), nil
}

// DeleteExpired sweeps out records that are expired or inactive.
func (m *MemoryStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stale []string
	for token, s := range m.sessions {
		if s.IsExpiredAt(now) || !s.IsActive {
			stale = append(stale, token)
		}
	}

	for _, token := range stale {
		m.removeLocked(token)
	}

	return len(stale), nil
}

// TokensForUser returns a snapshot of the user's token list.
func (m *MemoryStore) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.byUser[userID]), nil
}

// Stats counts without mutating. Records past expiry but not yet swept
// count as expired.
func (m *MemoryStore) Stats(ctx context.Context, now time.Time) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{
		TotalSessions: len(m.sessions),
		UniqueUsers:   len(m.byUser),
	}
	for _, s := range m.sessions {
		if s.IsActive && !s.IsExpiredAt(now) {
			stats.ActiveSessions++
		} else {
			stats.ExpiredSessions++
		}
	}

	return stats, nil
}

// removeLocked deletes a record from the primary map and the per-user
// index as one step; callers must hold the mutex. The record is marked
// inactive first, a transient flag with no meaning once removal
// completes. An emptied user entry is pruned so churn cannot accumulate
// empty lists.
func (m *MemoryStore) removeLocked(token string) {
	s, ok := m.sessions[token]
	if !ok {
		return
	}

	s.IsActive = false
	delete(m.sessions, token)

	tokens := m.byUser[s.UserID]
	tokens = slices.DeleteFunc(tokens, func(t string) bool { return t == token })
	if len(tokens) == 0 {
		delete(m.byUser, s.UserID)
	} else {
		m.byUser[s.UserID] = tokens
	}
}
