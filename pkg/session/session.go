package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/redlegion/sessionkit/pkg/clientip"
	"github.com/redlegion/sessionkit/pkg/roles"
)

// Session represents one authenticated grant tied to a single token.
// Tokens and upstream credentials never serialize; the rest is safe for
// dashboards.
type Session struct {
	ID           uuid.UUID `json:"id"`
	Token        string    `json:"-"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	LastActivity time.Time `json:"last_activity"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	Fingerprint  string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	RefreshCount int       `json:"refresh_count"`
	MaxRefreshes int       `json:"max_refreshes"`
}

// IsExpiredAt reports whether the session is past its expiry at the
// given instant.
func (s *Session) IsExpiredAt(now time.Time) bool {
	return s != nil && now.After(s.ExpiresAt)
}

// IsExpired reports whether the session is past its expiry now.
func (s *Session) IsExpired() bool {
	return s.IsExpiredAt(time.Now())
}

// HasRole reports whether the session's capability set contains the role.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	return roles.Has(s.Roles, role)
}

// HasAnyRole reports whether the session holds at least one of the given
// roles. An empty argument list is satisfied by definition.
func (s *Session) HasAnyRole(required ...string) bool {
	if s == nil {
		return false
	}
	return roles.HasAny(s.Roles, required)
}

// clone returns a copy safe to hand to callers without aliasing the
// store's record.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.Roles != nil {
		c.Roles = make([]string, len(s.Roles))
		copy(c.Roles, s.Roles)
	}
	return &c
}

// Identity is what the upstream OAuth exchange hands over once the
// external verification succeeds. The access token is stored opaquely and
// never interpreted here.
type Identity struct {
	UserID      string
	Username    string
	AccessToken string
	Roles       []string
}

// Metadata captures the request attributes a session is bound to at
// creation and checked against on later validation.
type Metadata struct {
	IPAddress      string
	UserAgent      string
	AcceptLanguage string
	AcceptEncoding string
}

// MetadataFrom extracts binding metadata from an incoming request.
func MetadataFrom(r *http.Request) Metadata {
	return Metadata{
		IPAddress:      clientip.Resolve(r),
		UserAgent:      r.UserAgent(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		AcceptEncoding: r.Header.Get("Accept-Encoding"),
	}
}
