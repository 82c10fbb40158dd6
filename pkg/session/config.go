package session

import (
	"fmt"
	"time"

	"github.com/redlegion/sessionkit/pkg/config"
)

// Config is the immutable session security policy. It is validated once
// at construction and never mutated afterwards.
type Config struct {
	// SessionTimeout is how long a session lives without a refresh.
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"24h"`

	// MaxConcurrentSessions bounds simultaneous sessions per user; the
	// oldest is evicted when a create would exceed it.
	MaxConcurrentSessions int `env:"SESSION_MAX_CONCURRENT" envDefault:"3"`

	// MaxRefreshes caps renewals per session, bounding total renewable
	// lifetime to SessionTimeout × (MaxRefreshes + 1).
	MaxRefreshes int `env:"SESSION_MAX_REFRESHES" envDefault:"5"`

	// RequireSameIP rejects validation from an IP other than the one the
	// session was created from.
	RequireSameIP bool `env:"SESSION_REQUIRE_SAME_IP" envDefault:"false"`

	// RequireSameUserAgent rejects validation from a different user agent.
	RequireSameUserAgent bool `env:"SESSION_REQUIRE_SAME_USER_AGENT" envDefault:"false"`

	// CleanupInterval is the period of the background sweep reclaiming
	// expired entries (0 disables the sweeper; expiry is still enforced
	// synchronously on every validate and refresh).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"30m"`

	// TokenLength is the entropy of a session token in bytes.
	TokenLength int `env:"SESSION_TOKEN_LENGTH" envDefault:"64"`

	// EnableFingerprinting binds sessions to a request fingerprint and
	// checks it on validation.
	EnableFingerprinting bool `env:"SESSION_FINGERPRINTING" envDefault:"true"`

	// CookieName is the session cookie name for the cookie transport.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// SecureCookies enables the Secure flag on session cookies.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns the default session policy.
func DefaultConfig() Config {
	return Config{
		SessionTimeout:        24 * time.Hour,
		MaxConcurrentSessions: 3,
		MaxRefreshes:          5,
		RequireSameIP:         false,
		RequireSameUserAgent:  false,
		CleanupInterval:       30 * time.Minute,
		TokenLength:           64,
		EnableFingerprinting:  true,
		CookieName:            "sid",
		SecureCookies:         false,
	}
}

// Validate checks the policy once at construction time.
func (c Config) Validate() error {
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("%w: session timeout must be positive, got %s", ErrInvalidConfig, c.SessionTimeout)
	}
	if c.MaxConcurrentSessions < 1 {
		return fmt.Errorf("%w: max concurrent sessions must be at least 1, got %d", ErrInvalidConfig, c.MaxConcurrentSessions)
	}
	if c.MaxRefreshes < 0 {
		return fmt.Errorf("%w: max refreshes must not be negative, got %d", ErrInvalidConfig, c.MaxRefreshes)
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("%w: cleanup interval must not be negative, got %s", ErrInvalidConfig, c.CleanupInterval)
	}
	if c.TokenLength < 16 {
		return fmt.Errorf("%w: token length must be at least 16 bytes, got %d", ErrInvalidConfig, c.TokenLength)
	}
	if c.CookieName == "" {
		return fmt.Errorf("%w: cookie name must not be empty", ErrInvalidConfig)
	}
	return nil
}

// NewFromEnv builds a manager with the policy loaded from environment
// variables (and a local .env file in development).
func NewFromEnv(opts ...Option) (*Manager, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
