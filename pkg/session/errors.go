package session

import "errors"

var (
	// ErrInvalidToken indicates the token is unknown to the store. The
	// message never reveals whether such a token once existed.
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrSessionExpired indicates the session passed its expiry; the
	// caller should re-authenticate.
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionInactive indicates the session was explicitly
	// invalidated, e.g. by logout.
	ErrSessionInactive = errors.New("session.inactive")

	// ErrSecurityMismatch indicates the request's IP, user agent or
	// fingerprint diverged from the session's binding metadata.
	ErrSecurityMismatch = errors.New("session.security_mismatch")

	// ErrRefreshLimitExceeded indicates the session's renewable lifetime
	// is exhausted; the session is retired and the user must
	// re-authenticate.
	ErrRefreshLimitExceeded = errors.New("session.refresh_limit_exceeded")

	// ErrInvalidIdentity indicates Create was called without a user ID.
	ErrInvalidIdentity = errors.New("session.invalid_identity")

	// ErrInvalidRecord indicates a malformed session was handed to a store.
	ErrInvalidRecord = errors.New("session.invalid_record")

	// ErrDuplicateToken indicates a token collision on insert.
	ErrDuplicateToken = errors.New("session.duplicate_token")

	// ErrTokenGeneration indicates the system entropy source failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("session.invalid_config")
)
