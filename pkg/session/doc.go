// Package session manages the lifecycle of authenticated session tokens
// for the payroll backend: issuing after the upstream Discord OAuth
// exchange succeeds, validating on every protected request, bounded
// refreshing, explicit and bulk invalidation, and periodic reclamation
// of expired entries.
//
// The package trusts its input: an Identity is only handed to Create
// after the external identity check has already passed, and the upstream
// access token is stored opaquely, never verified or interpreted here.
//
// # Architecture
//
// A Manager orchestrates the lifecycle against a Store, the single
// source of truth holding the token-to-record map and a per-user token
// index. The in-memory store guards both structures with one mutex;
// multi-step operations (the count-evict-insert sequence of admission
// control, the check-and-extend of a refresh) are single store calls so
// they stay atomic. Session state lives only in process memory — a
// restart clears all sessions by design, and cross-process sharing would
// require a different Store implementation.
//
// Expiry is enforced synchronously: Validate and Refresh remove an
// expired record on contact. The background sweeper started by
// Start/Stop only reclaims memory for records nobody touches anymore; it
// is an optimization, not a security boundary.
//
// # Usage
//
//	manager, err := session.New(
//	    session.WithLogger(log),
//	    session.WithCookieManager(cookieMgr),
//	)
//	if err != nil {
//	    return err
//	}
//	manager.Start()
//	defer manager.Stop()
//
//	// OAuth callback, after the code exchange:
//	sess, err := manager.Issue(ctx, w, r, session.Identity{
//	    UserID:      user.ID,
//	    Username:    user.Username,
//	    AccessToken: tok.AccessToken,
//	    Roles:       user.Roles,
//	})
//
//	// Protected routes:
//	mux.Handle("/payroll", manager.RequireSession(manager.RequireRoles("Payroll")(handler)))
//
// Call sites that carry extracted request metadata instead of an
// *http.Request use Validate directly:
//
//	sess, err := manager.Validate(ctx, token, meta)
//	switch {
//	case errors.Is(err, session.ErrSecurityMismatch):
//	    // possible token theft, force re-authentication
//	case err != nil:
//	    // re-authentication required
//	}
//
// # Error Handling
//
// Validation and refresh failures are sentinel errors the caller can
// branch on with errors.Is: ErrInvalidToken, ErrSessionExpired,
// ErrSessionInactive, ErrSecurityMismatch, ErrRefreshLimitExceeded. All
// of them mean the grant is gone; none of them reveal whether a token
// ever existed. The manager performs no internal retries — whether to
// re-authenticate is the caller's decision.
package session
