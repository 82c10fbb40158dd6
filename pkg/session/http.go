package session

import (
	"context"
	"net/http"
)

// Issue creates a session for a verified identity using the request's
// binding metadata and delivers the token through the transport. Call it
// from the OAuth callback handler once the upstream exchange succeeds.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, r *http.Request, identity Identity) (*Session, error) {
	token, sess, err := m.Create(ctx, identity, MetadataFrom(r))
	if err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, token, m.config.SessionTimeout); err != nil {
		_ = m.store.Delete(ctx, token)
		return nil, err
	}

	return sess, nil
}

// Resolve validates the session carried by the request and returns it.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	return m.Validate(ctx, token, MetadataFrom(r))
}

// Revoke terminates the session carried by the request and clears the
// token from the response. Safe to call with no session present.
func (m *Manager) Revoke(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.transport.GetToken(r); err == nil {
		if err := m.Invalidate(ctx, token); err != nil {
			return err
		}
	}

	return m.transport.ClearToken(w)
}
