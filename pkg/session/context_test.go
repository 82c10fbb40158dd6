package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redlegion/sessionkit/pkg/session"
)

func TestSessionContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		sess := &session.Session{UserID: "u1"}
		ctx := session.WithSession(context.Background(), sess)

		got, ok := session.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, sess, got)

		userID, ok := session.UserIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "u1", userID)

		assert.Equal(t, sess, session.MustFromContext(ctx))
	})

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		_, ok := session.FromContext(ctx)
		assert.False(t, ok)

		_, ok = session.UserIDFromContext(ctx)
		assert.False(t, ok)

		assert.Panics(t, func() { session.MustFromContext(ctx) })
	})
}
