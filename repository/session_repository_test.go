package repository

import (
	"context"
	"testing"

	"tipster/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Get(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSessionRepository(testDB.DB)
	ctx := context.Background()

	payload := []byte(`{"user":{"sub":"user-1","email":"user@example.com"}}`)

	_, err := testDB.DB.Exec(ctx,
		`INSERT INTO sessions (sid, sess, expire) VALUES ($1, $2, NOW() + INTERVAL '1 hour')`,
		"live-session", payload)
	require.NoError(t, err)
	_, err = testDB.DB.Exec(ctx,
		`INSERT INTO sessions (sid, sess, expire) VALUES ($1, $2, NOW() - INTERVAL '1 hour')`,
		"expired-session", payload)
	require.NoError(t, err)

	t.Run("returns a live session", func(t *testing.T) {
		session, err := repo.Get(ctx, "live-session")
		require.NoError(t, err)
		require.NotNil(t, session)

		assert.Equal(t, "live-session", session.SID)
		assert.JSONEq(t, string(payload), string(session.Sess))
	})

	t.Run("expired session yields nil", func(t *testing.T) {
		session, err := repo.Get(ctx, "expired-session")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("unknown sid yields nil", func(t *testing.T) {
		session, err := repo.Get(ctx, "no-such-session")
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}
