package repository

import (
	"context"
	"fmt"

	"tipster/database"
	"tipster/models"

	"github.com/jackc/pgx/v5"
)

// SessionRepository reads sessions written by the external auth middleware.
// Expired rows are treated as absent; the cleanup sweep is owned by the
// session store collaborator.
type SessionRepository struct {
	q queryable
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{q: db.Pool}
}

// Get retrieves an unexpired session by its ID
func (r *SessionRepository) Get(ctx context.Context, sid string) (*models.Session, error) {
	query := `SELECT sid, sess, expire FROM sessions WHERE sid = $1 AND expire > NOW()`

	var session models.Session
	err := r.q.QueryRow(ctx, query, sid).Scan(&session.SID, &session.Sess, &session.Expire)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}
