package repository

import (
	"context"
	"fmt"

	"tipster/database"
	"tipster/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tipHistoryColumns = `
	id,
	user_id,
	tip_id,
	stake,
	profit,
	followed_at`

// TipHistoryRepository implements the TipHistoryRepository interface
type TipHistoryRepository struct {
	q queryable
}

// NewTipHistoryRepository creates a new tip history repository
func NewTipHistoryRepository(db *database.DB) *TipHistoryRepository {
	return &TipHistoryRepository{q: db.Pool}
}

func scanTipHistory(row pgx.Row) (*models.TipHistory, error) {
	var entry models.TipHistory
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.TipID,
		&entry.Stake,
		&entry.Profit,
		&entry.FollowedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create records that a user followed a tip. The same user may follow
// the same tip multiple times; each follow is an independent row.
func (r *TipHistoryRepository) Create(ctx context.Context, insert *models.InsertTipHistory) (*models.TipHistory, error) {
	query := `
		INSERT INTO user_tip_history (id, user_id, tip_id, stake)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + tipHistoryColumns

	entry, err := scanTipHistory(r.q.QueryRow(ctx, query,
		uuid.NewString(),
		insert.UserID,
		insert.TipID,
		insert.Stake,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create tip history entry: %w", err)
	}

	return entry, nil
}

// ListByUser returns all history rows for a user, newest follow first
func (r *TipHistoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.TipHistory, error) {
	query := `SELECT ` + tipHistoryColumns + ` FROM user_tip_history WHERE user_id = $1 ORDER BY followed_at DESC`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tip history for user %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []*models.TipHistory
	for rows.Next() {
		entry, err := scanTipHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tip history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tip history: %w", err)
	}

	return entries, nil
}
