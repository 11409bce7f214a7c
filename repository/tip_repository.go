package repository

import (
	"context"
	"fmt"
	"time"

	"tipster/database"
	"tipster/models"
	"tipster/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const tipColumns = `
	id,
	sport,
	league,
	matchup,
	bet_type,
	odds,
	stake,
	analysis,
	confidence,
	status,
	result,
	profit,
	game_date,
	submitted_by,
	required_plan,
	is_public,
	created_at,
	updated_at`

// TipRepository implements the TipRepository interface
type TipRepository struct {
	q queryable
}

// NewTipRepository creates a new tip repository
func NewTipRepository(db *database.DB) *TipRepository {
	return &TipRepository{q: db.Pool}
}

func scanTip(row pgx.Row) (*models.Tip, error) {
	var tip models.Tip
	err := row.Scan(
		&tip.ID,
		&tip.Sport,
		&tip.League,
		&tip.Matchup,
		&tip.BetType,
		&tip.Odds,
		&tip.Stake,
		&tip.Analysis,
		&tip.Confidence,
		&tip.Status,
		&tip.Result,
		&tip.Profit,
		&tip.GameDate,
		&tip.SubmittedBy,
		&tip.RequiredPlan,
		&tip.IsPublic,
		&tip.CreatedAt,
		&tip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

func scanTips(rows pgx.Rows) ([]*models.Tip, error) {
	defer rows.Close()

	var tips []*models.Tip
	for rows.Next() {
		tip, err := scanTip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tips = append(tips, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tips: %w", err)
	}

	return tips, nil
}

// List returns tips matching every supplied filter, newest first
func (r *TipRepository) List(ctx context.Context, filter service.TipFilter) ([]*models.Tip, error) {
	query := `SELECT ` + tipColumns + ` FROM tips`

	var conditions []string
	var args []any
	if filter.Sport != "" {
		args = append(args, filter.Sport)
		conditions = append(conditions, fmt.Sprintf("sport = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.RequiredPlan != "" {
		args = append(args, filter.RequiredPlan)
		conditions = append(conditions, fmt.Sprintf("required_plan = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}

	return scanTips(rows)
}

// GetByID retrieves a single tip
func (r *TipRepository) GetByID(ctx context.Context, id string) (*models.Tip, error) {
	query := `SELECT ` + tipColumns + ` FROM tips WHERE id = $1`

	tip, err := scanTip(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tip %s: %w", id, err)
	}

	return tip, nil
}

// Create inserts a new tip with the submitting admin attached
func (r *TipRepository) Create(ctx context.Context, insert *models.InsertTip, submittedBy string) (*models.Tip, error) {
	stake := decimal.NewFromInt(100)
	if insert.Stake.Valid {
		stake = insert.Stake.Decimal
	}
	confidence := 7
	if insert.Confidence != nil {
		confidence = *insert.Confidence
	}
	requiredPlan := models.PlanFree
	if insert.RequiredPlan != "" {
		requiredPlan = insert.RequiredPlan
	}
	isPublic := true
	if insert.IsPublic != nil {
		isPublic = *insert.IsPublic
	}

	query := `
		INSERT INTO tips
		(id, sport, league, matchup, bet_type, odds, stake, analysis, confidence, game_date, submitted_by, required_plan, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + tipColumns

	tip, err := scanTip(r.q.QueryRow(ctx, query,
		uuid.NewString(),
		insert.Sport,
		insert.League,
		insert.Matchup,
		insert.BetType,
		insert.Odds,
		stake,
		insert.Analysis,
		confidence,
		insert.GameDate,
		submittedBy,
		requiredPlan,
		isPublic,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create tip: %w", err)
	}

	return tip, nil
}

// UpdateStatus overwrites a tip's settlement fields.
// Returns nil when no row matches the tip ID.
func (r *TipRepository) UpdateStatus(ctx context.Context, tipID string, status models.TipStatus, result *string, profit decimal.NullDecimal) (*models.Tip, error) {
	query := `
		UPDATE tips
		SET status = $2,
			result = $3,
			profit = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tipColumns

	tip, err := scanTip(r.q.QueryRow(ctx, query, tipID, status, result, profit))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update status of tip %s: %w", tipID, err)
	}

	return tip, nil
}

// ListBySubmitter returns all tips submitted by a user, newest first
func (r *TipRepository) ListBySubmitter(ctx context.Context, userID string) ([]*models.Tip, error) {
	query := `SELECT ` + tipColumns + ` FROM tips WHERE submitted_by = $1 ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips for submitter %s: %w", userID, err)
	}

	return scanTips(rows)
}

// ListCreatedSince returns all tips created at or after the given time
func (r *TipRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*models.Tip, error) {
	query := `SELECT ` + tipColumns + ` FROM tips WHERE created_at >= $1 ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips since %s: %w", since, err)
	}

	return scanTips(rows)
}

// Count returns the total number of tips
func (r *TipRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tips`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tips: %w", err)
	}
	return count, nil
}

// SettledCounts returns how many tips have been settled as won and as lost
func (r *TipRepository) SettledCounts(ctx context.Context) (won int, lost int, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'won'),
			COUNT(*) FILTER (WHERE status = 'lost')
		FROM tips`

	if err := r.q.QueryRow(ctx, query).Scan(&won, &lost); err != nil {
		return 0, 0, fmt.Errorf("failed to count settled tips: %w", err)
	}
	return won, lost, nil
}
