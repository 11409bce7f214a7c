package repository

import (
	"context"
	"fmt"
	"time"

	"tipster/database"
	"tipster/models"

	"github.com/jackc/pgx/v5"
)

const userColumns = `
	id,
	email,
	first_name,
	last_name,
	profile_image_url,
	subscription_plan,
	subscription_status,
	subscription_expiry,
	is_admin,
	created_at,
	updated_at`

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.ProfileImageURL,
		&user.SubscriptionPlan,
		&user.SubscriptionStatus,
		&user.SubscriptionExpiry,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by their identity-provider ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	return user, nil
}

// Upsert inserts a user or, on ID conflict, refreshes the identity fields.
// Called on every authenticated request to sync claims from the provider.
func (r *UserRepository) Upsert(ctx context.Context, upsert *models.UpsertUser) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query,
		upsert.ID,
		upsert.Email,
		upsert.FirstName,
		upsert.LastName,
		upsert.ProfileImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", upsert.ID, err)
	}

	return user, nil
}

// UpdateSubscription overwrites a user's subscription fields.
// Returns nil when no row matches the user ID.
func (r *UserRepository) UpdateSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, status models.SubscriptionStatus, expiry *time.Time) (*models.User, error) {
	query := `
		UPDATE users
		SET subscription_plan = $2,
			subscription_status = $3,
			subscription_expiry = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query, userID, plan, status, expiry))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription for user %s: %w", userID, err)
	}

	return user, nil
}

// Count returns the total number of registered members
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
