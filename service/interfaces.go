package service

import (
	"context"
	"time"

	"tipster/models"

	"github.com/shopspring/decimal"
)

// TipFilter narrows a tip listing. Zero-valued fields are not applied.
type TipFilter struct {
	Sport        models.Sport
	Status       models.TipStatus
	RequiredPlan models.SubscriptionPlan
	Limit        int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByID retrieves a user by their identity-provider ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Upsert inserts a user or refreshes the identity fields on ID conflict
	Upsert(ctx context.Context, upsert *models.UpsertUser) (*models.User, error)

	// UpdateSubscription overwrites a user's subscription fields, nil when absent
	UpdateSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, status models.SubscriptionStatus, expiry *time.Time) (*models.User, error)

	// Count returns the total number of registered members
	Count(ctx context.Context) (int, error)
}

// TipRepository defines the interface for tip data access
type TipRepository interface {
	// List returns tips matching every supplied filter, newest first
	List(ctx context.Context, filter TipFilter) ([]*models.Tip, error)

	// GetByID retrieves a single tip, nil when absent
	GetByID(ctx context.Context, id string) (*models.Tip, error)

	// Create inserts a new tip with the submitting admin attached
	Create(ctx context.Context, insert *models.InsertTip, submittedBy string) (*models.Tip, error)

	// UpdateStatus overwrites a tip's settlement fields, nil when absent
	UpdateStatus(ctx context.Context, tipID string, status models.TipStatus, result *string, profit decimal.NullDecimal) (*models.Tip, error)

	// ListBySubmitter returns all tips submitted by a user, newest first
	ListBySubmitter(ctx context.Context, userID string) ([]*models.Tip, error)

	// ListCreatedSince returns all tips created at or after the given time
	ListCreatedSince(ctx context.Context, since time.Time) ([]*models.Tip, error)

	// Count returns the total number of tips
	Count(ctx context.Context) (int, error)

	// SettledCounts returns how many tips settled as won and as lost
	SettledCounts(ctx context.Context) (won int, lost int, err error)
}

// TipHistoryRepository defines the interface for follow-history data access
type TipHistoryRepository interface {
	// Create records that a user followed a tip
	Create(ctx context.Context, insert *models.InsertTipHistory) (*models.TipHistory, error)

	// ListByUser returns all history rows for a user, newest follow first
	ListByUser(ctx context.Context, userID string) ([]*models.TipHistory, error)
}

// SessionRepository defines the interface for session lookup
type SessionRepository interface {
	// Get retrieves an unexpired session by its ID, nil when absent
	Get(ctx context.Context, sid string) (*models.Session, error)
}

// UserService defines the interface for user operations
type UserService interface {
	// SyncUser upserts the user row from identity-provider claims
	SyncUser(ctx context.Context, claims *models.SessionClaims) (*models.User, error)

	// GetUser retrieves a user by ID, nil when absent
	GetUser(ctx context.Context, id string) (*models.User, error)

	// UpdateSubscription overwrites a user's subscription fields, nil when absent
	UpdateSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, status models.SubscriptionStatus, expiry *time.Time) (*models.User, error)
}

// TipService defines the interface for tip operations
type TipService interface {
	// ListTips returns tips matching the filter, bounded by the limit
	ListTips(ctx context.Context, filter TipFilter) ([]*models.Tip, error)

	// GetTip retrieves a single tip, nil when absent
	GetTip(ctx context.Context, id string) (*models.Tip, error)

	// CreateTip validates and publishes a new tip
	CreateTip(ctx context.Context, insert *models.InsertTip, submittedBy string) (*models.Tip, error)

	// UpdateTipStatus settles or re-settles a tip, nil when absent
	UpdateTipStatus(ctx context.Context, tipID string, status models.TipStatus, result *string, profit decimal.NullDecimal) (*models.Tip, error)

	// ListTipsBySubmitter returns all tips submitted by a user
	ListTipsBySubmitter(ctx context.Context, userID string) ([]*models.Tip, error)

	// FollowTip validates and records a user's stake on a tip
	FollowTip(ctx context.Context, insert *models.InsertTipHistory) (*models.TipHistory, error)

	// GetTipHistory returns a user's follow history, newest first
	GetTipHistory(ctx context.Context, userID string) ([]*models.TipHistory, error)
}

// StatsService defines the interface for derived statistics
type StatsService interface {
	// GetUserStats aggregates a user's completed follows
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)

	// GetTipsterStats aggregates site-wide tip performance
	GetTipsterStats(ctx context.Context) (*models.TipsterStats, error)
}
