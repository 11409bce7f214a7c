package service

import (
	"context"
	"fmt"
	"time"

	"tipster/models"
)

// userService implements the UserService interface
type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// SyncUser upserts the user row from identity-provider claims.
// Runs on every authenticated request so the local row tracks the provider.
func (s *userService) SyncUser(ctx context.Context, claims *models.SessionClaims) (*models.User, error) {
	if claims == nil || claims.Sub == "" {
		return nil, &ValidationError{Fields: []string{"sub"}}
	}

	user, err := s.userRepo.Upsert(ctx, &models.UpsertUser{
		ID:              claims.Sub,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateSubscription overwrites a user's subscription fields after
// checking both enums. Returns nil when the user does not exist.
func (s *userService) UpdateSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, status models.SubscriptionStatus, expiry *time.Time) (*models.User, error) {
	var fields []string
	if !plan.IsValid() {
		fields = append(fields, "plan")
	}
	if !status.IsValid() {
		fields = append(fields, "status")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	user, err := s.userRepo.UpdateSubscription(ctx, userID, plan, status, expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return user, nil
}
