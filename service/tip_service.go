package service

import (
	"context"
	"fmt"

	"tipster/models"

	"github.com/shopspring/decimal"
)

// tipService implements the TipService interface
type tipService struct {
	tipRepo      TipRepository
	historyRepo  TipHistoryRepository
	defaultLimit int
	maxLimit     int
}

// NewTipService creates a new tip service
func NewTipService(tipRepo TipRepository, historyRepo TipHistoryRepository, defaultLimit, maxLimit int) TipService {
	return &tipService{
		tipRepo:      tipRepo,
		historyRepo:  historyRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// ListTips returns tips matching the filter, newest first, bounded by
// the default limit when none is supplied
func (s *tipService) ListTips(ctx context.Context, filter TipFilter) ([]*models.Tip, error) {
	// Unknown enum values would error against the typed columns, so
	// reject them up front as a validation failure.
	var fields []string
	if filter.Sport != "" && !filter.Sport.IsValid() {
		fields = append(fields, "sport")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		fields = append(fields, "status")
	}
	if filter.RequiredPlan != "" && !filter.RequiredPlan.IsValid() {
		fields = append(fields, "plan")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if filter.Limit <= 0 {
		filter.Limit = s.defaultLimit
	}
	if filter.Limit > s.maxLimit {
		filter.Limit = s.maxLimit
	}

	tips, err := s.tipRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}

	return tips, nil
}

// GetTip retrieves a single tip
func (s *tipService) GetTip(ctx context.Context, id string) (*models.Tip, error) {
	tip, err := s.tipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tip: %w", err)
	}
	return tip, nil
}

// CreateTip validates the submitted fields and publishes the tip.
// No row is written when validation fails.
func (s *tipService) CreateTip(ctx context.Context, insert *models.InsertTip, submittedBy string) (*models.Tip, error) {
	if err := checkStruct(insert); err != nil {
		return nil, err
	}

	tip, err := s.tipRepo.Create(ctx, insert, submittedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create tip: %w", err)
	}

	return tip, nil
}

// UpdateTipStatus overwrites a tip's settlement fields.
// Returns nil when the tip does not exist.
func (s *tipService) UpdateTipStatus(ctx context.Context, tipID string, status models.TipStatus, result *string, profit decimal.NullDecimal) (*models.Tip, error) {
	if !status.IsValid() {
		return nil, &ValidationError{Fields: []string{"status"}}
	}

	tip, err := s.tipRepo.UpdateStatus(ctx, tipID, status, result, profit)
	if err != nil {
		return nil, fmt.Errorf("failed to update tip status: %w", err)
	}

	return tip, nil
}

// ListTipsBySubmitter returns all tips submitted by a user
func (s *tipService) ListTipsBySubmitter(ctx context.Context, userID string) ([]*models.Tip, error) {
	tips, err := s.tipRepo.ListBySubmitter(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips by submitter: %w", err)
	}
	return tips, nil
}

// FollowTip validates and records a user's stake on a tip. Duplicate
// follows are allowed; each one is an independent history row.
func (s *tipService) FollowTip(ctx context.Context, insert *models.InsertTipHistory) (*models.TipHistory, error) {
	if err := checkStruct(insert); err != nil {
		return nil, err
	}

	entry, err := s.historyRepo.Create(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("failed to follow tip: %w", err)
	}

	return entry, nil
}

// GetTipHistory returns a user's follow history, newest first
func (s *tipService) GetTipHistory(ctx context.Context, userID string) ([]*models.TipHistory, error) {
	entries, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tip history: %w", err)
	}
	return entries, nil
}
