package service

import (
	"context"
	"time"

	"tipster/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, upsert *models.UpsertUser) (*models.User, error) {
	args := m.Called(ctx, upsert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, status models.SubscriptionStatus, expiry *time.Time) (*models.User, error) {
	args := m.Called(ctx, userID, plan, status, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockTipRepository is a mock implementation of TipRepository
type MockTipRepository struct {
	mock.Mock
}

func (m *MockTipRepository) List(ctx context.Context, filter TipFilter) ([]*models.Tip, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

func (m *MockTipRepository) GetByID(ctx context.Context, id string) (*models.Tip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tip), args.Error(1)
}

func (m *MockTipRepository) Create(ctx context.Context, insert *models.InsertTip, submittedBy string) (*models.Tip, error) {
	args := m.Called(ctx, insert, submittedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tip), args.Error(1)
}

func (m *MockTipRepository) UpdateStatus(ctx context.Context, tipID string, status models.TipStatus, result *string, profit decimal.NullDecimal) (*models.Tip, error) {
	args := m.Called(ctx, tipID, status, result, profit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tip), args.Error(1)
}

func (m *MockTipRepository) ListBySubmitter(ctx context.Context, userID string) ([]*models.Tip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

func (m *MockTipRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*models.Tip, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

func (m *MockTipRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTipRepository) SettledCounts(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

// MockTipHistoryRepository is a mock implementation of TipHistoryRepository
type MockTipHistoryRepository struct {
	mock.Mock
}

func (m *MockTipHistoryRepository) Create(ctx context.Context, insert *models.InsertTipHistory) (*models.TipHistory, error) {
	args := m.Called(ctx, insert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TipHistory), args.Error(1)
}

func (m *MockTipHistoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.TipHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TipHistory), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, sid string) (*models.Session, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
