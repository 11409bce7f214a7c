package service

import (
	"context"
	"fmt"
	"time"

	"tipster/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// statsService implements the StatsService interface
type statsService struct {
	userRepo    UserRepository
	tipRepo     TipRepository
	historyRepo TipHistoryRepository
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo UserRepository, tipRepo TipRepository, historyRepo TipHistoryRepository) StatsService {
	return &statsService{
		userRepo:    userRepo,
		tipRepo:     tipRepo,
		historyRepo: historyRepo,
	}
}

// GetUserStats aggregates a user's completed follows. A follow counts
// as completed once its profit column has been populated by settlement.
func (s *statsService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	history, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tip history: %w", err)
	}

	var completed int
	var wins int
	totalProfit := decimal.Zero
	totalStake := decimal.Zero

	for _, entry := range history {
		if !entry.Profit.Valid {
			continue
		}
		completed++
		totalProfit = totalProfit.Add(entry.Profit.Decimal)
		totalStake = totalStake.Add(entry.Stake)
		if entry.Profit.Decimal.IsPositive() {
			wins++
		}
	}

	stats := &models.UserStats{
		TotalProfit: totalProfit.InexactFloat64(),
		TotalBets:   completed,
	}
	if completed > 0 {
		stats.WinRate = percentage(wins, completed)
	}
	if totalStake.IsPositive() {
		stats.ROI = totalProfit.Div(totalStake).Mul(hundred).Round(2).InexactFloat64()
	}

	return stats, nil
}

// GetTipsterStats aggregates site-wide tip performance for the public
// marketing pages
func (s *statsService) GetTipsterStats(ctx context.Context) (*models.TipsterStats, error) {
	totalTips, err := s.tipRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tips: %w", err)
	}

	totalMembers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	won, lost, err := s.tipRepo.SettledCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count settled tips: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	weeklyTips, err := s.tipRepo.ListCreatedSince(ctx, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly tips: %w", err)
	}

	var weeklyWins, weeklyLosses int
	weeklyProfit := decimal.Zero
	for _, tip := range weeklyTips {
		switch tip.Status {
		case models.TipStatusWon:
			weeklyWins++
		case models.TipStatusLost:
			weeklyLosses++
		}
		if tip.Profit.Valid {
			weeklyProfit = weeklyProfit.Add(tip.Profit.Decimal)
		}
	}

	stats := &models.TipsterStats{
		TotalTips:    totalTips,
		TotalMembers: totalMembers,
		WeeklyStats: models.WeeklyStats{
			Wins:   weeklyWins,
			Losses: weeklyLosses,
			Profit: weeklyProfit.Round(2).InexactFloat64(),
		},
	}
	if won+lost > 0 {
		stats.WinRate = percentage(won, won+lost)
	}

	return stats, nil
}

// percentage returns part/total as a percentage rounded to 2 decimals
func percentage(part, total int) float64 {
	return decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(2).
		InexactFloat64()
}
