package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sport represents the sport a tip is published for
type Sport string

const (
	SportNFL    Sport = "nfl"
	SportNBA    Sport = "nba"
	SportNHL    Sport = "nhl"
	SportMLB    Sport = "mlb"
	SportSoccer Sport = "soccer"
	SportTennis Sport = "tennis"
	SportGolf   Sport = "golf"
	SportBoxing Sport = "boxing"
	SportMMA    Sport = "mma"
	SportOther  Sport = "other"
)

// IsValid checks if the sport is part of the closed enum
func (s Sport) IsValid() bool {
	switch s {
	case SportNFL, SportNBA, SportNHL, SportMLB, SportSoccer,
		SportTennis, SportGolf, SportBoxing, SportMMA, SportOther:
		return true
	}
	return false
}

// TipStatus represents the settlement state of a tip
type TipStatus string

const (
	TipStatusPending   TipStatus = "pending"
	TipStatusWon       TipStatus = "won"
	TipStatusLost      TipStatus = "lost"
	TipStatusVoid      TipStatus = "void"
	TipStatusCancelled TipStatus = "cancelled"
)

// IsValid checks if the status is part of the closed enum
func (s TipStatus) IsValid() bool {
	switch s {
	case TipStatusPending, TipStatusWon, TipStatusLost, TipStatusVoid, TipStatusCancelled:
		return true
	}
	return false
}

// Tip represents a published betting prediction
type Tip struct {
	ID           string              `db:"id" json:"id"`
	Sport        Sport               `db:"sport" json:"sport"`
	League       string              `db:"league" json:"league"`
	Matchup      string              `db:"matchup" json:"matchup"`
	BetType      string              `db:"bet_type" json:"betType"`
	Odds         string              `db:"odds" json:"odds"`
	Stake        decimal.Decimal     `db:"stake" json:"stake"`
	Analysis     *string             `db:"analysis" json:"analysis"`
	Confidence   int                 `db:"confidence" json:"confidence"`
	Status       TipStatus           `db:"status" json:"status"`
	Result       *string             `db:"result" json:"result"`
	Profit       decimal.NullDecimal `db:"profit" json:"profit"`
	GameDate     *time.Time          `db:"game_date" json:"gameDate"`
	SubmittedBy  *string             `db:"submitted_by" json:"submittedBy"`
	RequiredPlan SubscriptionPlan    `db:"required_plan" json:"requiredPlan"`
	IsPublic     bool                `db:"is_public" json:"isPublic"`
	CreatedAt    time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updatedAt"`
}

// IsSettled reports whether the tip has a final won/lost outcome
func (t *Tip) IsSettled() bool {
	return t.Status == TipStatusWon || t.Status == TipStatusLost
}

// InsertTip carries the fields accepted when publishing a new tip
type InsertTip struct {
	Sport        Sport               `json:"sport" validate:"required,sport"`
	League       string              `json:"league" validate:"required"`
	Matchup      string              `json:"matchup" validate:"required"`
	BetType      string              `json:"betType" validate:"required"`
	Odds         string              `json:"odds" validate:"required"`
	Stake        decimal.NullDecimal `json:"stake"`
	Analysis     *string             `json:"analysis"`
	Confidence   *int                `json:"confidence" validate:"omitempty,min=1,max=10"`
	GameDate     *time.Time          `json:"gameDate"`
	RequiredPlan SubscriptionPlan    `json:"requiredPlan" validate:"omitempty,plan"`
	IsPublic     *bool               `json:"isPublic"`
}
