package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipHistory represents a user's recorded intent to stake on a tip.
// Profit stays null until the referenced tip settles; the settlement
// writer is an external collaborator and is not implemented here.
type TipHistory struct {
	ID         string              `db:"id" json:"id"`
	UserID     string              `db:"user_id" json:"userId"`
	TipID      string              `db:"tip_id" json:"tipId"`
	Stake      decimal.Decimal     `db:"stake" json:"stake"`
	Profit     decimal.NullDecimal `db:"profit" json:"profit"`
	FollowedAt time.Time           `db:"followed_at" json:"followedAt"`
}

// InsertTipHistory carries the fields accepted when following a tip
type InsertTipHistory struct {
	UserID string          `json:"userId" validate:"required"`
	TipID  string          `json:"tipId" validate:"required"`
	Stake  decimal.Decimal `json:"stake" validate:"required"`
}
