package testutil

import (
	"tipster/models"

	"github.com/shopspring/decimal"
)

// CreateTestClaims creates identity-provider claims with default values
func CreateTestClaims(sub string) *models.SessionClaims {
	email := sub + "@example.com"
	firstName := "Test"
	return &models.SessionClaims{
		Sub:       sub,
		Email:     &email,
		FirstName: &firstName,
	}
}

// CreateTestUpsertUser creates an upsert payload with default values
func CreateTestUpsertUser(id string) *models.UpsertUser {
	email := id + "@example.com"
	firstName := "Test"
	lastName := "User"
	return &models.UpsertUser{
		ID:        id,
		Email:     &email,
		FirstName: &firstName,
		LastName:  &lastName,
	}
}

// CreateTestInsertTip creates a valid tip payload with default values
func CreateTestInsertTip() *models.InsertTip {
	return &models.InsertTip{
		Sport:   models.SportNBA,
		League:  "NBA",
		Matchup: "Lakers vs Warriors",
		BetType: "Over 220.5 Points",
		Odds:    "-110",
	}
}

// CreateTestInsertTipHistory creates a valid follow payload
func CreateTestInsertTipHistory(userID, tipID string) *models.InsertTipHistory {
	return &models.InsertTipHistory{
		UserID: userID,
		TipID:  tipID,
		Stake:  decimal.NewFromInt(100),
	}
}
