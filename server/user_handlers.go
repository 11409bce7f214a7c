package server

import (
	"encoding/json"
	"net/http"
	"time"

	"tipster/models"

	"github.com/shopspring/decimal"
)

// handleAuthUser returns the caller's user record, already synced from
// the identity provider by the session middleware
func (s *Server) handleAuthUser(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	writeJSON(w, http.StatusOK, identity.User)
}

type followTipRequest struct {
	TipID string          `json:"tipId"`
	Stake decimal.Decimal `json:"stake"`
}

// handleFollowTip records the caller's stake on a tip. Duplicate
// follows are accepted; each creates an independent history row.
func (s *Server) handleFollowTip(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req followTipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}

	entry, err := s.tipService.FollowTip(r.Context(), &models.InsertTipHistory{
		UserID: identity.UserID,
		TipID:  req.TipID,
		Stake:  req.Stake,
	})
	if err != nil {
		writeServiceError(w, r, err, "Invalid data", "Failed to follow tip")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// handleTipHistory returns the caller's follow history, newest first
func (s *Server) handleTipHistory(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	entries, err := s.tipService.GetTipHistory(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Invalid request", "Failed to fetch tip history")
		return
	}
	if entries == nil {
		entries = []*models.TipHistory{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleUserStats returns the caller's aggregated performance
func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	stats, err := s.statsService.GetUserStats(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Invalid request", "Failed to fetch user stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

type updateSubscriptionRequest struct {
	Plan   models.SubscriptionPlan   `json:"plan"`
	Status models.SubscriptionStatus `json:"status"`
	Expiry *time.Time                `json:"expiry"`
}

// handleUpdateSubscription overwrites the caller's subscription fields.
// Payment processing happens elsewhere; this endpoint only records the
// resulting plan.
func (s *Server) handleUpdateSubscription(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req updateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid subscription data")
		return
	}

	user, err := s.userService.UpdateSubscription(r.Context(), identity.UserID, req.Plan, req.Status, req.Expiry)
	if err != nil {
		writeServiceError(w, r, err, "Invalid subscription data", "Failed to update subscription")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
