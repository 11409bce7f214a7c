package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tipster/models"
	"tipster/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// handleListTips returns tips matching the query filters.
// Public: anyone may browse the listing.
func (s *Server) handleListTips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := service.TipFilter{
		Sport:        models.Sport(query.Get("sport")),
		Status:       models.TipStatus(query.Get("status")),
		RequiredPlan: models.SubscriptionPlan(query.Get("plan")),
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	tips, err := s.tipService.ListTips(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "Invalid filters", "Failed to fetch tips")
		return
	}
	if tips == nil {
		tips = []*models.Tip{}
	}

	writeJSON(w, http.StatusOK, tips)
}

// handleGetTip returns a single tip or a 404
func (s *Server) handleGetTip(w http.ResponseWriter, r *http.Request) {
	tip, err := s.tipService.GetTip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Invalid tip id", "Failed to fetch tip")
		return
	}
	if tip == nil {
		writeMessage(w, http.StatusNotFound, "Tip not found")
		return
	}

	writeJSON(w, http.StatusOK, tip)
}

// handleCreateTip publishes a new tip. Admin only.
func (s *Server) handleCreateTip(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	if !identity.User.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Only admins can create tips")
		return
	}

	var insert models.InsertTip
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid tip data")
		return
	}

	tip, err := s.tipService.CreateTip(r.Context(), &insert, identity.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Invalid tip data", "Failed to create tip")
		return
	}

	writeJSON(w, http.StatusCreated, tip)
}

type updateTipStatusRequest struct {
	Status models.TipStatus    `json:"status"`
	Result *string             `json:"result"`
	Profit decimal.NullDecimal `json:"profit"`
}

// handleUpdateTipStatus settles a tip. Admin only.
func (s *Server) handleUpdateTipStatus(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	if !identity.User.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Only admins can update tip status")
		return
	}

	var req updateTipStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid status data")
		return
	}

	tip, err := s.tipService.UpdateTipStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.Result, req.Profit)
	if err != nil {
		writeServiceError(w, r, err, "Invalid status data", "Failed to update tip status")
		return
	}
	if tip == nil {
		writeMessage(w, http.StatusNotFound, "Tip not found")
		return
	}

	writeJSON(w, http.StatusOK, tip)
}

// handleAdminTips lists the tips submitted by the calling admin
func (s *Server) handleAdminTips(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	if !identity.User.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Admin access required")
		return
	}

	tips, err := s.tipService.ListTipsBySubmitter(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Invalid request", "Failed to fetch tips")
		return
	}
	if tips == nil {
		tips = []*models.Tip{}
	}

	writeJSON(w, http.StatusOK, tips)
}
