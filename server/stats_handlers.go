package server

import (
	"net/http"
)

// handleTipsterStats returns the site-wide performance aggregate shown
// on public marketing pages
func (s *Server) handleTipsterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.statsService.GetTipsterStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Invalid request", "Failed to fetch tipster stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
