package server

import (
	"encoding/json"
	"net/http"

	"tipster/service"

	log "github.com/sirupsen/logrus"
)

// messageResponse is the fixed-shape body for non-2xx responses
type messageResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeServiceError maps a service failure onto the HTTP contract:
// validation errors become a 400 listing the violated fields, anything
// else is logged and surfaced as a 500 with the route's fixed message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, badRequestMessage, internalMessage string) {
	if verr, ok := service.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, messageResponse{
			Message: badRequestMessage,
			Errors:  verr.Fields,
		})
		return
	}

	log.WithError(err).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error(internalMessage)
	writeMessage(w, http.StatusInternalServerError, internalMessage)
}
