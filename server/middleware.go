package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tipster/models"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Identity is the caller identity resolved by the session middleware.
// It is passed through the request context explicitly; no handler reads
// session state on its own.
type Identity struct {
	UserID string
	User   *models.User
}

type contextKey string

const identityKey contextKey = "identity"

func withIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFrom returns the caller identity set by requireAuth
func identityFrom(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}

// sessionPayload is the claim envelope the auth collaborator writes
// into the sessions table
type sessionPayload struct {
	User models.SessionClaims `json:"user"`
}

// requireAuth resolves the session cookie into a caller identity and
// syncs the user row from the embedded identity-provider claims.
// Requests without a live session are rejected with a 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cfg.SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		session, err := s.sessionRepo.Get(r.Context(), cookie.Value)
		if err != nil {
			log.WithError(err).Error("Failed to load session")
			writeMessage(w, http.StatusInternalServerError, "Failed to authenticate request")
			return
		}
		if session == nil {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var payload sessionPayload
		if err := json.Unmarshal(session.Sess, &payload); err != nil || payload.User.Sub == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.userService.SyncUser(r.Context(), &payload.User)
		if err != nil {
			log.WithError(err).Error("Failed to sync user from session claims")
			writeMessage(w, http.StatusInternalServerError, "Failed to authenticate request")
			return
		}

		identity := &Identity{UserID: user.ID, User: user}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

// requestLogger logs each request with its status and duration
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Info("Request handled")
	})
}
