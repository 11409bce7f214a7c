package server

import (
	"net/http"

	"tipster/config"
	"tipster/database"
	"tipster/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server translates HTTP requests into service calls. It owns no state
// beyond its collaborators; every request is handled independently.
type Server struct {
	cfg          *config.Config
	db           *database.DB
	userService  service.UserService
	tipService   service.TipService
	statsService service.StatsService
	sessionRepo  service.SessionRepository
}

// New creates a new API server
func New(cfg *config.Config, db *database.DB, userService service.UserService, tipService service.TipService, statsService service.StatsService, sessionRepo service.SessionRepository) *Server {
	return &Server{
		cfg:          cfg,
		db:           db,
		userService:  userService,
		tipService:   tipService,
		statsService: statsService,
		sessionRepo:  sessionRepo,
	}
}

// Router returns the HTTP routing table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(instrumentRequests)

	// Public routes
	r.Get("/api/tips", s.handleListTips)
	r.Get("/api/tips/{id}", s.handleGetTip)
	r.Get("/api/stats/tipster", s.handleTipsterStats)

	// Authenticated routes; admin checks happen per handler
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/api/auth/user", s.handleAuthUser)
		r.Post("/api/tips", s.handleCreateTip)
		r.Patch("/api/tips/{id}/status", s.handleUpdateTipStatus)
		r.Post("/api/user/follow-tip", s.handleFollowTip)
		r.Get("/api/user/tip-history", s.handleTipHistory)
		r.Get("/api/user/stats", s.handleUserStats)
		r.Post("/api/subscription/update", s.handleUpdateSubscription)
		r.Get("/api/admin/tips", s.handleAdminTips)
	})

	return r
}
