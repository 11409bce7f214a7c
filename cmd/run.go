package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tipster/config"
	"tipster/database"
	"tipster/repository"
	"tipster/server"
	"tipster/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting tipster server...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tipRepo := repository.NewTipRepository(db)
	historyRepo := repository.NewTipHistoryRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	log.Println("Initializing services...")
	userService := service.NewUserService(userRepo)
	tipService := service.NewTipService(tipRepo, historyRepo, cfg.DefaultTipLimit, cfg.MaxTipLimit)
	statsService := service.NewStatsService(userRepo, tipRepo, historyRepo)
	log.Println("Services initialized successfully")

	// Initialize API server
	api := server.New(cfg, db, userService, tipService, statsService, sessionRepo)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	// Metrics and health endpoints live on a side port
	metricsServer := server.StartMetricsServer(cfg.MetricsAddr, func(ctx context.Context) error {
		return db.Ping(ctx)
	})

	errChan := make(chan error, 1)
	go func() {
		log.Printf("API server listening on %s in %s mode", cfg.HTTPAddr, cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down metrics server: %v", err)
	}

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
