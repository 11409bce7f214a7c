package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP configuration
	HTTPAddr    string
	MetricsAddr string

	// Session configuration
	SessionCookieName string

	// Tip listing defaults
	DefaultTipLimit int
	MaxTipLimit     int

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	// Optional .env for local development; ignored when absent
	_ = godotenv.Load()

	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),

		HTTPAddr:    os.Getenv("HTTP_ADDR"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),

		SessionCookieName: "tipster_session",

		DefaultTipLimit: 50,
		MaxTipLimit:     200,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.HTTPAddr == "" {
		config.HTTPAddr = ":8080"
	}
	if config.MetricsAddr == "" {
		config.MetricsAddr = ":9090"
	}
	if cookie := os.Getenv("SESSION_COOKIE_NAME"); cookie != "" {
		config.SessionCookieName = cookie
	}
	if limit := os.Getenv("DEFAULT_TIP_LIMIT"); limit != "" {
		if parsedLimit, err := strconv.Atoi(limit); err == nil {
			config.DefaultTipLimit = parsedLimit
		}
	}
	if limit := os.Getenv("MAX_TIP_LIMIT"); limit != "" {
		if parsedLimit, err := strconv.Atoi(limit); err == nil {
			config.MaxTipLimit = parsedLimit
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
