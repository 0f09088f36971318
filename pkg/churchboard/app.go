package churchboard

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/churchhaven/churchboard/pkg/store"
	"github.com/churchhaven/churchboard/pkg/store/postgres"
)

// Config holds application configuration.
type Config struct {
	// PostgresDSN is the connection string for the primary database.
	PostgresDSN string
	// ServerPort is the listen port for the HTTP server.
	ServerPort string
}

// App holds the application state: the store, the configuration, and the
// process logger shared by middleware and handlers.
type App struct {
	store  store.Store
	config *Config
	logger zerolog.Logger
}

// New creates an application connected to PostgreSQL.
func New(config *Config) (*App, error) {
	st, err := postgres.NewPostgresStore(config.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	return NewWithStore(st, config), nil
}

// NewWithStore creates an application on an already-open store. Tests use
// this with a sqlite-backed store.
func NewWithStore(st store.Store, config *Config) *App {
	return &App{
		store:  st,
		config: config,
		logger: zerolog.New(os.Stdout).With().Timestamp().Logger(),
	}
}

// Close closes the application and its resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Store returns the underlying store (useful for testing).
func (a *App) Store() store.Store {
	return a.store
}

// getEnv returns the environment variable value or a default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
