package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	BotToken    string
	Environment string
	EventsFile  string
	UsersFile   string
	SessionTTL  time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		BotToken:    os.Getenv("API_TOKEN"),
		EventsFile:  os.Getenv("EVENTS_FILE"),
		UsersFile:   os.Getenv("USERS_FILE"),
		SessionTTL:  30 * time.Minute,
	}

	// Set defaults
	if cfg.EventsFile == "" {
		cfg.EventsFile = "calendar.json"
	}
	if cfg.UsersFile == "" {
		cfg.UsersFile = "users.json"
	}
	if s := os.Getenv("SESSION_TTL_MINUTES"); s != "" {
		if mins, err := strconv.Atoi(s); err == nil && mins > 0 {
			cfg.SessionTTL = time.Duration(mins) * time.Minute
		}
	}

	// BotToken is deliberately left empty when API_TOKEN is unset; main
	// treats that as a fatal configuration error.
	return cfg, nil
}
