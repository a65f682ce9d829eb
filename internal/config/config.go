package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr = ":8080"
	defaultAppEnv   = "dev"
	defaultClubName = "Community Sports Club"
)

type Config struct {
	AppEnv      string
	DatabaseURL string
	HTTPAddr    string
	ClubName    string
}

// Load reads configuration from a .env file when present, then from the
// environment. DATABASE_URL is the only required setting.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		ClubName:    getEnv("CLUB_NAME", defaultClubName),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
