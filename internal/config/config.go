package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Env            string
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// Load reads configuration from the environment. JWT_SECRET and DATABASE_URL
// are mandatory; everything else has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))

	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg.TokenTTL = ttl

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	cfg.AllowedOrigins = strings.Split(origins, ",")

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
