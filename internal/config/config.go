package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all environment-provided settings
type Config struct {
	HTTPAddr    string
	StorageType string
	RedisURL    string

	// JWTSecret signs bearer tokens. Required; the server refuses to
	// start without it rather than falling back to a baked-in literal.
	JWTSecret     string
	TokenTTL      time.Duration
	LoginTokenTTL time.Duration

	MembershipTTL time.Duration
	ReapInterval  time.Duration

	// Seed credentials for the canonical admin account
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// Load reads configuration from the environment
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		StorageType:   getenv("STORAGE_TYPE", "memory"),
		RedisURL:      getenv("REDIS_URL", ""),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getenvDuration("TOKEN_TTL", 15*time.Minute),
		LoginTokenTTL: getenvDuration("LOGIN_TOKEN_TTL", 30*time.Minute),
		MembershipTTL: getenvDuration("MEMBERSHIP_TTL", 31*24*time.Hour),
		ReapInterval:  getenvDuration("REAP_INTERVAL", time.Hour),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@nucleobets.com"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
