// Package config loads server settings from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything cmd/server needs to wire the process.
type Config struct {
	Addr string // listen address

	// Storage
	DatabaseDSN string // empty: in-memory store
	RedisURL    string // empty: sessions live in the primary store

	// Sessions
	SessionMaxAge time.Duration

	// Files
	UploadDir string
	ViewsDir  string

	// Tuning
	BcryptCost int
	OpTimeout  time.Duration
}

// Load reads the environment. A .env file in the working directory is
// loaded first when present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		SessionMaxAge: getEnvAsDuration("SESSION_MAX_AGE", 24*time.Hour),
		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		ViewsDir:      getEnv("VIEWS_DIR", "./views"),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", 10),
		OpTimeout:     getEnvAsDuration("OP_TIMEOUT", 5*time.Second),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
