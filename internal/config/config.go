package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds settings for both binaries. The client only reads
// APIBaseURL; the dev server reads the rest.
type Config struct {
	APIBaseURL string // remote job-board API base URL (client)
	ListenAddr string // dev server listen address
	DBPath     string // dev server sqlite file
	JWTSecret  string // dev server session-cookie signing secret
	Env        string // "development" or "production"
}

// Load reads .env (if present) and the environment, applying development
// defaults. In production an explicit JWT_SECRET is required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: getEnv("JOBCONNECT_API_URL", "http://localhost:8080"),
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", "jobconnect.db"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		Env:        getEnv("APP_ENV", "development"),
	}

	if cfg.Env == "production" && os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=production")
	}
	return cfg, nil
}

// String masks the secret so configs can be logged at startup.
func (c *Config) String() string {
	return fmt.Sprintf("Config{API: %s, Listen: %s, DB: %s, Env: %s, Secret: ***}",
		c.APIBaseURL, c.ListenAddr, c.DBPath, c.Env)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
