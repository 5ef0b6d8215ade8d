package confs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string // HTTP listen port
	GinMode       string // gin mode (debug, release, test)
	SessionSecret string // signing key for the session cookie
	RedisURL      string // optional redis address for the CSRF token store
	CSRFTokenTTL  int    // minutes before an unconsumed CSRF token expires
}

// Load reads environment variables, pulling in a .env file if present,
// and validates essential settings.
func Load() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-session-secret"),
		RedisURL:      getEnv("REDIS_URL", ""),
		CSRFTokenTTL:  getEnvAsInt("CSRF_TOKEN_TTL_MINUTES", 60),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the settings that must not fall back to defaults
// outside local development.
func (c *Config) Validate() error {
	if c.GinMode == "release" {
		if c.SessionSecret == "" || c.SessionSecret == "dev-only-session-secret" {
			return fmt.Errorf("SESSION_SECRET is required in release mode")
		}
	}
	if c.CSRFTokenTTL <= 0 {
		return fmt.Errorf("CSRF_TOKEN_TTL_MINUTES must be positive")
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
