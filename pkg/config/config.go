package config

import (
	"os"
	"strconv"

	"logicgrid-api/pkg/constants"
)

// Config holds the server's environment-derived settings.
type Config struct {
	Port             string
	DBPath           string
	DefaultTimeoutMs int
}

// Load loads configuration from environment variables. There is no required secret: unlike a
// session-token API, nothing here is generated against a user identity.
func Load() (*Config, error) {
	timeoutMs, err := getEnvInt("DEFAULT_TIMEOUT_MS", constants.DefaultBacktrackMs)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:             getEnv("PORT", constants.DefaultPort),
		DBPath:           getEnv("DB_PATH", constants.DefaultDBPath),
		DefaultTimeoutMs: timeoutMs,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	return strconv.Atoi(val)
}
