package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.EndpointAddrHTTP = getEnv("ADDRESS", cfg.EndpointAddrHTTP)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.SecretKey = getEnv("SECRET_KEY", cfg.SecretKey)
	cfg.SessionTTL = getEnvAsSeconds("SESSION_TTL_SECONDS", cfg.SessionTTL)
	cfg.BcryptCost = getEnvAsInt("BCRYPT_COST", cfg.BcryptCost)
	cfg.TemplatesGlob = getEnv("TEMPLATES_GLOB", cfg.TemplatesGlob)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
}

// getEnv returns the value of the environment variable or the default when
// it is unset or empty.
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads the environment variable as an integer, falling back to
// the default on absence or parse failure.
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

// getEnvAsSeconds reads the environment variable as an integer number of
// seconds and converts it to a time.Duration.
func getEnvAsSeconds(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return time.Duration(value) * time.Second
}
