// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Shared secret presented by the external scheduler
	CronSecret string

	// PostgreSQL
	PostgresURI string

	// MongoDB (snapshot archive)
	MongoURI string
	MongoDB  string

	// Flight data provider
	FlightAPIURL string
	FlightAPIKey string

	// Gmail sender
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	EmailFrom         string

	// Retry policy for provider fetches and persistence writes
	RetryMaxAttempts int
	RetryBackoff     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 120)) * time.Second,

		CronSecret: getEnv("CRON_SECRET", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/flightwatch"),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "flightwatch"),

		FlightAPIURL: getEnv("FLIGHT_API_URL", ""),
		FlightAPIKey: getEnv("FLIGHT_API_KEY", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		EmailFrom:         getEnv("EMAIL_FROM", ""),

		RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBackoff:     time.Duration(getEnvAsInt("RETRY_BACKOFF_MS", 500)) * time.Millisecond,
	}

	if config.CronSecret == "" {
		return nil, fmt.Errorf("CRON_SECRET must be set")
	}
	if config.FlightAPIURL == "" {
		return nil, fmt.Errorf("FLIGHT_API_URL must be set")
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
