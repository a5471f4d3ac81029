package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	NumKeys      int    // Optional: number of signing keys to generate (default: 3, min: 1, max: 10)
	DatabaseFile string // Optional: path to SQLite database file (default: ./whisperbox.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	SMTPHost     string // Required for real delivery: SMTP relay host
	SMTPPort     int    // Optional: SMTP relay port (default: 587)
	SMTPUsername string // Required for real delivery: SMTP auth user
	SMTPPassword string // Required for real delivery: SMTP auth password
	SMTPFrom     string // Optional: From address (default: SMTP username)

	GeminiAPIKey string // Required for suggestions: upstream model API key
	GeminiModel  string // Optional: model name (default: gemini-1.5-flash)

	CodeTTL    time.Duration // Optional: verification code lifetime (default: 10m)
	SessionTTL time.Duration // Optional: session token lifetime (default: 24h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       os.Getenv("WHISPERBOX_ISSUER"),
		DatabaseFile: getEnvOrDefault("WHISPERBOX_DATABASE_FILE", "whisperbox.db"),
		PepperFile:   getEnvOrDefault("WHISPERBOX_PEPPER_FILE", "pepper"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"), // Optional: falls back to SMTP_USERNAME

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"), // Optional: client picks its default

		CodeTTL:    getEnvDurationOrDefault("VERIFY_CODE_TTL", 10*time.Minute),
		SessionTTL: getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// Parse number of keys (default: 3)
	if numKeysStr := os.Getenv("WHISPERBOX_NUM_KEYS"); numKeysStr != "" {
		if numKeys, err := strconv.Atoi(numKeysStr); err == nil {
			cfg.NumKeys = numKeys
		}
		// If parsing fails, NumKeys remains 0 (will use default in KeyManager)
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "whisperbox"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
