package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"daily-quotes/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string
	LogLevel               string
	LogFormat              string
	QuotesFile             string
	StorageBackend         string
	SQLitePath             string
	SupabaseURL            string
	SupabaseKey            string
	SessionID              string
	ContributionURL        string
	ContributionAPIKey     string
	ContributionTimeout    time.Duration
	ContributionCloseDelay time.Duration
	UILanguage             string
	CORSAllowedOrigins     []string
	RandomSeed             uint64
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	port := getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080"))
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:             port,
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:              getEnvOrDefault("LOG_FORMAT", "json"),
		QuotesFile:             getEnvOrDefault("QUOTES_FILE", ""),
		StorageBackend:         strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", "sqlite")),
		SQLitePath:             getEnvOrDefault("SQLITE_PATH", "./data/quotes.db"),
		SupabaseURL:            getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:            getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		SessionID:              getEnvOrDefault("SESSION_ID", "default"),
		ContributionURL:        getEnvOrDefault("CONTRIBUTION_URL", "http://localhost:"+port+"/api/quotes/contribution"),
		ContributionAPIKey:     getEnvOrDefault("CONTRIBUTION_API_KEY", ""),
		ContributionTimeout:    getEnvDurationOrDefault("CONTRIBUTION_TIMEOUT", 10*time.Second),
		ContributionCloseDelay: getEnvDurationOrDefault("CONTRIBUTION_CLOSE_DELAY", 1400*time.Millisecond),
		UILanguage:             getEnvOrDefault("UI_LANG", ""),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		}),
		RandomSeed: getEnvUint64OrDefault("RANDOM_SEED", 0),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log encoder name (json or console)
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetQuotesFile returns the external dataset path; empty means the bundled dataset
func (c *AppConfig) GetQuotesFile() string {
	return c.QuotesFile
}

// GetStorageBackend returns the key-value backend name
func (c *AppConfig) GetStorageBackend() string {
	return c.StorageBackend
}

// GetSQLitePath returns the SQLite database file path
func (c *AppConfig) GetSQLitePath() string {
	return c.SQLitePath
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSessionID returns the namespace for persisted state in shared backends
func (c *AppConfig) GetSessionID() string {
	return c.SessionID
}

// GetContributionURL returns the endpoint contributions are posted to
func (c *AppConfig) GetContributionURL() string {
	return c.ContributionURL
}

// GetContributionAPIKey returns the bearer key for the contribution endpoint
func (c *AppConfig) GetContributionAPIKey() string {
	return c.ContributionAPIKey
}

func (c *AppConfig) GetContributionTimeout() time.Duration {
	return c.ContributionTimeout
}

func (c *AppConfig) GetContributionCloseDelay() time.Duration {
	return c.ContributionCloseDelay
}

// GetUILanguage returns the locale for user-facing messages; empty means auto-detect
func (c *AppConfig) GetUILanguage() string {
	return c.UILanguage
}

func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// GetRandomSeed returns the seed for random quote selection; 0 means unseeded
func (c *AppConfig) GetRandomSeed() uint64 {
	return c.RandomSeed
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint64OrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("1.5s") or plain milliseconds ("1400")
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
