package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int
	APIKey         string // API key for admin routes
	TrustedProxies []string

	// Logging
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// Store
	StoreBackend      string // "postgres" or "memory"
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	DBAutoMigrate     bool

	// Poll
	PollTimezone    string
	Location        *time.Location
	RequireUsername bool

	// Scoring worker
	ScoringWorkerEnabled bool
	ScoringOffset        time.Duration
	ScoringRetryInterval time.Duration // 0 disables the catch-up run

	// Question cache
	QuestionCacheSize int
	QuestionCacheTTL  time.Duration

	// Events
	KafkaBrokers        []string
	KafkaTopic          string
	EventDeadLetterPath string
	EventMaxRetries     int
	EventRetryDelay     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadForJob loads the configuration for batch entrypoints that serve no HTTP routes.
func LoadForJob() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreBackendPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "dailypoll"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", false),

		PollTimezone:    getEnv("POLL_TIMEZONE", "UTC"),
		RequireUsername: getEnvAsBool("REQUIRE_USERNAME", false),

		ScoringWorkerEnabled: getEnvAsBool("SCORING_WORKER_ENABLED", false),
		ScoringOffset:        getEnvAsDuration("SCORING_OFFSET", DefaultScoringOffset),
		ScoringRetryInterval: getEnvAsDuration("SCORING_RETRY_INTERVAL", 0),

		QuestionCacheSize: getEnvAsInt("QUESTION_CACHE_SIZE", DefaultQuestionCacheSize),
		QuestionCacheTTL:  getEnvAsDuration("QUESTION_CACHE_TTL", DefaultQuestionCacheTTL),

		KafkaBrokers:        splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:          getEnv("KAFKA_TOPIC", DefaultKafkaTopic),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	loc, err := time.LoadLocation(cfg.PollTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_TIMEZONE value: %w", err)
	}
	cfg.Location = loc

	if cfg.StoreBackend != StoreBackendPostgres && cfg.StoreBackend != StoreBackendMemory {
		return nil, fmt.Errorf("invalid STORE_BACKEND value %q: expected %s or %s",
			cfg.StoreBackend, StoreBackendPostgres, StoreBackendMemory)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default for unset or unparsable values
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default for unset or unparsable values
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool returns the default for unset or unparsable values
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL URL. Credentials are escaped, so
// passwords may contain URL delimiters.
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// EventsEnabled reports whether a Kafka sink is configured.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
