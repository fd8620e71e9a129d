package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// MinAPIKeyLength is the shortest admin key accepted without a warning
const MinAPIKeyLength = 32

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// RequiredPostgresEnvVars must also be set unless STORE_BACKEND=memory
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// envWarning flags a setting that works but is probably a mistake
type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv("DB_PASSWORD") == "change_this_secure_password" },
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		applies: func() bool { return os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" },
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		applies: func() bool { return isProd() && len(os.Getenv("API_KEY")) < MinAPIKeyLength },
		message: fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength),
	},
	{
		applies: func() bool { return memoryBackend() && isProd() },
		message: "STORE_BACKEND=memory loses all votes on restart - use postgres in production",
	},
	{
		applies: func() bool { return isProd() && os.Getenv("TRUSTED_PROXIES") == "" },
		message: "TRUSTED_PROXIES is empty - rate limits and security logs will see the proxy address, not the client",
	},
}

func memoryBackend() bool {
	return strings.EqualFold(os.Getenv("STORE_BACKEND"), StoreBackendMemory)
}

func isProd() bool {
	return os.Getenv("ENVIRONMENT") == "prod"
}

// ValidateEnv checks the schema version, the required variables for the
// selected backend, and the format of values that Load would otherwise
// reject or silently default.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if !memoryBackend() {
		required = append(append([]string{}, RequiredEnvVars...), RequiredPostgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return validateValues()
}

// validateValues reports every malformed value at once
func validateValues() error {
	var errs []error

	if tz := os.Getenv("POLL_TIMEZONE"); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			errs = append(errs, fmt.Errorf("POLL_TIMEZONE: %w", err))
		}
	}

	for _, key := range []string{"SCORING_OFFSET", "SCORING_RETRY_INTERVAL", "QUESTION_CACHE_TTL", "EVENT_RETRY_DELAY"} {
		if v := os.Getenv(key); v != "" {
			if d, err := time.ParseDuration(v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			} else if d < 0 {
				errs = append(errs, fmt.Errorf("%s: must not be negative", key))
			}
		}
	}

	for _, broker := range splitList(os.Getenv("KAFKA_BROKERS")) {
		if _, _, err := net.SplitHostPort(broker); err != nil {
			errs = append(errs, fmt.Errorf("KAFKA_BROKERS entry %q: expected host:port", broker))
		}
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists settings that are
// accepted but look unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
