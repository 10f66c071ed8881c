package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	UsersURL           string        `validate:"required,url"`
	InvalidURL         string        `validate:"required,url"`
	PrimaryCityPrefix  string        `validate:"required,len=1"` // one letter, counted in runes
	FallbackCityPrefix string        `validate:"required,len=1"`
	HTTPTimeout        time.Duration `validate:"gte=0"` // 0 means no timeout
	LogLevel           string        `validate:"oneof=debug info warn warning error"`
	LogFormat          string        `validate:"oneof=text json"`
	Environment        string        `validate:"required"`
	Version            string
}

// Load loads the configuration from environment variables.
// With nothing set it reproduces the stock behaviour: the public users
// endpoint, prefixes "C" then "L", and no request timeout.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		UsersURL:           getEnv(EnvUsersURL, DefaultUsersURL),
		InvalidURL:         getEnv(EnvInvalidURL, DefaultInvalidURL),
		PrimaryCityPrefix:  getEnv(EnvPrimaryCityPrefix, DefaultPrimaryCityPrefix),
		FallbackCityPrefix: getEnv(EnvFallbackCityPrefix, DefaultFallbackCityPrefix),
		LogLevel:           strings.ToLower(getEnv(EnvLogLevel, "info")),
		LogFormat:          strings.ToLower(getEnv(EnvLogFormat, "text")),
		Environment:        getEnv(EnvEnvironment, "dev"),
		Version:            getEnv(EnvVersion, "dev"),
	}

	timeout, err := getEnvAsDuration(EnvHTTPTimeout, 0)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and reports every offending field at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// IsDevelopment reports whether source locations should be added to logs.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses a Go duration ("30s") from the environment.
// A bare "0" disables the timeout.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
