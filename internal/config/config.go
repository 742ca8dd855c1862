// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/splitledger/internal/calculator"
)

// Config holds the server configuration.
type Config struct {
	// HTTP server
	Port            string
	CORSOrigin      string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Settlement algorithm: greedy or largest
	SettleStrategy string

	// problems found while reading the environment, reported by Validate
	loadErrs []string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		SettleStrategy: getEnv("SETTLE_STRATEGY", string(calculator.StrategyGreedy)),
	}

	timeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		cfg.loadErrs = append(cfg.loadErrs, err.Error())
	}
	cfg.ShutdownTimeout = timeout

	return cfg
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	errs := append([]string(nil), c.loadErrs...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if _, err := calculator.ParseStrategy(c.SettleStrategy); err != nil {
		errs = append(errs, err.Error())
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "shutdown timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Strategy returns the configured settlement strategy. Call Validate first.
func (c *Config) Strategy() calculator.Strategy {
	s, err := calculator.ParseStrategy(c.SettleStrategy)
	if err != nil {
		return calculator.StrategyGreedy
	}
	return s
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s '%s': must be a duration like 10s", key, value)
	}
	return d, nil
}
