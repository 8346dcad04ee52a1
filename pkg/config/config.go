package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// All environment variables are read here and nowhere else.
type Config struct {
	Env string // development, staging, production, test

	// Logging
	LogLevel  string
	LogFormat string // json, console, pretty

	// Report
	Report ReportConfig
}

// ReportConfig holds defaults for an analysis run
type ReportConfig struct {
	PolicyPath            string // optional YAML report policy
	SubtractTotalDiscount bool   // subtract a record's total_discount from total_amount
	TopProductsLimit      int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		Report: ReportConfig{
			PolicyPath:            getEnv("SALES_POLICY_PATH", ""),
			SubtractTotalDiscount: getEnvAsBool("SALES_SUBTRACT_TOTAL_DISCOUNT", true),
			TopProductsLimit:      getEnvAsInt("SALES_TOP_PRODUCTS_LIMIT", 10),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	switch c.Env {
	case "development", "staging", "production", "test":
	default:
		return fmt.Errorf("ENV must be one of: development, staging, production, test")
	}

	switch c.LogFormat {
	case "json", "console", "pretty":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console, pretty")
	}

	if c.Report.TopProductsLimit <= 0 {
		return fmt.Errorf("SALES_TOP_PRODUCTS_LIMIT must be > 0, got %d", c.Report.TopProductsLimit)
	}

	return nil
}

// loadEnvFile loads the first .env found next to the working directory or the executable
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
