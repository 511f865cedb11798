package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the helpdesk.
type Config struct {
	App       AppConfig
	Dashboard DashboardConfig
	Logger    LoggerConfig
	Seed      SeedConfig
}

// AppConfig controls application level behavior.
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// DashboardConfig controls the read-only HTTP dashboard surface.
type DashboardConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// LoggerConfig configures logging behavior. The terminal UI owns stdout,
// so logs go to stderr or to File when set.
type LoggerConfig struct {
	Level string
	File  string
}

// SeedConfig controls demo data loading.
type SeedConfig struct {
	Demo bool
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "helpdesk"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Dashboard: DashboardConfig{
			Enabled: getEnvAsBool("DASHBOARD_ENABLED", true),
			Host:    getEnv("DASHBOARD_HOST", "127.0.0.1"),
			Port:    getEnvAsInt("DASHBOARD_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Seed: SeedConfig{
			Demo: getEnvAsBool("SEED_DEMO_DATA", true),
		},
	}

	return cfg, nil
}

// Addr returns the dashboard bind address.
func (d DashboardConfig) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
