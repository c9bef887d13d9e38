package config

import (
	"os"
	"strconv"
	"time"

	"goroster/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Upload    UploadConfig
	Roster    RosterConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds upload handling limits
type UploadConfig struct {
	MaxUploadMB         int
	MaxConcurrentBuilds int
	ResultTTL           time.Duration
}

// RosterConfig holds roster generation defaults
type RosterConfig struct {
	HorizonDays int
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// MaxUploadBytes returns the upload size cap in bytes
func (u UploadConfig) MaxUploadBytes() int64 {
	return int64(u.MaxUploadMB) << 20
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Upload: UploadConfig{
			MaxUploadMB:         getEnvIntOrDefault("MAX_UPLOAD_MB", 50),
			MaxConcurrentBuilds: getEnvIntOrDefault("MAX_CONCURRENT_BUILDS", 4),
			ResultTTL:           time.Duration(getEnvIntOrDefault("RESULT_TTL_MINUTES", 60)) * time.Minute,
		},
		Roster: RosterConfig{
			HorizonDays: getEnvIntOrDefault("ROSTER_HORIZON_DAYS", 30),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if config.Upload.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Upload.MaxConcurrentBuilds <= 0 {
		return errors.ConfigInvalid("MAX_CONCURRENT_BUILDS must be positive")
	}
	if config.Upload.ResultTTL <= 0 {
		return errors.ConfigInvalid("RESULT_TTL_MINUTES must be positive")
	}
	if config.Roster.HorizonDays < 0 {
		return errors.ConfigInvalid("ROSTER_HORIZON_DAYS cannot be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
