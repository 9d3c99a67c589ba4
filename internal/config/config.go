// Package config provides application configuration loaded from the environment.
package config

import (
	"fmt"
	"slices"
)

var ginModes = []string{"debug", "release", "test"}

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Security holds password hashing and tombstone configuration.
	Security SecurityConfig
	// Redis holds distributed lock backend configuration.
	Redis RedisConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:   LoadServerConfigFromEnv(),
		Logger:   LoadLoggerConfigFromEnv(),
		Security: LoadSecurityConfigFromEnv(),
		Redis:    LoadRedisConfigFromEnv(),
		GinMode:  GetEnv("GIN_MODE", "release"),

		MigrateOnStart: GetEnvBool("MIGRATE_ON_START", true),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Security.Validate(); err != nil {
		return fmt.Errorf("security config validation failed: %w", err)
	}

	if err := c.Redis.Validate(); err != nil {
		return fmt.Errorf("redis config validation failed: %w", err)
	}

	if !slices.Contains(ginModes, c.GinMode) {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
