package config

import (
	"fmt"
	"time"
)

// RedisConfig holds Redis connection settings used for distributed locks.
type RedisConfig struct {
	// Addr is host:port of the Redis server. Empty disables Redis and uses in-process locks.
	Addr string
	// Password is the Redis AUTH password.
	Password string
	// DB is the Redis logical database.
	DB int
	// LockTTL bounds how long a lock survives a crashed holder.
	LockTTL time.Duration
}

// LoadRedisConfigFromEnv loads Redis configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:     GetEnv("REDIS_ADDR", ""),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvInt("REDIS_DB", 0),
		LockTTL:  GetEnvDuration("LOCK_TTL", 10*time.Second),
	}
}

// Enabled reports whether a Redis server is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Validate validates Redis configuration.
func (c RedisConfig) Validate() error {
	if c.DB < 0 {
		return fmt.Errorf("REDIS_DB must be non-negative")
	}
	if c.LockTTL <= 0 {
		return fmt.Errorf("LOCK_TTL must be greater than 0")
	}
	return nil
}
