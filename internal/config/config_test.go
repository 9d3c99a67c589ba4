package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			BcryptCost:      12,
			TombstoneKey:    DefaultTombstoneKey,
			TombstoneLength: 11,
		},
		Redis: RedisConfig{
			LockTTL: 10 * time.Second,
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "GIN_MODE", "BCRYPT_COST", "TOMBSTONE_LENGTH", "REDIS_ADDR", "MIGRATE_ON_START"} {
			t.Setenv(key, "")
		}

		cfg := LoadFromEnv()

		assert.Equal(t, ":8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, 12, cfg.Security.BcryptCost)
		assert.Equal(t, 11, cfg.Security.TombstoneLength)
		assert.False(t, cfg.Redis.Enabled())
		assert.True(t, cfg.MigrateOnStart)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv("SERVER_PORT", ":9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("GIN_MODE", "debug")
		t.Setenv("BCRYPT_COST", "10")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("LOCK_TTL", "3s")
		t.Setenv("MIGRATE_ON_START", "false")

		cfg := LoadFromEnv()

		assert.Equal(t, ":9090", cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, 10, cfg.Security.BcryptCost)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, 3*time.Second, cfg.Redis.LockTTL)
		assert.False(t, cfg.MigrateOnStart)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := validConfig()

		err := cfg.Validate()
		assert.NoError(t, err)
	})

	t.Run("invalid server config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 0

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server config validation failed")
	})

	t.Run("invalid logger config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "invalid"

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger config validation failed")
	})

	t.Run("invalid security config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Security.BcryptCost = 2

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "security config validation failed")
	})

	t.Run("invalid redis config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Redis.LockTTL = 0

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redis config validation failed")
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "invalid"

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid GIN_MODE")
	})

	t.Run("valid gin modes", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			cfg := validConfig()
			cfg.GinMode = mode

			err := cfg.Validate()
			assert.NoError(t, err, "mode %s should be valid", mode)
		}
	})
}

func TestSecurityConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    SecurityConfig
		wantError string
	}{
		{
			name:   "defaults",
			config: SecurityConfig{BcryptCost: 12, TombstoneKey: DefaultTombstoneKey, TombstoneLength: 11},
		},
		{
			name:      "cost too high",
			config:    SecurityConfig{BcryptCost: 32, TombstoneKey: DefaultTombstoneKey, TombstoneLength: 11},
			wantError: "BCRYPT_COST",
		},
		{
			name:      "empty tombstone key",
			config:    SecurityConfig{BcryptCost: 12, TombstoneKey: "", TombstoneLength: 11},
			wantError: "TOMBSTONE_KEY",
		},
		{
			name: "tombstone key longer than 64 bytes",
			config: SecurityConfig{
				BcryptCost:      12,
				TombstoneKey:    "0123456789012345678901234567890123456789012345678901234567890123456789",
				TombstoneLength: 11,
			},
			wantError: "TOMBSTONE_KEY",
		},
		{
			name:      "tombstone longer than the tax id column",
			config:    SecurityConfig{BcryptCost: 12, TombstoneKey: DefaultTombstoneKey, TombstoneLength: 21},
			wantError: "TOMBSTONE_LENGTH",
		},
		{
			name:   "tombstone at the tax id column size",
			config: SecurityConfig{BcryptCost: 12, TombstoneKey: DefaultTombstoneKey, TombstoneLength: 20},
		},
		{
			name:      "tombstone too short",
			config:    SecurityConfig{BcryptCost: 12, TombstoneKey: DefaultTombstoneKey, TombstoneLength: 4},
			wantError: "TOMBSTONE_LENGTH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestRedisConfig(t *testing.T) {
	t.Run("disabled without address", func(t *testing.T) {
		assert.False(t, RedisConfig{}.Enabled())
	})

	t.Run("negative db", func(t *testing.T) {
		err := RedisConfig{DB: -1, LockTTL: time.Second}.Validate()
		assert.Error(t, err)
	})
}
