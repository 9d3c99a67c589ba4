package config

import (
	"fmt"
	"slices"
	"time"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error. It also drives SQL logging.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
	// SlowQuery is the duration above which a SQL statement is logged as slow.
	// Zero disables slow query warnings.
	SlowQuery time.Duration
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:     GetEnv("LOG_LEVEL", "info"),
		Format:    GetEnv("LOG_FORMAT", "json"),
		Output:    GetEnv("LOG_OUTPUT", "stdout"),
		SlowQuery: GetEnvDuration("LOG_SLOW_QUERY", 200*time.Millisecond),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be one of %v)", c.Level, logLevels)
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be one of %v)", c.Format, logFormats)
	}
	if c.SlowQuery < 0 {
		return fmt.Errorf("LOG_SLOW_QUERY must be non-negative")
	}
	return nil
}

// IsProduction reports whether the production zap preset applies: JSON
// output above debug level.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
