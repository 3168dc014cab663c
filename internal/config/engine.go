package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EngineConfig holds process-level settings for the observatory control
// system.
type EngineConfig struct {
	// LogLevel is one of debug, info, warn, error
	// Default: info
	LogLevel string `env:"OCS_LOG_LEVEL" envDefault:"info"`

	// FacilityFile is an optional YAML file with telescopes, installed
	// configurations and unavailable dates
	FacilityFile string `env:"OCS_FACILITY_FILE"`

	// LiveViewURL is returned by the console live view command
	LiveViewURL string `env:"OCS_LIVE_VIEW_URL" envDefault:"http://localhost:8080/telescope-live"`

	// CommandRate is the sustained telescope commands per second
	// Set to 0 to disable limiting
	// Default: 5, Range: 0-100
	CommandRate float64 `env:"OCS_COMMAND_RATE" envDefault:"5"`

	// CommandBurst is the number of commands allowed back to back
	// Default: 5, Range: 1-100
	CommandBurst int `env:"OCS_COMMAND_BURST" envDefault:"5"`

	// MaxConcurrentCommands bounds in-flight telescope commands
	// Set to 0 for unbounded
	// Default: 1
	MaxConcurrentCommands int `env:"OCS_MAX_CONCURRENT_COMMANDS" envDefault:"1"`

	// EventLogCapacity is the number of lifecycle events kept in memory
	// Oldest events are dropped first; 0 keeps everything
	// Default: 1000, Range: 0 or 100-100000
	EventLogCapacity int `env:"OCS_EVENT_LOG_CAPACITY" envDefault:"1000"`

	// Offline starts the engine with plan creation refused
	// Default: false
	Offline bool `env:"OCS_OFFLINE" envDefault:"false"`
}

// DefaultEngineConfig returns the configuration used when no environment
// variables are set.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LogLevel:              "info",
		LiveViewURL:           "http://localhost:8080/telescope-live",
		CommandRate:           5,
		CommandBurst:          5,
		MaxConcurrentCommands: 1,
		EventLogCapacity:      1000,
	}
}

// Validate checks if the configuration has valid values
func (c EngineConfig) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	if strings.TrimSpace(c.LiveViewURL) == "" {
		return fmt.Errorf("live_view_url is required")
	}

	if c.CommandRate < 0 || c.CommandRate > 100 {
		return fmt.Errorf("command_rate must be between 0 and 100 (got %g)", c.CommandRate)
	}
	if c.CommandBurst < 1 || c.CommandBurst > 100 {
		return fmt.Errorf("command_burst must be between 1 and 100 (got %d)", c.CommandBurst)
	}
	if c.MaxConcurrentCommands < 0 {
		return fmt.Errorf("max_concurrent_commands cannot be negative (got %d)", c.MaxConcurrentCommands)
	}

	// 0 = unlimited, or 100-100000
	if c.EventLogCapacity < 0 {
		return fmt.Errorf("event_log_capacity cannot be negative (got %d)", c.EventLogCapacity)
	}
	if c.EventLogCapacity > 0 && c.EventLogCapacity < 100 {
		return fmt.Errorf("event_log_capacity must be 0 (unlimited) or >= 100 (got %d)", c.EventLogCapacity)
	}
	if c.EventLogCapacity > 100000 {
		return fmt.Errorf("event_log_capacity too large (got %d, max 100000)", c.EventLogCapacity)
	}

	return nil
}

// Level returns the slog level named by LogLevel. Call Validate first;
// unknown names map to info.
func (c EngineConfig) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// String returns a human-readable representation of the config
func (c EngineConfig) String() string {
	return fmt.Sprintf(
		"EngineConfig{LogLevel: %s, FacilityFile: %q, LiveViewURL: %s, "+
			"CommandRate: %g/s, CommandBurst: %d, MaxConcurrentCommands: %d, "+
			"EventLogCapacity: %d, Offline: %t}",
		c.LogLevel, c.FacilityFile, c.LiveViewURL,
		c.CommandRate, c.CommandBurst, c.MaxConcurrentCommands,
		c.EventLogCapacity, c.Offline,
	)
}

// EngineConfigFromEnv creates an EngineConfig from OCS_* environment
// variables, falling back to defaults.
//
// Returns an error if any environment variable has an invalid value.
func EngineConfigFromEnv() (EngineConfig, error) {
	var cfg EngineConfig
	if err := env.Parse(&cfg); err != nil {
		return DefaultEngineConfig(), fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid engine configuration from environment: %w", err)
	}
	return cfg, nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return level, fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", name)
	}
	return level, nil
}
