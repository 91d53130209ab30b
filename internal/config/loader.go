package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StoreDir      *string
	StoreFilename *string

	TickInterval *time.Duration
	HistoryLimit *int

	TimeFormat *string
	PageSize   *int
}

// ApplyOverrides applies command line overrides to the configuration
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StoreDir != nil {
		config.Storage.Dir = *overrides.StoreDir
	}
	if overrides.StoreFilename != nil {
		config.Storage.Filename = *overrides.StoreFilename
	}

	if overrides.TickInterval != nil {
		config.Timer.TickInterval = *overrides.TickInterval
	}
	if overrides.HistoryLimit != nil {
		config.Timer.HistoryLimit = *overrides.HistoryLimit
	}

	if overrides.TimeFormat != nil {
		config.Display.TimeFormat = *overrides.TimeFormat
	}
	if overrides.PageSize != nil {
		config.Display.PageSize = *overrides.PageSize
	}
}
