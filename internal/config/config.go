package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timekeep application
type Config struct {
	Storage    StorageConfig
	Timer      TimerConfig
	Validation ValidationConfig
	Display    DisplayConfig
}

// StorageConfig holds durable-store configuration
type StorageConfig struct {
	Dir            string `env:"TK_STORE_DIR"`
	Filename       string `env:"TK_STORE_FILENAME"`
	DirPermissions uint32 `env:"TK_STORE_DIR_PERMISSIONS"`
}

// TimerConfig holds timer behavior configuration
type TimerConfig struct {
	TickInterval time.Duration `env:"TK_TIMER_TICK_INTERVAL"`
	HistoryLimit int           `env:"TK_TIMER_HISTORY_LIMIT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TK_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TK_VALIDATION_TASK_NAME_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TK_DISPLAY_TIME_FORMAT"`
	PageSize   int    `env:"TK_DISPLAY_PAGE_SIZE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStoreDir := filepath.Join(homeDir, ".timekeep")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultStoreDir,
			Filename:       "timekeep.db",
			DirPermissions: 0755,
		},
		Timer: TimerConfig{
			TickInterval: time.Second,
			HistoryLimit: 10,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04:05",
			PageSize:   10,
		},
	}
}

// GetStorePath returns the full path to the durable store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TK_STORE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TK_STORE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TK_STORE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	if interval := os.Getenv("TK_TIMER_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Timer.TickInterval = d
		}
	}
	if limit := os.Getenv("TK_TIMER_HISTORY_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Timer.HistoryLimit = n
		}
	}

	if minLen := os.Getenv("TK_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TK_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	if format := os.Getenv("TK_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if size := os.Getenv("TK_DISPLAY_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Display.PageSize = n
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "store directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "store filename cannot be empty"}
	}

	if c.Timer.TickInterval <= 0 {
		return &ConfigError{Field: "timer.tick_interval", Message: "tick interval must be positive"}
	}
	if c.Timer.HistoryLimit < 1 {
		return &ConfigError{Field: "timer.history_limit", Message: "history limit must be at least 1"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.PageSize < 1 {
		return &ConfigError{Field: "display.page_size", Message: "page size must be at least 1"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
