package validation

import (
	"regexp"
	"strings"
	"time"

	"timekeep/internal/config"
	"timekeep/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	colorRegex *regexp.Regexp
	config     *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		colorRegex: regexp.MustCompile(`^#[0-9a-fA-F]{6}$`),
		config:     nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		colorRegex: regexp.MustCompile(`^#[0-9a-fA-F]{6}$`),
		config:     cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, v.getTaskNameMinLength(), v.getTaskNameMaxLength())
}

// getTaskNameMinLength returns the configured minimum task name length or default
func (v *Validator) getTaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1
}

// getTaskNameMaxLength returns the configured maximum task name length or default
func (v *Validator) getTaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidColor checks if a string is a hex color like "#4CAF50"
func (v *Validator) IsValidColor(color string) bool {
	return v.colorRegex.MatchString(color)
}

// IsValidDate checks if a string is a parseable calendar date
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

// IsValidClock checks if a string is a parseable HH:MM clock time
func (v *Validator) IsValidClock(s string) bool {
	_, err := time.Parse(domain.ClockLayout, s)
	return err == nil
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
