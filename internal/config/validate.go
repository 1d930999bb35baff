package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "config validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks that configured timezones exist in the timezone database.
func Validate(cfg Config) error {
	var errs ValidationErrors

	if cfg.DefaultTimezone != "" {
		if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
			errs = append(errs, ValidationError{Field: "LOTTERY_DEFAULT_TIMEZONE", Message: err.Error()})
		}
	}
	if cfg.InputTimezone != "" {
		if _, err := time.LoadLocation(cfg.InputTimezone); err != nil {
			errs = append(errs, ValidationError{Field: "LOTTERY_INPUT_TIMEZONE", Message: err.Error()})
		}
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, ValidationError{Field: "GIN_MODE", Message: fmt.Sprintf("unknown mode %q", cfg.GinMode)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
