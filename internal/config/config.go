package config

import (
	"os"
	"strconv"

	"github.com/google/logger"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the draw service.
// The draw rules themselves are fixed and live in the services package.
type Config struct {
	// DefaultTimezone is used for callers that do not name a timezone.
	// Empty means the services fallback applies.
	DefaultTimezone string `json:"default_timezone"`

	// InputTimezone is the location naive reference timestamps are read in.
	// Empty means the system local zone.
	InputTimezone string `json:"input_timezone"`

	HTTPAddr   string `json:"http_addr"`
	GinMode    string `json:"gin_mode"`
	// LogVerbose copies INFO and WARNING logs to stdout in server mode.
	// The CLI ignores it so stdout carries only result lines.
	LogVerbose bool `json:"log_verbose"`
}

// LoadDotEnv merges an optional .env file from the working directory into the
// environment. A missing file is not an error. It does not log, so it can run
// before the logger is initialized.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Verbose reports whether LOG_VERBOSE is set to a true value.
func Verbose() bool {
	b, _ := strconv.ParseBool(os.Getenv("LOG_VERBOSE"))
	return b
}

// Load reads configuration from the environment. Call LoadDotEnv first to
// pick up a .env file.
func Load() Config {
	cfg := Config{
		DefaultTimezone: os.Getenv("LOTTERY_DEFAULT_TIMEZONE"),
		InputTimezone:   os.Getenv("LOTTERY_INPUT_TIMEZONE"),
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		GinMode:         os.Getenv("GIN_MODE"),
	}

	if v := os.Getenv("LOG_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogVerbose = b
		} else {
			logger.Warningf("config: invalid LOG_VERBOSE %q, using false", v)
		}
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}

	return cfg
}
