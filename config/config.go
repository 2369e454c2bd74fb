// Package config holds the settings of the calculator's ambient stack:
// logging, terminal colors, the embedded NATS transport and timeouts.
// None of them change how an expression is evaluated.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// ColorMode controls colored Result/Error lines.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the application configuration.
type Config struct {
	// LogLevel is the framework log level: debug, info, warn or error (default: error)
	LogLevel string

	// LogFormat is the framework log format: text or json (default: text)
	LogFormat string

	// Color controls colored output on stdout (default: auto)
	Color ColorMode

	// NATSPort is the TCP port of the embedded NATS server. Zero keeps the
	// server in process without listening (default: 0)
	NATSPort int

	// EvaluateTimeout bounds a single evaluate service call
	EvaluateTimeout time.Duration

	// ShutdownTimeout bounds stopping all modules
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:        "error",
		LogFormat:       "text",
		Color:           ColorAuto,
		NATSPort:        0,
		EvaluateTimeout: 5 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithLogLevel sets the framework log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the framework log format.
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithColor sets the color mode.
func WithColor(mode ColorMode) Option {
	return func(c *Config) {
		c.Color = mode
	}
}

// WithNATSPort sets the embedded NATS server port.
func WithNATSPort(port int) Option {
	return func(c *Config) {
		c.NATSPort = port
	}
}

// WithEvaluateTimeout sets the timeout of a single evaluation call.
func WithEvaluateTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.EvaluateTimeout = d
	}
}

// WithShutdownTimeout sets the shutdown timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ShutdownTimeout = d
	}
}

// New returns DefaultConfig with opts applied.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Load builds the configuration from CALC_* environment variables.
// Invalid values are reported and the default is kept.
func Load() Config {
	return New(FromEnv(os.Getenv)...)
}

// FromEnv returns the options described by the environment lookup function.
func FromEnv(getenv func(string) string) []Option {
	var opts []Option

	if v := strings.ToLower(getenv("CALC_LOG_LEVEL")); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			opts = append(opts, WithLogLevel(v))
		default:
			log.Printf("Warning: invalid value for CALC_LOG_LEVEL: %s, using default", v)
		}
	}

	if v := strings.ToLower(getenv("CALC_LOG_FORMAT")); v != "" {
		switch v {
		case "text", "json":
			opts = append(opts, WithLogFormat(v))
		default:
			log.Printf("Warning: invalid value for CALC_LOG_FORMAT: %s, using default", v)
		}
	}

	if v := ColorMode(strings.ToLower(getenv("CALC_COLOR"))); v != "" {
		switch v {
		case ColorAuto, ColorAlways, ColorNever:
			opts = append(opts, WithColor(v))
		default:
			log.Printf("Warning: invalid value for CALC_COLOR: %s, using default", v)
		}
	}

	if port, ok := envInt(getenv, "CALC_NATS_PORT"); ok {
		opts = append(opts, WithNATSPort(port))
	}
	if d, ok := envDuration(getenv, "CALC_EVAL_TIMEOUT"); ok {
		opts = append(opts, WithEvaluateTimeout(d))
	}
	if d, ok := envDuration(getenv, "CALC_SHUTDOWN_TIMEOUT"); ok {
		opts = append(opts, WithShutdownTimeout(d))
	}

	return opts
}

func envInt(getenv func(string) string, key string) (int, bool) {
	value := getenv(key)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 || n > 65535 {
		log.Printf("Warning: invalid int value for %s: %s, using default", key, value)
		return 0, false
	}
	return n, true
}

func envDuration(getenv func(string) string, key string) (time.Duration, bool) {
	value := getenv(key)
	if value == "" {
		return 0, false
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid duration value for %s: %s, using default", key, value)
		return 0, false
	}
	return d, true
}
