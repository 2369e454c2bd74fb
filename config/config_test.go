package config

import (
	"testing"
	"time"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "error" {
		t.Errorf("expected LogLevel 'error', got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected LogFormat 'text', got %q", cfg.LogFormat)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("expected Color 'auto', got %q", cfg.Color)
	}
	if cfg.NATSPort != 0 {
		t.Errorf("expected NATSPort 0 (no listener), got %d", cfg.NATSPort)
	}
	if cfg.EvaluateTimeout != 5*time.Second {
		t.Errorf("expected EvaluateTimeout 5s, got %v", cfg.EvaluateTimeout)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected ShutdownTimeout 30s, got %v", cfg.ShutdownTimeout)
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	cfg := New(
		WithLogLevel("debug"),
		WithLogFormat("json"),
		WithColor(ColorNever),
		WithNATSPort(14222),
		WithEvaluateTimeout(time.Second),
		WithShutdownTimeout(2*time.Second),
	)

	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LogFormat 'json', got %q", cfg.LogFormat)
	}
	if cfg.Color != ColorNever {
		t.Errorf("expected Color 'never', got %q", cfg.Color)
	}
	if cfg.NATSPort != 14222 {
		t.Errorf("expected NATSPort 14222, got %d", cfg.NATSPort)
	}
	if cfg.EvaluateTimeout != time.Second {
		t.Errorf("expected EvaluateTimeout 1s, got %v", cfg.EvaluateTimeout)
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("expected ShutdownTimeout 2s, got %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := New(FromEnv(envMap(map[string]string{
		"CALC_LOG_LEVEL":        "INFO",
		"CALC_LOG_FORMAT":       "json",
		"CALC_COLOR":            "Always",
		"CALC_NATS_PORT":        "4333",
		"CALC_EVAL_TIMEOUT":     "250ms",
		"CALC_SHUTDOWN_TIMEOUT": "10s",
	}))...)

	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel 'info', got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LogFormat 'json', got %q", cfg.LogFormat)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("expected Color 'always', got %q", cfg.Color)
	}
	if cfg.NATSPort != 4333 {
		t.Errorf("expected NATSPort 4333, got %d", cfg.NATSPort)
	}
	if cfg.EvaluateTimeout != 250*time.Millisecond {
		t.Errorf("expected EvaluateTimeout 250ms, got %v", cfg.EvaluateTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	cfg := New(FromEnv(envMap(map[string]string{
		"CALC_LOG_LEVEL":        "verbose",
		"CALC_LOG_FORMAT":       "xml",
		"CALC_COLOR":            "rainbow",
		"CALC_NATS_PORT":        "not-a-port",
		"CALC_EVAL_TIMEOUT":     "-1s",
		"CALC_SHUTDOWN_TIMEOUT": "soon",
	}))...)

	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestFromEnv_Empty(t *testing.T) {
	if opts := FromEnv(envMap(nil)); len(opts) != 0 {
		t.Errorf("expected no options, got %d", len(opts))
	}
}
