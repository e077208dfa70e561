package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version is the debuglog release string.
const Version = "0.1.0"

// Sink names accepted in DEBUGLOG_OUTPUT.
const (
	SinkStderr = "stderr"
	SinkStdout = "stdout"
	SinkFile   = "file"
)

// Config holds all debuglog configuration.
type Config struct {
	Output   OutputConfig
	Render   RenderConfig
	LogLevel string // operational slog level: "debug", "info", "warn", "error"
}

// OutputConfig holds debug line destination settings.
type OutputConfig struct {
	Sinks       []string // any of "stderr", "stdout", "file"
	FilePath    string   // ".gz" suffix enables compression
	FileMaxSize int64    // rotation threshold in bytes, 0 = never
}

// RenderConfig holds line rendering settings.
type RenderConfig struct {
	Normalization string // "none", "nfc", "nfd", "nfkc", "nfkd"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Output: OutputConfig{
			Sinks:       splitList(getenv("DEBUGLOG_OUTPUT", SinkStderr)),
			FilePath:    getenv("DEBUGLOG_FILE", "debuglog.log"),
			FileMaxSize: getenvInt64("DEBUGLOG_FILE_MAX_SIZE", 0),
		},
		Render: RenderConfig{
			Normalization: getenv("DEBUGLOG_NORMALIZE", "none"),
		},
		LogLevel: getenv("DEBUGLOG_LOG_LEVEL", "warn"),
	}
}

// Validate checks the configuration and returns every problem found,
// joined into one error.
func (c Config) Validate() error {
	var errs []error

	if len(c.Output.Sinks) == 0 {
		errs = append(errs, errors.New("DEBUGLOG_OUTPUT: at least one sink is required"))
	}
	for _, s := range c.Output.Sinks {
		switch s {
		case SinkStderr, SinkStdout:
		case SinkFile:
			if c.Output.FilePath == "" {
				errs = append(errs, errors.New("DEBUGLOG_FILE: file sink requires a path"))
			}
		default:
			errs = append(errs, fmt.Errorf("DEBUGLOG_OUTPUT: unknown sink %q", s))
		}
	}
	if c.Output.FileMaxSize < 0 {
		errs = append(errs, fmt.Errorf("DEBUGLOG_FILE_MAX_SIZE: must be >= 0, got %d", c.Output.FileMaxSize))
	}

	switch strings.ToLower(c.Render.Normalization) {
	case "", "none", "nfc", "nfd", "nfkc", "nfkd":
	default:
		errs = append(errs, fmt.Errorf("DEBUGLOG_NORMALIZE: unknown normalization %q", c.Render.Normalization))
	}

	return errors.Join(errs...)
}

// HasSink reports whether name is among the configured sinks.
func (c Config) HasSink(name string) bool {
	for _, s := range c.Output.Sinks {
		if s == name {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// splitList splits a comma-separated value, trimming and lowercasing
// entries and dropping empty ones.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
