package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// Console is where records go when File is disabled or Tee is set.
	// Defaults to os.Stderr.
	Console io.Writer

	File FileConfig
}

// FileConfig enables rotated file output.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Tee keeps console output alongside the file. Interactive hosts that own
	// the terminal leave it off.
	Tee bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name, falling back to info for unknown values.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger with the given configuration.
// The returned closer releases the log file and is never nil.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if cfg.File.Enabled && cfg.File.Path != "" {
		// Files always get JSON so they stay machine readable.
		file := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		writers = append(writers, file)
		closer = file
	}

	if len(writers) == 0 || cfg.File.Tee {
		writers = append(writers, consoleWriter(console, cfg))
	}

	var output io.Writer = writers[0]
	if len(writers) > 1 {
		output = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, closer
}

func consoleWriter(out io.Writer, cfg Config) io.Writer {
	if cfg.Format != "console" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
	}
}

// NewFromConfigValues builds a console-only logger from string settings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	logger, _ := New(cfg)
	return logger
}

// NewFromEnv creates a logger based on environment variables
// DOCKYARD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DOCKYARD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DOCKYARD_LOG_LEVEL"), os.Getenv("DOCKYARD_LOG_FORMAT"))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
