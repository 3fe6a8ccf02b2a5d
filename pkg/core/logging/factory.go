// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers for the command line tools
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/lanpy/pkg/core/config"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/utils/stringx"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, e.g. the command being run
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "text", "json" or "console" (default: text)
	Format string

	// Output writer (default: stderr, so stdout stays free for results)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  lplog.DefaultLevel().String(),
		Format: lplog.FormatText.String(),
	}
}

// FromConfig builds a logger config from the [log] section of a grammar file
func FromConfig(name string, cfg config.LogConfig) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	lc.Level = stringx.FirstNonBlank(cfg.Level, lc.Level)
	lc.Format = stringx.FirstNonBlank(cfg.Format, lc.Format)
	return lc
}

// NewLogger creates a new logger. Unknown levels fall back to the default
// level and unknown formats to text.
func NewLogger(cfg LoggerConfig) *lplog.Logger {
	level, err := lplog.ParseLevel(cfg.Level)
	if err != nil {
		level = lplog.DefaultLevel()
	}

	format, err := lplog.ParseFormat(cfg.Format)
	if err != nil {
		format = lplog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return lplog.NewWithConfig(lplog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}
