// Package log provides structured logging for lanpy.
//
// Loggers are immutable from the caller's perspective: the With* methods return
// a configured copy. The package default logger writes text to stderr at warn
// level, so the lexer and parser, which only log at debug and trace level, are
// silent unless a caller hands them a more verbose logger.
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON})
//	timer := logger.StartTimer("tokenize")
//	defer timer.Stop()
package log
