// Package output provides terminal output utilities: logging, styles,
// formats, tables, trees, and diff rendering for the shipwright CLI.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig carries logging setup resolved from flags and config.
type LogConfig struct {
	// Verbose enables debug-level logging with caller reporting.
	Verbose bool

	// Timestamps toggles timestamp prefixes. Nil means default (off unless
	// verbose).
	Timestamps *bool
}

// BoolPtr returns a pointer to b, for optional LogConfig fields.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := cfg.Verbose
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
	})
}

// ScopedLogger returns a logger carrying fixed key-value context, for
// per-catalog or per-connection scoping.
func ScopedLogger(keyvals ...interface{}) *log.Logger {
	return Logger.With(keyvals...)
}

// CatalogLogger returns a logger scoped to one catalog.
func CatalogLogger(name string) *log.Logger {
	return Logger.With("catalog", name)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
