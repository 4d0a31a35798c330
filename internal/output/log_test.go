package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLogging(cfg)
	Logger = log.NewWithOptions(&buf, log.Options{
		Level:           Logger.GetLevel(),
		ReportTimestamp: cfg.resolveTimestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	return &buf
}

// resolveTimestamps applies the same logic as SetupLogging for test verification.
func (c LogConfig) resolveTimestamps() bool {
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return c.Verbose
}

func TestSetupLoggingTimestampDefaultOff(t *testing.T) {
	buf := captureLog(LogConfig{})
	Logger.Info("hello")
	out := buf.String()
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"output should not start with a timestamp by default")
}

func TestSetupLoggingTimestampExplicitlyEnabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(true)})
	Logger.Info("test")
	assert.Regexp(t, `\d{1,2}:\d{2}:\d{2}`, buf.String(),
		"output should contain a timestamp when enabled")
}

func TestSetupLoggingVerboseEnablesTimestamps(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true})
	Logger.Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `\d{1,2}:\d{2}:\d{2}`, out, "verbose should enable timestamps")
}

func TestSetupLoggingExplicitTimestampsWinOverVerbose(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Logger.Debug("quiet-verbose")
	out := buf.String()
	assert.Contains(t, out, "quiet-verbose", "debug message should appear in verbose mode")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"explicit timestamps=false should win over verbose")
}

func TestSetupLoggingVerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger.GetLevel(), "verbose should set debug level")
}

func TestSetupLoggingDefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, Logger.GetLevel(), "default should be info level")
}

func TestCatalogLoggerInheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	catalogLog := CatalogLogger("components")
	assert.NotNil(t, catalogLog, "catalog logger should not be nil")
	assert.Equal(t, log.DebugLevel, catalogLog.GetLevel(), "catalog logger should inherit debug level")
}

func TestScopedLoggerCarriesContext(t *testing.T) {
	buf := captureLog(LogConfig{})
	scoped := ScopedLogger("session", "abc-123")
	scoped.Info("tick")
	assert.Contains(t, buf.String(), "abc-123", "scoped logger should carry its context")
}

func TestBoolPtr(t *testing.T) {
	trueVal := BoolPtr(true)
	falseVal := BoolPtr(false)
	assert.True(t, *trueVal)
	assert.False(t, *falseVal)
}
