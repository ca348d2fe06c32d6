package logger

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleLoggerDefaultsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected string
	}{
		{"empty defaults to info", "", "info"},
		{"invalid defaults to info", "verbose", "info"},
		{"valid level kept", "debug", "debug"},
		{"case insensitive", "WARN", "warn"},
		{"whitespace trimmed", "  error  ", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := NewConsoleLogger(&bytes.Buffer{}, tt.level)
			assert.Equal(t, tt.expected, cl.logLevel)
		})
	}
}

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "warn")

	cl.LogDebug("debug message")
	cl.LogInfo("info message")
	cl.LogWarn("warn message")
	cl.LogError("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogInfo("hello")

	// Expect "[HH:MM:SS] [INFO] hello\n" with no color codes for a buffer writer
	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] hello\n$`)
	require.Regexp(t, pattern, buf.String())
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "debug")

	// Must not panic
	cl.LogDebug("discarded")
	cl.LogInfo("discarded")
	cl.LogWarn("discarded")
	cl.LogError("discarded")
}

func TestNoOpLogger(t *testing.T) {
	n := NewNoOpLogger()
	require.NotNil(t, n)

	n.LogDebug("x")
	n.LogInfo("x")
	n.LogWarn("x")
	n.LogError("x")
}
