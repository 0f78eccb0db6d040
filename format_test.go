// FILE: lixenwraith/logcore/format_test.go
package logcore

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatters tests the output of the built-in formatters
func TestFormatters(t *testing.T) {
	r := Record{
		Time:    time.Date(2024, 1, 1, 12, 0, 0, 123456000, time.UTC),
		Level:   LevelWarning,
		Thread:  "worker",
		LineID:  42,
		Message: "disk \"almost\" full",
	}

	t.Run("standard", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, StandardFormatter(&buf, r))
		assert.Equal(t, "42 | 2024-01-01 12:00:00.123456 | WARNING | worker | disk \"almost\" full\n", buf.String())
	})

	t.Run("standard custom layout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewStandardFormatter(time.RFC3339)(&buf, r))
		assert.True(t, strings.HasPrefix(buf.String(), "42 | 2024-01-01T12:00:00Z | "))
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ConsoleFormatter(&buf, r))
		assert.Equal(t, "disk \"almost\" full\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, JSONFormatter(&buf, r))
		require.True(t, strings.HasSuffix(buf.String(), "\n"))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, float64(42), result["id"])
		assert.Equal(t, "2024-01-01 12:00:00.123456", result["time"])
		assert.Equal(t, "WARNING", result["level"])
		assert.Equal(t, "worker", result["thread"])
		assert.Equal(t, "disk \"almost\" full", result["msg"])
	})

	t.Run("json escapes control characters", func(t *testing.T) {
		var buf bytes.Buffer
		cr := r
		cr.Message = "line1\nline2\x01\xff"
		require.NoError(t, JSONFormatter(&buf, cr))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "line1\nline2\x01\ufffd", result["msg"])
	})

	t.Run("terminal on a non-tty is plain standard", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewTerminalFormatter("", &buf)
		require.NoError(t, f(&buf, r))
		assert.NotContains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), "| WARNING |")
	})
}

func TestFormatterByName(t *testing.T) {
	for _, name := range []string{"", FormatStandard, FormatConsole, FormatJSON, FormatTerminal} {
		f, err := FormatterByName(name, "", &bytes.Buffer{})
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := FormatterByName("xml", "", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logcore: invalid format")
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelUndefined, "UNDEFINED"},
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
		{Level(99), "UNDEFINED"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelUndefined, LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
	assert.False(t, LevelWarning.IsSevere())
	assert.True(t, LevelError.IsSevere())
	assert.True(t, LevelFatal.IsSevere())
}
