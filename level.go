// FILE: lixenwraith/logcore/level.go
package logcore

import (
	"strings"
)

// Level is the severity of a record. Levels are totally ordered.
type Level int8

// Log level constants
const (
	// LevelUndefined is reserved as the drain shutdown sentinel and is never delivered to a sink
	LevelUndefined Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// String returns the upper-case label used by the formatters
func (l Level) String() string {
	switch l {
	case LevelUndefined:
		return "UNDEFINED"
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNDEFINED"
	}
}

// IsSevere reports whether records at this level trigger the producer-side flush wait
func (l Level) IsSevere() bool {
	return l >= LevelError
}

// ParseLevel converts a level name to its constant, case-insensitive
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelUndefined, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warning, error, fatal)", levelStr)
	}
}
