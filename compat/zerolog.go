// FILE: lixenwraith/logcore/compat/zerolog.go
package compat

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/logcore"
)

var _ zerolog.LevelWriter = (*ZerologWriter)(nil)

// ZerologWriter is a zerolog.LevelWriter that decodes zerolog's JSON events
// and submits them to a logcore pipeline.
//
//	zl := zerolog.New(compat.NewZerologWriter(core)).With().Timestamp().Logger()
type ZerologWriter struct {
	emitter      logcore.Emitter
	defaultLevel logcore.Level // for events without a level
}

// NewZerologWriter creates a writer that maps level-less events to LevelInfo
func NewZerologWriter(e logcore.Emitter) *ZerologWriter {
	return &ZerologWriter{emitter: e, defaultLevel: logcore.LevelInfo}
}

// Write implements io.Writer for events written without level information
func (w *ZerologWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter
func (w *ZerologWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	level := ZerologLevel(l)
	if level == logcore.LevelUndefined {
		level = w.defaultLevel
	}

	var event map[string]any
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		// Not JSON, e.g. a ConsoleWriter in between: pass the line through
		w.emitter.Log(level, string(bytes.TrimRight(p, "\n")))
		return len(p), nil
	}

	msg, _ := event[zerolog.MessageFieldName].(string)
	ts := time.Now()
	if raw, ok := event[zerolog.TimestampFieldName].(string); ok {
		if parsed, err := time.Parse(zerolog.TimeFieldFormat, raw); err == nil {
			ts = parsed
		}
	}
	delete(event, zerolog.MessageFieldName)
	delete(event, zerolog.LevelFieldName)
	delete(event, zerolog.TimestampFieldName)

	w.emitter.LogAt(level, ts, appendFields(msg, event))
	return len(p), nil
}

// ZerologLevel maps a zerolog level onto logcore, LevelUndefined for NoLevel and Disabled
func ZerologLevel(l zerolog.Level) logcore.Level {
	switch l {
	case zerolog.TraceLevel:
		return logcore.LevelTrace
	case zerolog.DebugLevel:
		return logcore.LevelDebug
	case zerolog.InfoLevel:
		return logcore.LevelInfo
	case zerolog.WarnLevel:
		return logcore.LevelWarning
	case zerolog.ErrorLevel:
		return logcore.LevelError
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return logcore.LevelFatal
	default:
		return logcore.LevelUndefined
	}
}
