// FILE: lixenwraith/logcore/compat/logrus.go
package compat

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/logcore"
)

var _ logrus.Hook = (*LogrusHook)(nil)

// LogrusHook forwards logrus entries into a logcore pipeline.
// Install it with logger.AddHook and usually silence the logrus output
// with logger.SetOutput(io.Discard).
type LogrusHook struct {
	emitter logcore.Emitter
	levels  []logrus.Level
}

// NewLogrusHook creates a hook firing for levels, or for every level when none are given
func NewLogrusHook(e logcore.Emitter, levels ...logrus.Level) *LogrusHook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &LogrusHook{emitter: e, levels: levels}
}

// Levels implements logrus.Hook
func (h *LogrusHook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook
func (h *LogrusHook) Fire(entry *logrus.Entry) error {
	fields := make(map[string]any, len(entry.Data))
	for k, v := range entry.Data {
		fields[k] = v
	}
	h.emitter.LogAt(LogrusLevel(entry.Level), entry.Time, appendFields(entry.Message, fields))
	return nil
}

// LogrusLevel maps a logrus level onto logcore. Panic and Fatal become LevelFatal.
func LogrusLevel(l logrus.Level) logcore.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return logcore.LevelFatal
	case logrus.ErrorLevel:
		return logcore.LevelError
	case logrus.WarnLevel:
		return logcore.LevelWarning
	case logrus.InfoLevel:
		return logcore.LevelInfo
	case logrus.DebugLevel:
		return logcore.LevelDebug
	default:
		return logcore.LevelTrace
	}
}
