// FILE: lixenwraith/logcore/compat/zap.go
package compat

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/logcore"
)

var _ zapcore.Core = (*ZapCore)(nil)

// ZapCore is a zapcore.Core that submits entries to a logcore pipeline.
// Fields are flattened into the message as sorted key=value pairs.
type ZapCore struct {
	emitter logcore.Emitter
	enabler zapcore.LevelEnabler
	fields  []zapcore.Field
}

// NewZapCore creates a core accepting entries enabled by enab, all levels when enab is nil
func NewZapCore(e logcore.Emitter, enab zapcore.LevelEnabler) *ZapCore {
	if enab == nil {
		enab = zapcore.DebugLevel
	}
	return &ZapCore{emitter: e, enabler: enab}
}

// NewZapLogger wraps a ZapCore in a *zap.Logger
func NewZapLogger(e logcore.Emitter, enab zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	return zap.New(NewZapCore(e, enab), opts...)
}

// Enabled implements zapcore.LevelEnabler
func (z *ZapCore) Enabled(level zapcore.Level) bool {
	return z.enabler.Enabled(level)
}

// With returns a core carrying additional context fields
func (z *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *z
	clone.fields = make([]zapcore.Field, 0, len(z.fields)+len(fields))
	clone.fields = append(clone.fields, z.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds this core to ce when the entry's level is enabled
func (z *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if z.Enabled(ent.Level) {
		return ce.AddCore(ent, z)
	}
	return ce
}

// Write renders the entry and its fields into one record
func (z *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range z.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	msg := ent.Message
	if ent.LoggerName != "" {
		msg = ent.LoggerName + ": " + msg
	}
	z.emitter.LogAt(ZapLevel(ent.Level), ent.Time, appendFields(msg, enc.Fields))
	return nil
}

// Sync is a no-op, delivery is owned by the logcore drain goroutine
func (z *ZapCore) Sync() error {
	return nil
}

// ZapLevel maps a zap level onto logcore. DPanic, Panic and Fatal become LevelFatal.
func ZapLevel(l zapcore.Level) logcore.Level {
	switch {
	case l < zapcore.DebugLevel:
		return logcore.LevelTrace
	case l == zapcore.DebugLevel:
		return logcore.LevelDebug
	case l == zapcore.InfoLevel:
		return logcore.LevelInfo
	case l == zapcore.WarnLevel:
		return logcore.LevelWarning
	case l == zapcore.ErrorLevel:
		return logcore.LevelError
	default:
		return logcore.LevelFatal
	}
}
