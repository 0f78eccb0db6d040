// FILE: lixenwraith/logcore/builder.go
package logcore

import (
	"io"
)

// pendingSink is a sink registered by Build before the core starts
type pendingSink struct {
	w      io.Writer
	level  Level
	format Formatter
}

// Builder provides a fluent API for building cores.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg      *Config
	sinks    []pendingSink
	fallback io.Writer
	err      error // Accumulate errors for deferred handling
}

// NewBuilder creates a new builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// FromConfig starts the builder from a copy of cfg instead of the defaults.
func (b *Builder) FromConfig(cfg *Config) *Builder {
	if cfg != nil {
		b.cfg = cfg.Clone()
	}
	return b
}

// Build creates an inactive Core with the configured settings and sinks.
func (b *Builder) Build() (*Core, error) {
	if b.err != nil {
		return nil, b.err
	}

	core, err := New(b.cfg)
	if err != nil {
		return nil, err
	}

	if b.fallback != nil {
		core.SetFallbackWriter(b.fallback)
	}
	for _, s := range b.sinks {
		core.AddSink(s.w, s.level, s.format)
	}

	return core, nil
}

// QueueCapacity sets the number of records buffered before the oldest is evicted.
func (b *Builder) QueueCapacity(capacity int64) *Builder {
	b.cfg.QueueCapacity = capacity
	return b
}

// SevereFlushTimeoutMs sets how long error and fatal records wait for the queue to drain.
func (b *Builder) SevereFlushTimeoutMs(ms int64) *Builder {
	b.cfg.SevereFlushTimeoutMs = ms
	return b
}

// DefaultSink selects the sink Start registers when none exists: stderr, stdout or none.
func (b *Builder) DefaultSink(target string) *Builder {
	b.cfg.DefaultSink = target
	return b
}

// DefaultLevel sets the minimum level of the default sink.
func (b *Builder) DefaultLevel(level Level) *Builder {
	b.cfg.DefaultLevel = level.String()
	return b
}

// DefaultLevelString sets the minimum level of the default sink from a string.
func (b *Builder) DefaultLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.DefaultLevel = level
	return b
}

// Format sets the formatter of the default and file sinks.
func (b *Builder) Format(format string) *Builder {
	b.cfg.DefaultFormat = format
	return b
}

// TimestampFormat sets the time layout used by the standard, json and terminal formatters.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// File enables the owned file sink.
func (b *Builder) File(path string, level Level, keep int64) *Builder {
	b.cfg.FilePath = path
	b.cfg.FileLevel = level.String()
	b.cfg.FileKeep = keep
	return b
}

// FileMaxSizeMB switches the file sink to size-based rotation.
func (b *Builder) FileMaxSizeMB(size int64) *Builder {
	b.cfg.FileMaxSizeMB = size
	return b
}

// HeartbeatIntervalS enables periodic statistics records.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// InternalErrorsToStderr toggles reporting of sink failures to stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Fallback sends sink failure reports to w instead of stderr.
func (b *Builder) Fallback(w io.Writer) *Builder {
	b.fallback = w
	return b
}

// Sink registers an additional sink on the built core.
func (b *Builder) Sink(w io.Writer, level Level, f Formatter) *Builder {
	b.sinks = append(b.sinks, pendingSink{w: w, level: level, format: f})
	return b
}

// Example usage:
// core, err := logcore.NewBuilder().
//
//	QueueCapacity(4096).
//	DefaultLevelString("debug").
//	File("/var/log/app/app.log", logcore.LevelTrace, 5).
//	Build()
//
// if err == nil {
//
//	 core.Start()
//	 defer core.Finish()
//	 core.Info("Core initialized successfully")
//
// }
