// FILE: lixenwraith/logcore/logger.go
package logcore

import (
	"time"
)

// Trace logs args joined by spaces at trace level. Compiled out under logcore_release.
func (c *Core) Trace(args ...any) {
	if !verboseEnabled {
		return
	}
	c.logArgs(LevelTrace, args)
}

// Debug logs args joined by spaces at debug level. Compiled out under logcore_release.
func (c *Core) Debug(args ...any) {
	if !verboseEnabled {
		return
	}
	c.logArgs(LevelDebug, args)
}

// Info logs args joined by spaces at info level.
func (c *Core) Info(args ...any) {
	c.logArgs(LevelInfo, args)
}

// Warning logs args joined by spaces at warning level.
func (c *Core) Warning(args ...any) {
	c.logArgs(LevelWarning, args)
}

// Error logs args joined by spaces at error level, then waits briefly for the queue to drain.
func (c *Core) Error(args ...any) {
	c.logArgs(LevelError, args)
}

// Fatal logs at fatal level. It does not exit the process.
func (c *Core) Fatal(args ...any) {
	c.logArgs(LevelFatal, args)
}

// Tracef logs a formatted message at trace level.
func (c *Core) Tracef(format string, args ...any) {
	if !verboseEnabled {
		return
	}
	c.logf(LevelTrace, format, args)
}

// Debugf logs a formatted message at debug level.
func (c *Core) Debugf(format string, args ...any) {
	if !verboseEnabled {
		return
	}
	c.logf(LevelDebug, format, args)
}

// Infof logs a formatted message at info level.
func (c *Core) Infof(format string, args ...any) {
	c.logf(LevelInfo, format, args)
}

// Warningf logs a formatted message at warning level.
func (c *Core) Warningf(format string, args ...any) {
	c.logf(LevelWarning, format, args)
}

// Errorf logs a formatted message at error level.
func (c *Core) Errorf(format string, args ...any) {
	c.logf(LevelError, format, args)
}

// Fatalf logs a formatted message at fatal level. It does not exit the process.
func (c *Core) Fatalf(format string, args ...any) {
	c.logf(LevelFatal, format, args)
}

func (c *Core) logArgs(level Level, args []any) {
	c.emit(level, time.Now(), ThreadName(), joinArgs(args))
}

func (c *Core) logf(level Level, format string, args []any) {
	c.emit(level, time.Now(), ThreadName(), sprintf(format, args...))
}
