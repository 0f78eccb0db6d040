// FILE: lixenwraith/logcore/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/logcore"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet's logging.Logger calls into a logcore pipeline
type GnetAdapter struct {
	emitter      logcore.Emitter
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(e logcore.Emitter, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		emitter: e,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.emitter.Log(logcore.LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.emitter.Log(logcore.LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.emitter.Log(logcore.LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.emitter.Log(logcore.LevelError, fmt.Sprintf(format, args...))
}

// Fatalf logs at fatal level and triggers the fatal handler.
// Fatal records already wait for the queue to drain before returning.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.emitter.Log(logcore.LevelFatal, msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
