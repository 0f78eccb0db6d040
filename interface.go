// FILE: interface.go
package logcore

import (
	"time"
)

// Emitter is the producer-side surface shared by *Core and *Producer.
// Adapters in the compat package accept an Emitter so they can be bound
// either to a core directly or to a named producer.
type Emitter interface {
	Log(level Level, msg string)
	LogAt(level Level, ts time.Time, msg string)
	NewRecorder(level Level) *Recorder
}

var (
	_ Emitter = (*Core)(nil)
	_ Emitter = (*Producer)(nil)
)

// Producer is a handle that stamps every record with a fixed thread label.
// It is safe for concurrent use and cheap to create.
type Producer struct {
	core *Core
	name string
}

// Producer returns a handle labelling its records with name
func (c *Core) Producer(name string) *Producer {
	if name == "" {
		name = DefaultThreadName
	}
	return &Producer{core: c, name: name}
}

// Name returns the thread label of the producer
func (p *Producer) Name() string {
	return p.name
}

// Log submits msg at level, timestamped now
func (p *Producer) Log(level Level, msg string) {
	p.core.emit(level, time.Now(), p.name, msg)
}

// LogAt submits msg at level with a caller-supplied timestamp
func (p *Producer) LogAt(level Level, ts time.Time, msg string) {
	p.core.emit(level, ts, p.name, msg)
}

// Logf formats and submits a message
func (p *Producer) Logf(level Level, format string, args ...any) {
	p.core.emit(level, time.Now(), p.name, sprintf(format, args...))
}

// NewRecorder starts a recorder whose record carries the producer's label
func (p *Producer) NewRecorder(level Level) *Recorder {
	return newRecorder(p.core, level, p.name)
}
