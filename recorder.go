// FILE: lixenwraith/logcore/recorder.go
package logcore

import (
	"fmt"
	"reflect"
	"time"
)

// Recorder accumulates text and submits it as a single record on Close.
// The record's timestamp is the moment the recorder was created, not the
// moment it was closed. A Recorder is owned by one goroutine and is not
// safe for concurrent use.
//
// A nil *Recorder is valid and discards everything, which is what the
// trace and debug constructors return in logcore_release builds.
//
//	rec := core.InfoRecorder()
//	defer rec.Close()
//	rec.Print("loaded", n, "entries from").Value(src)
type Recorder struct {
	core   *Core
	level  Level
	thread string
	start  time.Time
	buf    []byte
	closed bool
}

func newRecorder(c *Core, level Level, thread string) *Recorder {
	return &Recorder{
		core:   c,
		level:  level,
		thread: thread,
		start:  time.Now(),
	}
}

// NewRecorder starts a recorder at level labelled with the calling goroutine's thread name
func (c *Core) NewRecorder(level Level) *Recorder {
	return newRecorder(c, level, ThreadName())
}

// TraceRecorder returns a trace-level recorder, nil in logcore_release builds
func (c *Core) TraceRecorder() *Recorder {
	if !verboseEnabled {
		return nil
	}
	return c.NewRecorder(LevelTrace)
}

// DebugRecorder returns a debug-level recorder, nil in logcore_release builds
func (c *Core) DebugRecorder() *Recorder {
	if !verboseEnabled {
		return nil
	}
	return c.NewRecorder(LevelDebug)
}

func (c *Core) InfoRecorder() *Recorder    { return c.NewRecorder(LevelInfo) }
func (c *Core) WarningRecorder() *Recorder { return c.NewRecorder(LevelWarning) }
func (c *Core) ErrorRecorder() *Recorder   { return c.NewRecorder(LevelError) }
func (c *Core) FatalRecorder() *Recorder   { return c.NewRecorder(LevelFatal) }

// Scoped runs fn with a fresh recorder and closes it when fn returns, also on panic
func (c *Core) Scoped(level Level, fn func(r *Recorder)) {
	r := c.NewRecorder(level)
	defer r.Close()
	fn(r)
}

// Write appends p with control characters escaped. It implements io.Writer.
func (r *Recorder) Write(p []byte) (int, error) {
	if r == nil || r.closed {
		return len(p), nil
	}
	r.buf = appendEscaped(r.buf, p)
	return len(p), nil
}

// Print appends args separated by spaces
func (r *Recorder) Print(args ...any) *Recorder {
	if r == nil || r.closed {
		return r
	}
	r.buf = appendEscaped(r.buf, []byte(joinArgs(args)))
	return r
}

// Printf appends a formatted string
func (r *Recorder) Printf(format string, args ...any) *Recorder {
	if r == nil || r.closed {
		return r
	}
	r.buf = appendEscaped(r.buf, []byte(fmt.Sprintf(format, args...)))
	return r
}

// Value appends v. Structs, maps, slices and pointers are rendered by go-spew
// in compact form with sorted keys and without pointer addresses.
func (r *Recorder) Value(v any) *Recorder {
	if r == nil || r.closed {
		return r
	}
	var text []byte
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer, reflect.Interface:
		if _, ok := v.([]byte); ok {
			text = appendValue(nil, v)
			break
		}
		text = []byte(dumper.Sprintf("%v", v))
	default:
		text = appendValue(nil, v)
	}
	r.buf = appendEscaped(r.buf, text)
	return r
}

// Level returns the level the record will be submitted at
func (r *Recorder) Level() Level {
	if r == nil {
		return LevelUndefined
	}
	return r.level
}

// String returns the text accumulated so far
func (r *Recorder) String() string {
	if r == nil {
		return ""
	}
	return string(r.buf)
}

// Close submits the accumulated text as one record. Later calls do nothing.
func (r *Recorder) Close() error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true
	if r.core != nil {
		r.core.emit(r.level, r.start, r.thread, string(r.buf))
	}
	r.buf = nil
	return nil
}

// appendEscaped appends p, replacing control characters with two-character escapes
func appendEscaped(buf, p []byte) []byte {
	for _, b := range p {
		switch b {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\a':
			buf = append(buf, '\\', 'a')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\v':
			buf = append(buf, '\\', 'v')
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
