// FILE: lixenwraith/logcore/sink_test.go
package logcore

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the drain goroutine and the test to share
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines returns the non-empty lines written so far
func (b *syncBuffer) Lines() []string {
	s := strings.TrimRight(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// flushCounter records Flush calls
type flushCounter struct {
	syncBuffer
	flushes int
}

func (f *flushCounter) Flush() error {
	f.flushes++
	return nil
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

// sliceWriter is not comparable, identity checks must not panic on it
type sliceWriter []byte

func (s sliceWriter) Write(p []byte) (int, error) { return len(p), nil }

func testRecord(level Level, msg string) Record {
	return Record{Time: time.Now(), Level: level, Thread: "main", LineID: 1, Message: msg}
}

func TestSinkRegistry_LevelFilter(t *testing.T) {
	reg := NewSinkRegistry(nil)
	warn, errSink := &syncBuffer{}, &syncBuffer{}
	reg.AddSink(warn, LevelWarning, ConsoleFormatter)
	reg.AddSink(errSink, LevelError, ConsoleFormatter)

	reg.Dispatch(testRecord(LevelWarning, "careful"))

	assert.Equal(t, "careful\n", warn.String())
	assert.Empty(t, errSink.String())
}

func TestSinkRegistry_Isolation(t *testing.T) {
	fallback := &syncBuffer{}
	reg := NewSinkRegistry(fallback)

	panicking := func(w io.Writer, r Record) error { panic("formatter bug") }
	good := &syncBuffer{}
	reg.AddSink(&syncBuffer{}, LevelTrace, panicking)
	reg.AddSink(failingWriter{}, LevelTrace, nil)
	reg.AddSink(good, LevelTrace, ConsoleFormatter)

	for i := 0; i < 5; i++ {
		reg.Dispatch(testRecord(LevelInfo, "ok"))
	}

	assert.Len(t, good.Lines(), 5, "healthy sink receives every record")
	assert.Equal(t, uint64(10), reg.Failures())
	assert.Equal(t, uint64(5), reg.Dispatched())
	assert.Contains(t, fallback.String(), "logcore: sink")
	assert.Contains(t, fallback.String(), "formatter bug")
	assert.Contains(t, fallback.String(), "disk on fire")
}

func TestSinkRegistry_RemoveSink(t *testing.T) {
	reg := NewSinkRegistry(nil)
	a, b := &syncBuffer{}, &syncBuffer{}
	reg.AddSink(a, LevelTrace, nil)
	reg.AddSink(b, LevelTrace, nil)
	reg.AddSink(a, LevelTrace, nil)
	require.Equal(t, 3, reg.Len())

	assert.Equal(t, 2, reg.RemoveSink(a), "every registration of a is removed")
	assert.Equal(t, 1, reg.Len())
	assert.Zero(t, reg.RemoveSink(a), "absent writer is a no-op")

	reg.Dispatch(testRecord(LevelInfo, "x"))
	assert.Empty(t, a.String())
	assert.NotEmpty(t, b.String())

	t.Run("non-comparable writers", func(t *testing.T) {
		reg.AddSink(sliceWriter{}, LevelTrace, nil)
		assert.NotPanics(t, func() { reg.RemoveSink(sliceWriter{}) })
	})

	reg.RemoveAll()
	assert.Zero(t, reg.Len())
}

func TestSinkRegistry_FlushAndDefaults(t *testing.T) {
	reg := NewSinkRegistry(nil)
	fc := &flushCounter{}
	reg.AddSink(fc, LevelTrace, nil)
	reg.AddSink(nil, LevelTrace, nil)
	assert.Equal(t, 1, reg.Len(), "nil writer ignored")

	reg.Dispatch(testRecord(LevelInfo, "hello"))
	assert.Equal(t, 1, fc.flushes)
	assert.Contains(t, fc.String(), "| INFO | main | hello", "nil formatter selects standard")

	reg.Dispatch(testRecord(LevelUndefined, "sentinel"))
	assert.Equal(t, 1, fc.flushes, "undefined records are never delivered")
}

func TestSinkRegistry_DuplicatesReceiveCopies(t *testing.T) {
	reg := NewSinkRegistry(nil)
	buf := &syncBuffer{}
	reg.AddSink(buf, LevelTrace, ConsoleFormatter)
	reg.AddSink(buf, LevelTrace, ConsoleFormatter)

	reg.Dispatch(testRecord(LevelInfo, "twice"))
	assert.Equal(t, []string{"twice", "twice"}, buf.Lines())
}
