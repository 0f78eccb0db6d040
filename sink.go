// FILE: lixenwraith/logcore/sink.go
package logcore

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Formatter renders a record onto a writer
type Formatter func(w io.Writer, r Record) error

// Sink is a registered output: a writer, the minimum level it accepts and its formatter
type Sink struct {
	Writer   io.Writer
	MinLevel Level
	Format   Formatter
}

// flusher is satisfied by buffered writers such as *bufio.Writer and *FileSink
type flusher interface {
	Flush() error
}

// syncer is satisfied by zap-style WriteSyncers
type syncer interface {
	Sync() error
}

// SinkRegistry is the thread-safe list of sinks a core dispatches to.
// Mutation and dispatch share one mutex, so a sink removed by RemoveSink
// receives nothing after the call returns.
type SinkRegistry struct {
	mu       sync.Mutex
	sinks    []Sink
	fallback io.Writer // receives "logcore: sink ..." failure reports, nil disables them

	count      atomic.Int64 // len(sinks), readable while Dispatch holds mu
	dispatched atomic.Uint64
	failures   atomic.Uint64
}

// NewSinkRegistry creates an empty registry reporting sink failures to fallback.
// A nil fallback silences the reports, failures are still counted.
func NewSinkRegistry(fallback io.Writer) *SinkRegistry {
	return &SinkRegistry{fallback: fallback}
}

// AddSink appends a sink. Duplicates are allowed and each receives its own copy.
// A nil formatter selects StandardFormatter.
func (s *SinkRegistry) AddSink(w io.Writer, minLevel Level, f Formatter) {
	if w == nil {
		return
	}
	if f == nil {
		f = StandardFormatter
	}
	s.mu.Lock()
	s.sinks = append(s.sinks, Sink{Writer: w, MinLevel: minLevel, Format: f})
	s.count.Store(int64(len(s.sinks)))
	s.mu.Unlock()
}

// RemoveSink removes every sink registered with writer w.
// Writers are compared by identity, no-op if none match.
func (s *SinkRegistry) RemoveSink(w io.Writer) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sinks[:0]
	removed := 0
	for _, sk := range s.sinks {
		if sameWriter(sk.Writer, w) {
			removed++
			continue
		}
		kept = append(kept, sk)
	}
	// Release references held by the tail
	for i := len(kept); i < len(s.sinks); i++ {
		s.sinks[i] = Sink{}
	}
	s.sinks = kept
	s.count.Store(int64(len(kept)))
	return removed
}

// SetFallback replaces the writer receiving sink failure reports
func (s *SinkRegistry) SetFallback(w io.Writer) {
	s.mu.Lock()
	s.fallback = w
	s.mu.Unlock()
}

// RemoveAll drops every sink
func (s *SinkRegistry) RemoveAll() {
	s.mu.Lock()
	s.sinks = nil
	s.count.Store(0)
	s.mu.Unlock()
}

// Len returns the number of registered sinks without waiting for an in-flight Dispatch
func (s *SinkRegistry) Len() int {
	return int(s.count.Load())
}

// Dispatch delivers r to every sink whose minimum level it meets.
// A failing or panicking sink is reported and skipped, the remaining sinks still run.
func (s *SinkRegistry) Dispatch(r Record) {
	if r.Level == LevelUndefined {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sinks {
		sk := &s.sinks[i]
		if r.Level < sk.MinLevel {
			continue
		}
		if err := s.deliver(sk, r); err != nil {
			s.failures.Add(1)
			s.report(sk, r, err)
		}
	}
	s.dispatched.Add(1)
}

// deliver formats and flushes one record to one sink, converting a panic to an error
func (s *SinkRegistry) deliver(sk *Sink, r Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	if err = sk.Format(sk.Writer, r); err != nil {
		return err
	}
	switch w := sk.Writer.(type) {
	case flusher:
		return w.Flush()
	case *os.File:
		// Unbuffered, an fsync per record would stall the drain goroutine
	case syncer:
		return w.Sync()
	}
	return nil
}

// report writes a diagnostic about a failed sink to the fallback stream
func (s *SinkRegistry) report(sk *Sink, r Record, err error) {
	if s.fallback == nil {
		return
	}
	// The fallback write is best effort, nothing else to report to
	fmt.Fprintf(s.fallback, "logcore: sink %T failed on record %d: %v\n", sk.Writer, r.LineID, err)
}

// Failures returns how many sink deliveries have failed
func (s *SinkRegistry) Failures() uint64 {
	return s.failures.Load()
}

// Dispatched returns how many records went through Dispatch
func (s *SinkRegistry) Dispatched() uint64 {
	return s.dispatched.Load()
}

// sameWriter compares writer identity without panicking on non-comparable dynamic types
func sameWriter(a, b io.Writer) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
