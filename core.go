// FILE: lixenwraith/logcore/core.go
package logcore

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Core is an asynchronous logging pipeline: producers enqueue records into a
// bounded queue and one drain goroutine fans them out to the registered sinks.
// The zero value is not usable, construct with New or Builder.
type Core struct {
	currentConfig atomic.Pointer[Config]
	lifecycleMu   sync.Mutex // serializes Start, Finish, ApplyConfig and straggler draining

	queue  atomic.Pointer[BoundedQueue[Record]]
	sinks  *SinkRegistry
	lineID atomic.Uint64
	active atomic.Bool
	done   chan struct{} // closed by the drain goroutine on exit

	severeTimeout  atomic.Int64 // nanoseconds
	customFallback atomic.Bool  // set by SetFallbackWriter, survives ApplyConfig

	fileSink   io.WriteCloser // owned, opened by Start, closed by Finish
	fileOpened bool           // rotation happens only on the first open
	heartbeat  *heartbeat

	stats coreStats
}

// New creates an inactive core. A nil config selects DefaultConfig.
func New(cfg *Config) (*Core, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	c := &Core{
		sinks: NewSinkRegistry(fallbackWriter(cfg)),
	}
	c.currentConfig.Store(cfg)
	c.queue.Store(NewBoundedQueue[Record](int(cfg.QueueCapacity)))
	c.severeTimeout.Store(int64(cfg.SevereFlushTimeout()))
	return c, nil
}

// ApplyConfig replaces the configuration of an inactive core.
// A change in queue capacity replaces the queue.
func (c *Core) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.active.Load() {
		return fmtErrorf("cannot apply configuration while the core is active, call Finish first")
	}

	cfg = cfg.Clone()
	old := c.getConfig()
	if cfg.QueueCapacity != old.QueueCapacity {
		prev := c.queue.Load()
		c.queue.Store(NewBoundedQueue[Record](int(cfg.QueueCapacity)))
		c.drainPending(prev)
	}
	if cfg.FilePath != old.FilePath {
		c.fileOpened = false
	}
	if !c.customFallback.Load() || cfg.InternalErrorsToStderr != old.InternalErrorsToStderr {
		c.sinks.SetFallback(fallbackWriter(cfg))
		c.customFallback.Store(false)
	}
	c.severeTimeout.Store(int64(cfg.SevereFlushTimeout()))
	c.currentConfig.Store(cfg)
	return nil
}

// GetConfig returns a copy of the current configuration
func (c *Core) GetConfig() *Config {
	return c.getConfig().Clone()
}

// Start spawns the drain goroutine. No-op if the core is already active.
// When no sink is registered the configured default sink is added first.
func (c *Core) Start() error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.active.Load() {
		return nil
	}

	cfg := c.getConfig()

	if c.sinks.Len() == 0 {
		if err := c.addDefaultSink(cfg); err != nil {
			return err
		}
	}

	if err := c.openFileSink(cfg); err != nil {
		return err
	}

	q := c.queue.Load()
	done := make(chan struct{})
	c.done = done
	c.stats.startTime.Store(time.Now())
	c.active.Store(true)
	go c.drain(q, done)

	if cfg.HeartbeatIntervalS > 0 {
		c.heartbeat = c.startHeartbeat(time.Duration(cfg.HeartbeatIntervalS) * time.Second)
	}
	return nil
}

// Finish stops accepting asynchronous records, lets the drain goroutine
// deliver everything enqueued before the call, and joins it. No-op if inactive.
// Records logged after Finish are dispatched synchronously.
func (c *Core) Finish() error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if !c.active.Load() {
		return nil
	}

	// Heartbeat first: once inactive its records would need lifecycleMu
	if c.heartbeat != nil {
		c.heartbeat.stop()
		c.heartbeat = nil
	}

	c.active.Store(false)
	q := c.queue.Load()
	// A full queue cannot leave the drain goroutine parked in Dequeue, so the
	// sentinel is only needed when there is room and must not evict a record
	q.Offer(sentinel)
	<-c.done

	// Anything a racing producer enqueued after the drain goroutine's last look
	c.drainPending(q)

	return c.closeFileSink()
}

// IsActive reports whether the drain goroutine is running
func (c *Core) IsActive() bool {
	return c.active.Load()
}

// Log submits msg at level, labelled with the calling goroutine's thread name
func (c *Core) Log(level Level, msg string) {
	c.emit(level, time.Now(), ThreadName(), msg)
}

// LogAt submits msg at level with a caller-supplied timestamp
func (c *Core) LogAt(level Level, ts time.Time, msg string) {
	c.emit(level, ts, ThreadName(), msg)
}

// AddSink registers w for records at or above minLevel. A nil formatter selects StandardFormatter.
func (c *Core) AddSink(w io.Writer, minLevel Level, f Formatter) {
	c.sinks.AddSink(w, minLevel, f)
}

// RemoveSink unregisters every sink using w
func (c *Core) RemoveSink(w io.Writer) {
	c.sinks.RemoveSink(w)
}

// RemoveAllSinks unregisters every sink, including the default one
func (c *Core) RemoveAllSinks() {
	c.sinks.RemoveAll()
}

// SetFallbackWriter redirects sink failure reports, nil silences them.
// The writer is kept by later configuration changes unless internal_errors_to_stderr changes.
func (c *Core) SetFallbackWriter(w io.Writer) {
	c.sinks.SetFallback(w)
	c.customFallback.Store(true)
}

// emit builds the record and routes it through the queue or, while inactive, straight to the sinks
func (c *Core) emit(level Level, ts time.Time, thread, msg string) {
	if level <= LevelUndefined || level > LevelFatal {
		return
	}
	r := c.newRecord(level, ts, thread, msg)

	if !c.active.Load() {
		c.sinks.Dispatch(r)
		return
	}

	q := c.queue.Load()
	if q.Enqueue(r) {
		c.stats.evicted.Add(1)
	}
	c.stats.enqueued.Add(1)

	if !c.active.Load() {
		// Finish ran between the check and the enqueue
		c.lifecycleMu.Lock()
		if !c.active.Load() {
			c.drainPending(q)
		}
		c.lifecycleMu.Unlock()
		return
	}

	if level.IsSevere() {
		q.WaitUntilEmpty(time.Duration(c.severeTimeout.Load()))
	}
}

// drainPending synchronously dispatches whatever is left in q, lifecycleMu must be held
func (c *Core) drainPending(q *BoundedQueue[Record]) {
	for {
		r, ok := q.TryDequeue()
		if !ok {
			return
		}
		c.dispatch(r)
	}
}

// addDefaultSink registers stderr or stdout according to the config
func (c *Core) addDefaultSink(cfg *Config) error {
	var w io.Writer
	switch cfg.DefaultSink {
	case SinkStderr:
		w = os.Stderr
	case SinkStdout:
		w = os.Stdout
	default:
		return nil
	}
	level, err := ParseLevel(cfg.DefaultLevel)
	if err != nil {
		return err
	}
	f, err := FormatterByName(cfg.DefaultFormat, cfg.TimestampFormat, w)
	if err != nil {
		return err
	}
	c.sinks.AddSink(w, level, f)
	return nil
}

// internalLog writes a pipeline diagnostic to the fallback stream, if enabled
func (c *Core) internalLog(format string, args ...any) {
	if !c.getConfig().InternalErrorsToStderr {
		return
	}
	fmt.Fprintf(os.Stderr, "logcore: "+format, args...)
}

func (c *Core) getConfig() *Config {
	return c.currentConfig.Load()
}

func fallbackWriter(cfg *Config) io.Writer {
	if cfg.InternalErrorsToStderr {
		return os.Stderr
	}
	return nil
}

// sprintf is fmt.Sprintf that skips formatting when the format has no verbs
func sprintf(format string, args ...any) string {
	if len(args) == 0 && strings.IndexByte(format, '%') < 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
