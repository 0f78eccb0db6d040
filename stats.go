// FILE: lixenwraith/logcore/stats.go
package logcore

import (
	"sync/atomic"
	"time"
)

// coreStats holds the counters behind Core.Stats
type coreStats struct {
	enqueued          atomic.Uint64 // records accepted into the queue
	evicted           atomic.Uint64 // records dropped by queue overflow
	drainPanics       atomic.Uint64 // panics recovered in the drain loop
	heartbeatSequence atomic.Uint64
	startTime         atomic.Value // time.Time of the last Start
}

// Stats is a point-in-time snapshot of a core's counters
type Stats struct {
	Active            bool
	Enqueued          uint64
	Evicted           uint64
	Dispatched        uint64
	SinkErrors        uint64
	DrainPanics       uint64
	QueueLen          int
	QueueCap          int
	Sinks             int
	HeartbeatSequence uint64
	Uptime            time.Duration // since the last Start, zero if never started
}

// Stats returns the current counters
func (c *Core) Stats() Stats {
	q := c.queue.Load()
	s := Stats{
		Active:            c.active.Load(),
		Enqueued:          c.stats.enqueued.Load(),
		Evicted:           c.stats.evicted.Load(),
		Dispatched:        c.sinks.Dispatched(),
		SinkErrors:        c.sinks.Failures(),
		DrainPanics:       c.stats.drainPanics.Load(),
		QueueLen:          q.Len(),
		QueueCap:          q.Cap(),
		Sinks:             c.sinks.Len(),
		HeartbeatSequence: c.stats.heartbeatSequence.Load(),
	}
	if t, ok := c.stats.startTime.Load().(time.Time); ok && !t.IsZero() {
		s.Uptime = time.Since(t)
	}
	return s
}
