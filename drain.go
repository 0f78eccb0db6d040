// FILE: lixenwraith/logcore/drain.go
package logcore

import (
	"runtime/debug"
)

// drain is the single consumer of q. It blocks for one record, then
// micro-batches whatever else is queued without blocking, and exits after a
// batch once the core is no longer active. Finish wakes it with a sentinel.
func (c *Core) drain(q *BoundedQueue[Record], done chan struct{}) {
	defer close(done)

	for {
		c.dispatch(q.Dequeue())
		for {
			r, ok := q.TryDequeue()
			if !ok {
				break
			}
			c.dispatch(r)
		}

		if !c.active.Load() {
			return
		}
	}
}

// dispatch hands one record to the registry, a panic escaping the registry
// is reported and swallowed so the drain goroutine survives it
func (c *Core) dispatch(r Record) {
	if isSentinel(r) {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			c.stats.drainPanics.Add(1)
			c.internalLog("recovered panic in drain loop: %v\n%s\n", p, debug.Stack())
		}
	}()
	c.sinks.Dispatch(r)
}
