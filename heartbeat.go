// FILE: lixenwraith/logcore/heartbeat.go
package logcore

import (
	"fmt"
	"time"
)

// HeartbeatThreadName labels heartbeat records
const HeartbeatThreadName = "heartbeat"

// heartbeat periodically logs pipeline statistics through the pipeline itself
type heartbeat struct {
	quit chan struct{}
	done chan struct{}
}

// startHeartbeat launches the ticker goroutine, the caller holds lifecycleMu
func (c *Core) startHeartbeat(interval time.Duration) *heartbeat {
	hb := &heartbeat{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	p := c.Producer(HeartbeatThreadName)

	go func() {
		defer close(hb.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-hb.quit:
				return
			case <-ticker.C:
				c.logHeartbeat(p)
			}
		}
	}()
	return hb
}

// stop signals the goroutine and waits for it to exit
func (hb *heartbeat) stop() {
	close(hb.quit)
	<-hb.done
}

// logHeartbeat emits one statistics record
func (c *Core) logHeartbeat(p *Producer) {
	sequence := c.stats.heartbeatSequence.Add(1)
	s := c.Stats()
	p.Log(LevelInfo, joinArgs([]any{
		"type", "proc",
		"sequence", sequence,
		"uptime_hours", fmt.Sprintf("%.2f", s.Uptime.Hours()),
		"enqueued", s.Enqueued,
		"dispatched", s.Dispatched,
		"evicted", s.Evicted,
		"sink_errors", s.SinkErrors,
		"queue_len", s.QueueLen,
	}))
}
