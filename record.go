// FILE: lixenwraith/logcore/record.go
package logcore

import (
	"time"
)

// Record is one log entry as it travels from producer to sinks.
// It is a value type and is never modified after construction.
type Record struct {
	Time    time.Time
	Level   Level
	Thread  string
	LineID  uint64
	Message string
}

// newRecord stamps a record with the next line id of the core
func (c *Core) newRecord(level Level, ts time.Time, thread, msg string) Record {
	return Record{
		Time:    ts,
		Level:   level,
		Thread:  thread,
		LineID:  c.lineID.Add(1),
		Message: msg,
	}
}

// sentinel is the record that tells the drain goroutine to re-check the active flag
var sentinel = Record{Level: LevelUndefined}

func isSentinel(r Record) bool {
	return r.Level == LevelUndefined
}
