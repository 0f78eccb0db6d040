// FILE: lixenwraith/logcore/thread.go
package logcore

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// DefaultThreadName labels records from goroutines that never set a name
const DefaultThreadName = "main"

var (
	threadNames sync.Map     // goroutine id (uint64) -> string
	namedCount  atomic.Int64 // number of live entries in threadNames
)

// SetThreadName labels every record subsequently built on the calling goroutine.
// Goroutine ids are reused by the runtime, so long-lived workers should pair this
// with ClearThreadName before exiting. For pooled goroutines prefer Core.Producer.
func SetThreadName(name string) {
	id := goroutineID()
	if id == 0 {
		return
	}
	if _, loaded := threadNames.Swap(id, name); !loaded {
		namedCount.Add(1)
	}
}

// ClearThreadName removes the label of the calling goroutine
func ClearThreadName() {
	id := goroutineID()
	if id == 0 {
		return
	}
	if _, loaded := threadNames.LoadAndDelete(id); loaded {
		namedCount.Add(-1)
	}
}

// ThreadName returns the label of the calling goroutine, or DefaultThreadName
func ThreadName() string {
	// Fast path: parsing the stack header is skipped while nobody set a name
	if namedCount.Load() == 0 {
		return DefaultThreadName
	}
	if v, ok := threadNames.Load(goroutineID()); ok {
		return v.(string)
	}
	return DefaultThreadName
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the id out of the "goroutine N [" stack header, 0 if unavailable
func goroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
