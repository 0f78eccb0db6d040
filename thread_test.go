// FILE: lixenwraith/logcore/thread_test.go
package logcore

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadName(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		done := make(chan string)
		go func() { done <- ThreadName() }()
		assert.Equal(t, DefaultThreadName, <-done)
	})

	t.Run("set and clear", func(t *testing.T) {
		done := make(chan [2]string)
		go func() {
			SetThreadName("io")
			named := ThreadName()
			ClearThreadName()
			done <- [2]string{named, ThreadName()}
		}()
		got := <-done
		assert.Equal(t, "io", got[0])
		assert.Equal(t, DefaultThreadName, got[1])
	})

	t.Run("labels are per goroutine", func(t *testing.T) {
		const n = 16
		var wg sync.WaitGroup
		results := make([]string, n)
		start := make(chan struct{})
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				SetThreadName("g" + strconv.Itoa(i))
				defer ClearThreadName()
				<-start
				results[i] = ThreadName()
			}(i)
		}
		close(start)
		wg.Wait()
		for i, name := range results {
			assert.Equal(t, "g"+strconv.Itoa(i), name)
		}
	})

	t.Run("overwrite keeps one entry", func(t *testing.T) {
		before := namedCount.Load()
		done := make(chan struct{})
		go func() {
			defer close(done)
			SetThreadName("a")
			SetThreadName("b")
			assert.Equal(t, "b", ThreadName())
			assert.Equal(t, before+1, namedCount.Load())
			ClearThreadName()
			ClearThreadName()
		}()
		<-done
		assert.Equal(t, before, namedCount.Load())
	})
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	assert.NotZero(t, id)
	assert.Equal(t, id, goroutineID(), "stable within a goroutine")

	other := make(chan uint64)
	go func() { other <- goroutineID() }()
	assert.NotEqual(t, id, <-other)
}

func TestProducerLabel(t *testing.T) {
	core, buf := createTestCore(t, LevelTrace, nil)

	p := core.Producer("pool-worker")
	assert.Equal(t, "pool-worker", p.Name())
	p.Log(LevelInfo, "from producer")
	p.Logf(LevelWarning, "n=%d", 2)
	assert.Equal(t, DefaultThreadName, core.Producer("").Name())

	lines := buf.Lines()
	assert.Contains(t, lines[0], "| INFO | pool-worker | from producer")
	assert.Contains(t, lines[1], "| WARNING | pool-worker | n=2")
}
