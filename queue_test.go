// FILE: lixenwraith/logcore/queue_test.go
package logcore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedQueue_FIFO(t *testing.T) {
	q := NewBoundedQueue[int](16)
	for i := 0; i < 10; i++ {
		assert.False(t, q.Enqueue(i), "no eviction below capacity")
	}
	assert.Equal(t, 10, q.Len())

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, q.Dequeue())
	}
	assert.True(t, q.IsEmpty())
}

func TestBoundedQueue_Eviction(t *testing.T) {
	t.Run("drops oldest", func(t *testing.T) {
		q := NewBoundedQueue[string](2)
		q.Enqueue("x")
		q.Enqueue("y")
		assert.True(t, q.Enqueue("z"), "third enqueue evicts")

		assert.Equal(t, []string{"y", "z"}, q.Snapshot())
		assert.Equal(t, "y", q.Dequeue())
		assert.Equal(t, "z", q.Dequeue())
		assert.Equal(t, uint64(1), q.Evicted())
	})

	t.Run("capacity plus k keeps most recent", func(t *testing.T) {
		const capacity, extra = 8, 5
		q := NewBoundedQueue[int](capacity)
		for i := 0; i < capacity+extra; i++ {
			q.Enqueue(i)
		}
		assert.Equal(t, capacity, q.Len())
		assert.Equal(t, uint64(extra), q.Evicted())

		snap := q.Snapshot()
		require.Len(t, snap, capacity)
		for i, v := range snap {
			assert.Equal(t, extra+i, v)
		}
	})

	t.Run("capacity below one is raised", func(t *testing.T) {
		q := NewBoundedQueue[int](0)
		assert.Equal(t, 1, q.Cap())
		q.Enqueue(1)
		q.Enqueue(2)
		assert.Equal(t, []int{2}, q.Snapshot())
	})
}

func TestBoundedQueue_TryDequeue(t *testing.T) {
	q := NewBoundedQueue[int](4)
	_, ok := q.TryDequeue()
	assert.False(t, ok)

	q.Enqueue(7)
	v, ok := q.TryDequeue()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestBoundedQueue_DequeueBlocks(t *testing.T) {
	q := NewBoundedQueue[int](4)
	got := make(chan int, 1)

	go func() {
		got <- q.Dequeue()
	}()

	select {
	case <-got:
		t.Fatal("Dequeue returned on an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	q.Enqueue(42)
	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("Dequeue did not wake after Enqueue")
	}
}

func TestBoundedQueue_DequeueContext(t *testing.T) {
	q := NewBoundedQueue[int](4)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := q.DequeueContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	q.Enqueue(3)
	v, err := q.DequeueContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestBoundedQueue_WaitUntilEmpty(t *testing.T) {
	t.Run("empty returns immediately", func(t *testing.T) {
		q := NewBoundedQueue[int](4)
		assert.True(t, q.WaitUntilEmpty(0))
	})

	t.Run("times out while items remain", func(t *testing.T) {
		q := NewBoundedQueue[int](4)
		q.Enqueue(1)
		start := time.Now()
		assert.False(t, q.WaitUntilEmpty(30*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("wakes when consumer drains", func(t *testing.T) {
		q := NewBoundedQueue[int](4)
		q.Enqueue(1)
		q.Enqueue(2)
		go func() {
			time.Sleep(10 * time.Millisecond)
			q.Dequeue()
			q.Dequeue()
		}()
		assert.True(t, q.WaitUntilEmpty(time.Second))
	})

	t.Run("wakes on clear", func(t *testing.T) {
		q := NewBoundedQueue[int](4)
		q.Enqueue(1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			q.Clear()
		}()
		assert.True(t, q.WaitUntilEmpty(time.Second))
	})
}

func TestBoundedQueue_Clear(t *testing.T) {
	q := NewBoundedQueue[int](4)
	assert.Equal(t, 0, q.Clear())

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	assert.Equal(t, 3, q.Clear())
	assert.True(t, q.IsEmpty())

	// Usable after clear
	q.Enqueue(9)
	assert.Equal(t, 9, q.Dequeue())
}

func TestBoundedQueue_Concurrent(t *testing.T) {
	const producers, perProducer = 8, 500
	q := NewBoundedQueue[[2]int](producers * perProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue([2]int{id, i})
			}
		}(p)
	}

	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	for n := 0; n < producers*perProducer; n++ {
		item := q.Dequeue()
		// Per-producer order survives interleaving
		assert.Greater(t, item[1], last[item[0]])
		last[item[0]] = item[1]
	}
	wg.Wait()
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Evicted())
}

func TestBoundedQueue_Offer(t *testing.T) {
	q := NewBoundedQueue[int](2)
	assert.True(t, q.Offer(1))
	assert.True(t, q.Offer(2))
	assert.False(t, q.Offer(3), "full queue rejects instead of evicting")
	assert.Equal(t, []int{1, 2}, q.Snapshot())
	assert.Zero(t, q.Evicted())

	q.Clear()
	assert.True(t, q.Offer(4))
	assert.False(t, q.WaitUntilEmpty(0))
}
