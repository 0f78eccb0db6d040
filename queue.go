// FILE: lixenwraith/logcore/queue.go
package logcore

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// BoundedQueue is a fixed-capacity FIFO safe for concurrent use.
// When full, Enqueue evicts the oldest item instead of blocking the caller.
// Losing the oldest records under sustained overload is the intended policy:
// producers must never stall on the logging path.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    []T // ring buffer, len(items) == capacity
	head     int
	size     int
	empty    chan struct{} // closed while size == 0
	evicted  atomic.Uint64
}

// NewBoundedQueue creates a queue holding at most capacity items (minimum 1)
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	q := &BoundedQueue[T]{
		items: make([]T, capacity),
		empty: make(chan struct{}),
	}
	close(q.empty)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends item, evicting the oldest item first if the queue is full.
// Never blocks. Reports whether an eviction happened.
func (q *BoundedQueue[T]) Enqueue(item T) (evicted bool) {
	q.mu.Lock()
	if q.size == 0 {
		// Leaving the empty state: waiters need a fresh channel
		q.empty = make(chan struct{})
	} else if q.size == len(q.items) {
		var zero T
		q.items[q.head] = zero
		q.head = (q.head + 1) % len(q.items)
		q.size--
		evicted = true
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
	q.mu.Unlock()

	q.notEmpty.Signal()
	if evicted {
		q.evicted.Add(1)
	}
	return evicted
}

// Offer appends item only if there is room, it never evicts. Reports whether item was added.
func (q *BoundedQueue[T]) Offer(item T) bool {
	q.mu.Lock()
	if q.size == len(q.items) {
		q.mu.Unlock()
		return false
	}
	if q.size == 0 {
		q.empty = make(chan struct{})
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
	q.mu.Unlock()

	q.notEmpty.Signal()
	return true
}

// Dequeue removes and returns the oldest item, blocking until one is available
func (q *BoundedQueue[T]) Dequeue() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.size == 0 {
		q.notEmpty.Wait()
	}
	return q.popLocked()
}

// DequeueContext is Dequeue that gives up when ctx is done
func (q *BoundedQueue[T]) DequeueContext(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.notEmpty.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for q.size == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.notEmpty.Wait()
	}
	return q.popLocked(), nil
}

// TryDequeue removes and returns the oldest item if there is one
func (q *BoundedQueue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// WaitUntilEmpty blocks until the queue is observed empty or timeout elapses.
// Returns true if the queue was empty. Concurrent producers may refill the
// queue right after, so this is a best-effort flush point, not a barrier.
func (q *BoundedQueue[T]) WaitUntilEmpty(timeout time.Duration) bool {
	q.mu.Lock()
	ch := q.empty
	q.mu.Unlock()

	select {
	case <-ch:
		return true
	default:
	}
	if timeout <= 0 {
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	}
}

// Clear discards all queued items and returns how many were dropped
func (q *BoundedQueue[T]) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.size
	if n == 0 {
		return 0
	}
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.head = 0
	q.size = 0
	close(q.empty)
	return n
}

// Len returns the current number of queued items
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Cap returns the fixed capacity
func (q *BoundedQueue[T]) Cap() int {
	return len(q.items)
}

// IsEmpty reports whether the queue currently holds no items
func (q *BoundedQueue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Evicted returns the total number of items dropped by overflow
func (q *BoundedQueue[T]) Evicted() uint64 {
	return q.evicted.Load()
}

// Snapshot returns a copy of the queued items in FIFO order
func (q *BoundedQueue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.items[(q.head+i)%len(q.items)]
	}
	return out
}

// popLocked removes the head item, q.mu must be held and size > 0
func (q *BoundedQueue[T]) popLocked() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	if q.size == 0 {
		close(q.empty)
	}
	return item
}
