// Package queue provides a generic thread-safe FIFO container.
//
// The queue is unbounded so producers never block on capacity; consumers
// may block in Dequeue or combine TryDequeue with Wait for select-based
// waiting. Most callers in this repository use it single-threaded as a
// plain worklist, but the container is safe for concurrent use.
package queue

import "sync"

// Queue is an unbounded FIFO of T values.
//
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	signal chan struct{} // signals item availability (buffered, size 1)
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		items:  make([]T, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue appends an item to the back of the queue.
// Returns false if the queue has been closed.
func (q *Queue[T]) Enqueue(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.items = append(q.items, item)

	// Non-blocking signal; the 1-slot buffer coalesces repeated signals.
	select {
	case q.signal <- struct{}{}:
	default:
	}

	return true
}

// Dequeue removes and returns the front item, blocking until one is
// available. Returns the zero value and false once the queue is closed
// and drained.
func (q *Queue[T]) Dequeue() (T, bool) {
	for {
		if item, ok := q.TryDequeue(); ok {
			return item, true
		}

		q.mu.Lock()
		if q.closed && len(q.items) == 0 {
			q.mu.Unlock()
			var zero T
			return zero, false
		}
		q.mu.Unlock()

		<-q.signal
	}
}

// TryDequeue removes and returns the front item without blocking.
// Returns the zero value and false if the queue is empty.
func (q *Queue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	item := q.items[0]

	// Zero the vacated slot so the backing array does not retain
	// references the caller has already consumed.
	var zero T
	q.items[0] = zero

	if len(q.items) == 1 {
		q.items = q.items[:0]
	} else {
		q.items = q.items[1:]
	}

	return item, true
}

// Peek returns the front item without removing it.
// Returns the zero value and false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Wait returns a channel that signals when items may be available.
// Combine with TryDequeue in a select to wait with cancellation:
//
//	select {
//	case <-ctx.Done():
//	    return ctx.Err()
//	case <-q.Wait():
//	    // TryDequeue
//	}
func (q *Queue[T]) Wait() <-chan struct{} {
	return q.signal
}

// Len returns the current number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Close marks the queue closed for enqueuing and wakes blocked waiters.
// Items already queued can still be drained with Dequeue or TryDequeue.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.signal)
}
