// Package ctxqueue layers context-aware blocking consumption over the core
// tsqueue FIFO. The core's WaitPop blocks with no timeout and no
// cancellation; Take here waits for an element or for the caller's context,
// whichever comes first.
package ctxqueue

import (
	"context"
	"errors"
	"sync"

	base "github.com/justcppdev/threadsafe-queue"
)

// Queue is a blocking, concurrency-safe FIFO built on tsqueue. It keeps its
// own lock and condition variable so a waiting Take can also be woken by
// context cancellation, which the core queue's condition variable cannot do.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
	mu sync.Mutex
	cv *sync.Cond
	q  *base.Queue[T]
}

// New creates a new context-aware blocking queue.
func New[T any]() *Queue[T] {
	b := &Queue[T]{q: base.New[T]()}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends v to the tail and wakes waiters.
func (b *Queue[T]) Put(v T) {
	b.mu.Lock()
	b.q.Push(v)
	b.cv.Broadcast()
	b.mu.Unlock()
}

// PutMany appends items in order and wakes waiters once.
func (b *Queue[T]) PutMany(items ...T) {
	if len(items) == 0 {
		return
	}
	b.mu.Lock()
	b.q.PushMany(items...)
	b.cv.Broadcast()
	b.mu.Unlock()
}

// TryTake removes and returns the head value without blocking.
// ok is false if the queue is empty.
func (b *Queue[T]) TryTake() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.TryPop()
	b.mu.Unlock()
	return
}

// Take blocks until an element is available or ctx is done. On success returns
// (value, nil). On cancellation returns the zero value and ctx.Err().
func (b *Queue[T]) Take(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	// Fast path
	if v, ok := b.q.TryPop(); ok {
		b.mu.Unlock()
		return v, nil
	}
	// Wait with context cancellation. We spawn a short-lived watcher that
	// broadcasts on cancellation to wake Wait.
	for {
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait() // releases and re-acquires b.mu
		close(done)

		if v, ok := b.q.TryPop(); ok {
			b.mu.Unlock()
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			var zero T
			return zero, err
		}
	}
}

// Peek returns the head value without removing it. ok is false when empty.
func (b *Queue[T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of elements currently queued.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }

// ErrCanceled is returned by Take when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by Take when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
