package tsqueue

import (
	"sync"
	"sync/atomic"
)

// node is one link of the internal singly linked list. The node referenced by
// Queue.tail never carries a payload; it is the placeholder the next Push
// fills. Once a node stops being the tail its payload is never written again.
type node[T any] struct {
	val  T
	next *node[T]
}

// Queue is a generic, unbounded, concurrency-safe FIFO queue. The head and
// tail of the internal list are guarded by separate locks so that pushes and
// pops contend only at the instant a consumer reads the current tail. The
// list always holds at least one node: the empty placeholder at the tail,
// which makes "empty" a plain pointer comparison (head == tail).
//
// The zero value is not ready for use; construct via New.
type Queue[T any] struct {
	headMu  sync.Mutex
	head    *node[T]
	tailMu  sync.Mutex
	tail    *node[T]
	hasData *sync.Cond // bound to headMu; one Signal per appended element
	length  atomic.Int64
}

// New creates a new empty queue.
//
// All exported methods are safe for concurrent use.
func New[T any]() *Queue[T] {
	sentinel := &node[T]{}
	q := &Queue[T]{head: sentinel, tail: sentinel}
	q.hasData = sync.NewCond(&q.headMu)
	return q
}

// Push appends v to the tail and wakes one blocked consumer, if any.
//
// Push never fails and never blocks beyond a brief wait on the tail lock
// while another producer is mid-push. Concurrent pushes are delivered in the
// order they acquired the tail lock. Complexity: O(1).
func (q *Queue[T]) Push(v T) {
	n := &node[T]{}
	q.tailMu.Lock()
	q.tail.val = v
	q.tail.next = n
	q.tail = n
	q.length.Add(1)
	q.tailMu.Unlock()
	q.hasData.Signal()
}

// PushMany appends items in order under a single tail-lock acquisition and
// wakes one blocked consumer per item appended. Complexity: O(k) for k items.
func (q *Queue[T]) PushMany(items ...T) {
	if len(items) == 0 {
		return
	}
	q.tailMu.Lock()
	for _, v := range items {
		n := &node[T]{}
		q.tail.val = v
		q.tail.next = n
		q.tail = n
	}
	q.length.Add(int64(len(items)))
	q.tailMu.Unlock()
	for range items {
		q.hasData.Signal()
	}
}

// currentTail snapshots the tail pointer under the tail lock. It is the only
// place a consumer touches producer state; callers already hold headMu, and
// the headMu-then-tailMu order is the only one ever used, so the two locks
// cannot deadlock.
func (q *Queue[T]) currentTail() *node[T] {
	q.tailMu.Lock()
	t := q.tail
	q.tailMu.Unlock()
	return t
}

// popHead detaches the head node and advances head one link. The caller must
// hold headMu and have established head != currentTail().
func (q *Queue[T]) popHead() *node[T] {
	detached := q.head
	q.head = detached.next
	detached.next = nil
	q.length.Add(-1)
	return detached
}

// waitForData blocks the caller until the queue is non-empty. The caller must
// hold headMu; the lock is released while sleeping and held again on return.
// The predicate is re-checked after every wake, so spurious wakeups and
// consumers racing for the same element are both harmless.
func (q *Queue[T]) waitForData() {
	for q.head == q.currentTail() {
		q.hasData.Wait()
	}
}

// TryPop removes and returns the head value without blocking.
//
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) TryPop() (T, bool) {
	q.headMu.Lock()
	if q.head == q.currentTail() {
		q.headMu.Unlock()
		var zero T
		return zero, false
	}
	detached := q.popHead()
	q.headMu.Unlock()
	return detached.val, true
}

// TryPopInto removes the head value into *dst without blocking.
//
// Returns false, leaving *dst untouched, when the queue is empty. Behavior is
// otherwise identical to TryPop.
func (q *Queue[T]) TryPopInto(dst *T) bool {
	q.headMu.Lock()
	if q.head == q.currentTail() {
		q.headMu.Unlock()
		return false
	}
	detached := q.popHead()
	q.headMu.Unlock()
	*dst = detached.val
	return true
}

// WaitPop removes and returns the head value, blocking the calling goroutine
// until an element is available.
//
// WaitPop has no timeout and no cancellation; use ctxqueue for a
// context-aware variant. While blocked the goroutine sleeps on a condition
// variable and consumes no CPU.
func (q *Queue[T]) WaitPop() T {
	q.headMu.Lock()
	q.waitForData()
	detached := q.popHead()
	q.headMu.Unlock()
	return detached.val
}

// WaitPopInto removes the head value into *dst, blocking until an element is
// available. Behavior is otherwise identical to WaitPop.
func (q *Queue[T]) WaitPopInto(dst *T) {
	q.headMu.Lock()
	q.waitForData()
	detached := q.popHead()
	q.headMu.Unlock()
	*dst = detached.val
}

// Peek returns the head value without removing it.
//
// The second result is false when the queue is empty. The head node's payload
// is immutable once the node is no longer the tail, so the read is safe under
// the head lock alone. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	q.headMu.Lock()
	defer q.headMu.Unlock()
	var zero T
	if q.head == q.currentTail() {
		return zero, false
	}
	return q.head.val, true
}

// IsEmpty reports whether the queue was empty at the instant of the check.
//
// The answer is advisory: concurrent pushes and pops may change it before the
// caller acts on it. Complexity: O(1).
func (q *Queue[T]) IsEmpty() bool {
	q.headMu.Lock()
	empty := q.head == q.currentTail()
	q.headMu.Unlock()
	return empty
}

// Len returns the number of elements queued at the instant of the check.
// Advisory in the same sense as IsEmpty. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return int(q.length.Load())
}
