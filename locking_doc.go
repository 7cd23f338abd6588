package tsqueue

// Advanced: The Two-Lock Design
//
// tsqueue does not use one mutex around a slice. It keeps a singly linked
// list with a lock on each end, so a producer appending at the tail and a
// consumer detaching at the head touch disjoint state and run in parallel.
// The rules that make this safe:
//
//   - The list always contains one more node than the queue has elements.
//     The node at the tail is an empty placeholder; Push writes the value
//     into it, links a fresh placeholder after it, and advances tail. The
//     "empty" check is therefore a plain pointer comparison, head == tail,
//     with no nil branches and no special case for the first insertion.
//
//   - The head lock guards the head pointer; the tail lock guards the tail
//     pointer and the placeholder node's payload and next link. A node's
//     payload is written exactly once, while the node is the tail, and read
//     exactly once, by the pop that detaches it. Since head can only reach a
//     node after tail has moved past it, the two accesses never overlap.
//
//   - The only moment both locks are held is the tail snapshot a consumer
//     takes to evaluate head == tail. That snapshot always acquires the tail
//     lock while already holding the head lock, never the reverse. One fixed
//     order, no deadlock.
//
//   - Blocking consumers sleep on a condition variable bound to the head
//     lock and re-check head != tail after every wake. Spurious wakeups and
//     a neighbor consumer winning the element both fall out of the same
//     loop: wake, re-check, go back to sleep if there is nothing to take.
//
//   - Push signals once per appended element, after releasing the tail lock.
//     A signal with no waiter is a no-op; the element stays in the list for
//     the next TryPop or WaitPop call.
//
// What this buys: producers are ordered only against each other (by the tail
// lock) and consumers only against each other (by the head lock). Throughput
// under mixed load approaches that of two independent queues, while FIFO
// order is exactly the order in which producers acquired the tail lock.
//
// What it does not buy: Len and IsEmpty are instantaneous observations, not
// fences. By the time the caller inspects the result, concurrent pushes and
// pops may have changed the answer. Code like
//
//	if !q.IsEmpty() {
//	    v, _ := q.TryPop() // may still find the queue empty
//	}
//
// is racy by construction; use the (value, ok) result of TryPop itself, or
// WaitPop when the caller can block.
