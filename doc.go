// Package tsqueue provides a generic, unbounded FIFO queue for multiple
// producers and multiple consumers, with both blocking and non-blocking
// consumption.
//
// The queue is concurrency-safe: all exported methods may be called from any
// number of goroutines. Internally the head and the tail of the list are
// guarded by independent locks, so producers pushing and consumers popping
// proceed in parallel rather than serializing on one coarse lock. Construct a
// queue with New; the zero value is not ready for use.
//
// For consumption with timeouts or cancellation, see the ctxqueue sub-package.
package tsqueue
