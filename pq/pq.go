// Package pq exposes a generic minimum priority queue implemented using a binary heap.
package pq

import (
	"github.com/couchbase/tools-pq/dynarray"
	"github.com/couchbase/tools-pq/log"
	"golang.org/x/exp/constraints"
)

// PriorityQueue is a minimum priority queue which accepts a generic payload with an ordered priority; the entry with
// the lowest priority is always dequeued first. Where multiple entries have the same priority, they're dequeued in an
// arbitrary order.
//
// The queue is a complete binary tree stored in a 'BackingArray', the children of index i are at 2i+1 and 2i+2.
//
// NOTE: The 'PriorityQueue' is not thread safe, access must be serialized by the caller. Calling any method on a <nil>
// queue will result in a panic.
type PriorityQueue[V any, P constraints.Ordered] struct {
	heap BackingArray[Entry[V, P]]
}

// NewPriorityQueue creates a new priority queue where the underlying capacity is set to the given value.
//
// NOTE: The 'PriorityQueue' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewPriorityQueue[V any, P constraints.Ordered](capacity int) *PriorityQueue[V, P] {
	return &PriorityQueue[V, P]{heap: dynarray.NewArray[Entry[V, P]](capacity)}
}

// NewPriorityQueueWithArray creates a new priority queue which stores its entries in the given array, which must be
// empty.
func NewPriorityQueueWithArray[V any, P constraints.Ordered](arr BackingArray[Entry[V, P]]) *PriorityQueue[V, P] {
	if arr == nil {
		log.Panicf("priority queue backing array is <nil>")
	}

	if n := arr.Len(); n != 0 {
		log.Panicf("priority queue backing array must be empty, it contains %d entries", n)
	}

	return &PriorityQueue[V, P]{heap: arr}
}

// Len returns the number of entries in the priority queue.
func (p *PriorityQueue[V, P]) Len() int {
	p.mustNotBeNil()

	return p.heap.Len()
}

// Empty returns whether the priority queue contains no entries.
func (p *PriorityQueue[V, P]) Empty() bool {
	return p.Len() == 0
}

// Insert adds the given value to the priority queue with the given priority.
func (p *PriorityQueue[V, P]) Insert(value V, priority P) {
	p.Enqueue(Entry[V, P]{Value: value, Priority: priority})
}

// Enqueue adds the given entry to the priority queue.
func (p *PriorityQueue[V, P]) Enqueue(entry Entry[V, P]) {
	p.mustNotBeNil()

	if err := p.heap.Insert(End, entry); err != nil {
		log.Panicf("failed to append entry to priority queue: %v", err)
	}

	p.siftUp(p.heap.Len() - 1)
}

// Peek returns the value with the lowest priority without removing it, returning the zero value and false if the queue
// is empty.
func (p *PriorityQueue[V, P]) Peek() (V, bool) {
	entry, ok := p.PeekEntry()

	return entry.Value, ok
}

// PeekPriority returns the lowest priority in the queue, returning the zero value and false if the queue is empty.
func (p *PriorityQueue[V, P]) PeekPriority() (P, bool) {
	entry, ok := p.PeekEntry()

	return entry.Priority, ok
}

// PeekEntry returns the entry with the lowest priority without removing it, returning the zero value and false if the
// queue is empty.
func (p *PriorityQueue[V, P]) PeekEntry() (Entry[V, P], bool) {
	if p.Empty() {
		return Entry[V, P]{}, false
	}

	return p.heap.Get(0), true
}

// ExtractMin removes and returns the value with the lowest priority, returning the zero value and false if the queue
// is empty.
func (p *PriorityQueue[V, P]) ExtractMin() (V, bool) {
	entry, ok := p.Dequeue()

	return entry.Value, ok
}

// Dequeue removes and returns the entry with the lowest priority, returning the zero value and false if the queue is
// empty.
func (p *PriorityQueue[V, P]) Dequeue() (Entry[V, P], bool) {
	n := p.Len()
	if n == 0 {
		return Entry[V, P]{}, false
	}

	entry := p.heap.Get(0)

	// Fill the root with the last entry, the tree stays complete once the tail is removed
	if last := n - 1; last > 0 {
		p.heap.Set(0, p.heap.Get(last))
	}

	if err := p.heap.Remove(End); err != nil {
		log.Panicf("failed to remove entry from priority queue: %v", err)
	}

	p.siftDown(0)

	return entry, true
}

// Drain removes all entries from the queue, in priority order, running the given function on each one. In the event of
// an error, dequeuing stops early, and returns the error; the entry which caused the error is not returned to the
// queue.
func (p *PriorityQueue[V, P]) Drain(fn func(entry Entry[V, P]) error) error {
	for {
		entry, ok := p.Dequeue()
		if !ok {
			return nil
		}

		if err := fn(entry); err != nil {
			log.Tracef("(PQ) Stopped draining priority queue with %d entries remaining: %v", p.Len(), err)
			return err
		}
	}
}

// Free releases all the entries in the queue, and the storage used to hold them. The values themselves are not
// touched, they remain owned by the caller. The queue is empty afterwards and may be reused.
func (p *PriorityQueue[V, P]) Free() {
	log.Tracef("(PQ) Freeing priority queue with %d entries", p.Len())

	p.heap.Free()
}

// Valid returns whether every entry has a priority greater than or equal to that of its parent.
func (p *PriorityQueue[V, P]) Valid() bool {
	for i := p.Len() - 1; i > 0; i-- {
		if p.less(i, parent(i)) {
			return false
		}
	}

	return true
}

func (p *PriorityQueue[V, P]) mustNotBeNil() {
	if p == nil {
		log.Panicf("priority queue is <nil>")
	}
}
