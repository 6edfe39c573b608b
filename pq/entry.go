package pq

import "golang.org/x/exp/constraints"

// Entry encapsulates a payload and its priority, lower priorities are dequeued first.
//
// NOTE: The queue never inspects the payload, it's stored and returned as is; where 'V' is a pointer the caller
// retains ownership of what it points to.
type Entry[V any, P constraints.Ordered] struct {
	Value    V
	Priority P
}
