package pq

import "github.com/couchbase/tools-pq/dynarray"

// End is the position passed to 'BackingArray.Insert' to append an entry, and to 'BackingArray.Remove' to remove the
// last entry.
const End = -1

//go:generate mockery --name BackingArray --case underscore --inpackage

// BackingArray is the index addressable, resizable storage a 'PriorityQueue' keeps its heap in. Positions passed to
// 'Insert' and 'Remove' may be 'End' (-1) which denotes the end of the array.
//
// Implementations must provide amortized constant time appends/removals at the end and constant time 'Get'/'Set' for
// the queue to meet its complexity guarantees. 'Free' must drop the storage, and therefore any reference to the
// stored values, leaving the array empty.
type BackingArray[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
	Insert(pos int, v T) error
	Remove(pos int) error
	Free()
}

var (
	_ BackingArray[int] = (*dynarray.Array[int])(nil)
	_ BackingArray[int] = (*MockBackingArray[int])(nil)
)
