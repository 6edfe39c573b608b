// Package dynarray provides a generic, index addressable array which grows and shrinks as elements are inserted and
// removed.
package dynarray

import "golang.org/x/exp/slices"

const (
	// End may be passed as the position to 'Insert' to append an element, or to 'Remove' to remove the last element.
	End = -1

	// defaultInitialCapacity is the capacity used when a non-positive capacity is requested.
	defaultInitialCapacity = 2

	// growthFactor is the factor by which the capacity increases when the array is full.
	growthFactor = 2
)

// Array is a dynamically resized array of Ts. Appending to, or removing from the end of the array is amortized
// constant time, as is random access using 'Get'/'Set'.
//
// Negative positions are relative to the end of the array, for example -1 refers to the last element.
//
// NOTE: Array only stores the values it is given; where T is a pointer (or contains pointers) the caller retains
// ownership of whatever is pointed to.
type Array[T any] struct {
	items []T
}

// NewArray creates an empty array with the given initial capacity.
//
// NOTE: The capacity has the same behavior as a slices capacity meaning the array may grow beyond it.
func NewArray[T any](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = defaultInitialCapacity
	}

	return &Array[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap returns the number of elements the array can hold before it has to grow.
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// Get returns the element at position i, panicking with an '*IndexOutOfRangeError' if it's out of range.
func (a *Array[T]) Get(i int) T {
	return a.items[a.mustIndex(i)]
}

// Set overwrites the element at position i, panicking with an '*IndexOutOfRangeError' if it's out of range.
func (a *Array[T]) Set(i int, v T) {
	a.items[a.mustIndex(i)] = v
}

// Insert adds v at the given position, shifting any later elements towards the end. Passing 'End' (or 'Len()')
// appends the element.
func (a *Array[T]) Insert(pos int, v T) error {
	if pos < 0 {
		pos += len(a.items) + 1
	}

	if pos < 0 || pos > len(a.items) {
		return &IndexOutOfRangeError{i: pos, length: len(a.items)}
	}

	a.growIfRequired()

	if pos == len(a.items) {
		a.items = append(a.items, v)
		return nil
	}

	a.items = slices.Insert(a.items, pos, v)

	return nil
}

// Remove removes the element at the given position, shifting any later elements towards the start. Passing 'End'
// removes the last element.
func (a *Array[T]) Remove(pos int) error {
	idx, ok := a.index(pos)
	if !ok {
		return &IndexOutOfRangeError{i: pos, length: len(a.items)}
	}

	last := len(a.items) - 1

	if idx != last {
		a.items = slices.Delete(a.items, idx, idx+1)
	} else {
		a.items = a.items[:last]
	}

	// Clear the vacated slot so the array doesn't keep a reference to the removed value
	var zero T
	a.items[:last+1][last] = zero

	return nil
}

// Free releases the storage used by the array, leaving it empty. The array may be used again afterwards.
func (a *Array[T]) Free() {
	a.items = nil
}

// index converts the given position into an index into the underlying slice, returning false if it's out of range.
func (a *Array[T]) index(i int) (int, bool) {
	if i < 0 {
		i += len(a.items)
	}

	return i, i >= 0 && i < len(a.items)
}

func (a *Array[T]) mustIndex(i int) int {
	idx, ok := a.index(i)
	if !ok {
		panic(&IndexOutOfRangeError{i: i, length: len(a.items)})
	}

	return idx
}

// growIfRequired reallocates the underlying slice with a capacity grown by growthFactor if it's full.
func (a *Array[T]) growIfRequired() {
	if len(a.items) < cap(a.items) {
		return
	}

	newCap := cap(a.items) * growthFactor
	if newCap == 0 {
		newCap = defaultInitialCapacity
	}

	items := make([]T, len(a.items), newCap)
	copy(items, a.items)

	a.items = items
}
