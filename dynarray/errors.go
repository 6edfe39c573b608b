package dynarray

import "fmt"

// IndexOutOfRangeError is returned (or used as the panic value for 'Get'/'Set') when a position falls outside of the
// array.
type IndexOutOfRangeError struct {
	length int
	i      int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range %d with length %d", e.i, e.length)
}
