package pq

import (
	"fmt"
	"testing"

	"github.com/couchbase/tools-pq/dynarray"
	"github.com/couchbase/tools-pq/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(level log.Level, format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...)))
}

func newMockQueue(t *testing.T) (*PriorityQueue[string, int], *MockBackingArray[Entry[string, int]]) {
	arr := NewMockBackingArray[Entry[string, int]](t)
	arr.On("Len").Return(0).Once()

	return NewPriorityQueueWithArray[string, int](arr), arr
}

func TestNewPriorityQueueWithArrayNotEmpty(t *testing.T) {
	logger := &recordingLogger{}

	log.SetLogger(logger)
	t.Cleanup(func() { log.SetLogger(nil) })

	arr := NewMockBackingArray[Entry[string, int]](t)
	arr.On("Len").Return(2).Once()

	expected := "priority queue backing array must be empty, it contains 2 entries"

	require.PanicsWithValue(t, expected, func() { NewPriorityQueueWithArray[string, int](arr) })
	require.Equal(t, []string{"PNIC: " + expected}, logger.messages)
}

func TestNewPriorityQueueWithArrayNil(t *testing.T) {
	require.PanicsWithValue(t, "priority queue backing array is <nil>", func() {
		NewPriorityQueueWithArray[string, int](nil)
	})
}

func TestPriorityQueueInsertAppendsToEnd(t *testing.T) {
	queue, arr := newMockQueue(t)

	arr.On("Insert", End, Entry[string, int]{Value: "X", Priority: 10}).Return(nil).Once()
	arr.On("Len").Return(1).Once()

	queue.Insert("X", 10)
}

func TestPriorityQueueInsertFailure(t *testing.T) {
	queue, arr := newMockQueue(t)

	arr.On("Insert", End, mock.Anything).Return(assert.AnError).Once()

	require.PanicsWithValue(t, "failed to append entry to priority queue: "+assert.AnError.Error(), func() {
		queue.Insert("X", 10)
	})
}

func TestPriorityQueueExtractMinRemovesFromEnd(t *testing.T) {
	queue, arr := newMockQueue(t)

	arr.On("Len").Return(1).Once()
	arr.On("Get", 0).Return(Entry[string, int]{Value: "X", Priority: 10}).Once()
	arr.On("Remove", End).Return(nil).Once()
	arr.On("Len").Return(0).Once()

	value, ok := queue.ExtractMin()
	require.True(t, ok)
	require.Equal(t, "X", value)

	arr.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestPriorityQueueExtractMinMovesLastToRoot(t *testing.T) {
	queue, arr := newMockQueue(t)

	var (
		first  = Entry[string, int]{Value: "A", Priority: 1}
		second = Entry[string, int]{Value: "B", Priority: 2}
	)

	arr.On("Len").Return(2).Once()
	arr.On("Get", 0).Return(first).Once()
	arr.On("Get", 1).Return(second).Once()
	arr.On("Set", 0, second).Once()
	arr.On("Remove", End).Return(nil).Once()
	arr.On("Len").Return(1).Once()

	entry, ok := queue.Dequeue()
	require.True(t, ok)
	require.Equal(t, first, entry)
}

func TestPriorityQueueExtractMinFailure(t *testing.T) {
	queue, arr := newMockQueue(t)

	arr.On("Len").Return(1).Once()
	arr.On("Get", 0).Return(Entry[string, int]{Value: "X", Priority: 10}).Once()
	arr.On("Remove", End).Return(assert.AnError).Once()

	require.PanicsWithValue(t, "failed to remove entry from priority queue: "+assert.AnError.Error(), func() {
		queue.ExtractMin()
	})
}

func TestPriorityQueueFreeReleasesArray(t *testing.T) {
	logger := &recordingLogger{}

	log.SetLogger(logger)
	t.Cleanup(func() { log.SetLogger(nil) })

	queue, arr := newMockQueue(t)

	arr.On("Len").Return(3).Once()
	arr.On("Free").Once()

	queue.Free()

	require.Equal(t, []string{"TRAC: (PQ) Freeing priority queue with 3 entries"}, logger.messages)
}

func TestEndAppendsAndRemovesFromArray(t *testing.T) {
	require.Equal(t, dynarray.End, End)

	arr := dynarray.NewArray[Entry[string, int]](2)
	queue := NewPriorityQueueWithArray[string, int](arr)

	queue.Insert("B", 2)
	queue.Insert("A", 1)

	require.Equal(t, Entry[string, int]{Value: "A", Priority: 1}, arr.Get(0))
	require.Equal(t, Entry[string, int]{Value: "B", Priority: 2}, arr.Get(End))

	value, ok := queue.ExtractMin()
	require.True(t, ok)
	require.Equal(t, "A", value)
	require.Equal(t, 1, arr.Len())
}
