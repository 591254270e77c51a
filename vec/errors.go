package vec

import (
	"fmt"
	"runtime/debug"
)

// OutOfRangeError is returned when an index, or the index a position
// handle resolves to, falls outside the vector's valid range. Size is
// the logical size at the time of the call.
type OutOfRangeError struct {
	Index int
	Size  int

	stack []byte
}

func newOutOfRange(index, size int) *OutOfRangeError {
	return &OutOfRangeError{Index: index, Size: size, stack: debug.Stack()}
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d is not within the permitted range for size %d", e.Index, e.Size)
}

// Stack returns the stack trace captured where the error was raised.
func (e *OutOfRangeError) Stack() []byte {
	return e.stack
}

// EmptyContainerError is returned by operations that need at least one
// element when the vector is empty.
type EmptyContainerError struct {
	Op string

	stack []byte
}

func newEmptyContainer(op string) *EmptyContainerError {
	return &EmptyContainerError{Op: op, stack: debug.Stack()}
}

func (e *EmptyContainerError) Error() string {
	return fmt.Sprintf("%s: vector is empty", e.Op)
}

// Stack returns the stack trace captured where the error was raised.
func (e *EmptyContainerError) Stack() []byte {
	return e.stack
}
