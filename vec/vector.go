package vec

import (
	"fmt"
	"strings"
)

// MinCapacity is the capacity reserved by default and the fixed
// increment Append grows by when the buffer is full.
const MinCapacity = 5

// Vector is a resizable contiguous sequence of T. It owns its backing
// buffer exclusively and tracks logical size separately from allocated
// capacity. The zero value is a usable vector with no storage.
//
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	data []T
	size int
}

// New returns an empty vector with the baseline MinCapacity reserved.
func New[T any]() *Vector[T] {
	return WithCapacity[T](MinCapacity)
}

// WithCapacity returns an empty vector with storage for at least n
// elements.
func WithCapacity[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(n)
	return v
}

// FromSlice returns a vector holding a copy of items, in order. The
// caller's slice is never aliased. Capacity is len(items) or
// MinCapacity, whichever is larger.
func FromSlice[T any](items []T) *Vector[T] {
	n := len(items)
	if n < MinCapacity {
		n = MinCapacity
	}

	v := WithCapacity[T](n)
	copy(v.data, items)
	v.size = len(items)

	return v
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Clear drops all elements. Capacity and buffer contents are left
// untouched, so stale values remain in the backing storage.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve makes sure the backing buffer holds at least n slots,
// reallocating to exactly n and copying the live elements over when it
// does not. Requests that already fit are ignored; Reserve never
// shrinks.
func (v *Vector[T]) Reserve(n int) {
	if v.data != nil && n <= len(v.data) {
		return
	}

	fresh := make([]T, n)
	copy(fresh, v.data[:v.size])
	v.data = fresh
}

// ShrinkToFit reallocates the buffer down to exactly Size slots. No-op
// when the buffer is already tight.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.data) == v.size {
		return
	}

	fresh := make([]T, v.size)
	copy(fresh, v.data[:v.size])
	v.data = fresh
}

// Append places value after the last element. A full buffer grows by
// the fixed MinCapacity increment, not by doubling; Insert uses a
// different policy and the asymmetry is part of the contract.
func (v *Vector[T]) Append(value T) {
	if v.data == nil || v.size >= len(v.data) {
		v.Reserve(v.size + MinCapacity)
	}

	v.data[v.size] = value
	v.size++
}

// PopBack removes the last element. The slot keeps its old value in
// the backing storage but is no longer live. Returns
// *EmptyContainerError when there is nothing to remove.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return newEmptyContainer("PopBack")
	}

	v.size--
	return nil
}

// At returns the element at index, or *OutOfRangeError when index is
// outside [0, Size).
func (v *Vector[T]) At(index int) (T, error) {
	if index < 0 || index >= v.size {
		var zero T
		return zero, newOutOfRange(index, v.size)
	}

	return v.data[index], nil
}

// Ref returns a mutable pointer to the element at index. The pointer
// follows the iterator invalidation contract: any reallocation or
// shift makes it stale.
func (v *Vector[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, newOutOfRange(index, v.size)
	}

	return &v.data[index], nil
}

// Set overwrites the element at index.
func (v *Vector[T]) Set(index int, value T) error {
	if index < 0 || index >= v.size {
		return newOutOfRange(index, v.size)
	}

	v.data[index] = value
	return nil
}

// InsertAt writes value at index after shifting the elements at and
// after it one slot right, highest first. Index Size appends. A full
// buffer doubles its capacity here (MinCapacity when there is none) —
// deliberately not Append's linear increment. Returns an iterator on
// the inserted element, or *OutOfRangeError for index outside
// [0, Size].
func (v *Vector[T]) InsertAt(index int, value T) (Iterator[T], error) {
	if index < 0 || index > v.size {
		return Iterator[T]{}, newOutOfRange(index, v.size)
	}

	if v.size == len(v.data) {
		if len(v.data) == 0 {
			v.Reserve(MinCapacity)
		} else {
			v.Reserve(len(v.data) * 2)
		}
	}

	for i := v.size; i > index; i-- {
		v.data[i] = v.data[i-1]
	}

	v.data[index] = value
	v.size++

	return Iterator[T]{vec: v, slot: index}, nil
}

// Insert resolves pos against the start of the vector and inserts
// value there. See InsertAt.
func (v *Vector[T]) Insert(pos ConstIterator[T], value T) (Iterator[T], error) {
	return v.InsertAt(pos.Distance(v.ConstBegin()), value)
}

// EraseAt removes the element at index, shifting everything after it
// one slot left. Returns an iterator on the element now occupying the
// slot, or End when the last element was erased; *OutOfRangeError for
// index outside [0, Size).
func (v *Vector[T]) EraseAt(index int) (Iterator[T], error) {
	if index < 0 || index >= v.size {
		return Iterator[T]{}, newOutOfRange(index, v.size)
	}

	for i := index; i < v.size-1; i++ {
		v.data[i] = v.data[i+1]
	}
	v.size--

	return Iterator[T]{vec: v, slot: index}, nil
}

// Erase resolves pos against the start of the vector and removes the
// element there. See EraseAt.
func (v *Vector[T]) Erase(pos ConstIterator[T]) (Iterator[T], error) {
	return v.EraseAt(pos.Distance(v.ConstBegin()))
}

// Clone returns an independent deep copy. Capacity is whatever
// replaying the elements through Append produces, not the source's.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := &Vector[T]{}
	for i := 0; i < v.size; i++ {
		clone.Append(v.data[i])
	}

	return clone
}

// CopyFrom replaces the receiver's content with a copy of other's
// elements, appended one by one onto the cleared target. Self-copy is
// a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}

	v.Clear()
	for i := 0; i < other.size; i++ {
		v.Append(other.data[i])
	}
}

// String renders the live elements as "[e0, e1, e2]"; an empty vector
// renders as "[]".
func (v *Vector[T]) String() string {
	var b strings.Builder

	b.WriteByte('[')
	sep := ""
	for i := 0; i < v.size; i++ {
		b.WriteString(sep)
		fmt.Fprintf(&b, "%v", v.data[i])
		sep = ", "
	}
	b.WriteByte(']')

	return b.String()
}
