package vec

// Iterator is a mutable forward handle over one slot of a vector's
// backing storage. Any operation that reallocates the buffer
// invalidates every handle on that vector; Insert and Erase invalidate
// handles at or after the affected slot. Using a stale handle, or
// advancing or dereferencing End, is not guarded.
type Iterator[T any] struct {
	vec  *Vector[T]
	slot int
}

// ConstIterator is the read-only variant of Iterator. Obtain one from
// Iterator.Const or ConstBegin/ConstEnd; there is no conversion back.
type ConstIterator[T any] struct {
	vec  *Vector[T]
	slot int
}

// Begin returns an iterator on the first element, equal to End when
// the vector is empty.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v, slot: 0}
}

// End returns the iterator one past the last element. It is never
// dereferenceable.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, slot: v.size}
}

// ConstBegin is the read-only counterpart of Begin.
func (v *Vector[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{vec: v, slot: 0}
}

// ConstEnd is the read-only counterpart of End.
func (v *Vector[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{vec: v, slot: v.size}
}

// Next advances the handle one slot forward.
func (it *Iterator[T]) Next() {
	it.slot++
}

// Value returns the element at the handle's slot.
func (it Iterator[T]) Value() T {
	return it.vec.data[it.slot]
}

// Ref returns a mutable pointer to the element at the handle's slot.
func (it Iterator[T]) Ref() *T {
	return &it.vec.data[it.slot]
}

// Set overwrites the element at the handle's slot.
func (it Iterator[T]) Set(value T) {
	it.vec.data[it.slot] = value
}

// Equal reports whether both handles name the same slot of the same
// vector's storage.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.slot == other.slot
}

// Const converts the mutable handle into a read-only one on the same
// slot.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{vec: it.vec, slot: it.slot}
}

// Next advances the handle one slot forward.
func (it *ConstIterator[T]) Next() {
	it.slot++
}

// Value returns the element at the handle's slot.
func (it ConstIterator[T]) Value() T {
	return it.vec.data[it.slot]
}

// Equal reports whether both handles name the same slot of the same
// vector's storage.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.vec == other.vec && it.slot == other.slot
}

// Distance returns the signed number of slots from "from" up to the
// receiver.
func (it ConstIterator[T]) Distance(from ConstIterator[T]) int {
	return it.slot - from.slot
}
