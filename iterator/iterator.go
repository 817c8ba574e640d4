// Package iterator turns cursors into iterators.
//
// Each iterator type owns one cursor and exposes exactly the operations the
// cursor's strength supports:
//
//	Input          Get, Next, Equal, All
//	Forward        + Clone, PostNext, Same
//	Bidirectional  + Prev, PostPrev
//	RandomAccess   + Add, Sub, Plus, Minus, At, Diff, Less
//
// Constructing an iterator of a strength the cursor does not have is a
// compile error. Cursors have reference semantics (they are usually
// pointers); Clone is the only way to obtain an independent position.
//
// Usage:
//
//	for it := iterator.NewForward(v.Begin()); !it.Equal(v.End()); it.Next() {
//	    use(it.Get())
//	}
package iterator

import (
	"iter"

	"github.com/dacapoday/ranges"
)

// Input iterates a single-pass cursor.
//
// Incrementing an Input is destructive: there is no PostNext, because the
// previous position cannot be kept.
type Input[T any, C ranges.InputCursor[T, C]] struct {
	pos C
}

// NewInput takes ownership of pos.
func NewInput[T any, C ranges.InputCursor[T, C]](pos C) Input[T, C] {
	return Input[T, C]{pos: pos}
}

// Get returns the element at the current position.
func (it *Input[T, C]) Get() T {
	return it.pos.Read()
}

// Next advances to the next position.
func (it *Input[T, C]) Next() {
	it.pos.Next()
}

// Equal compares the iterator with a sentinel or another position.
// end.Equal(it.Cursor()) gives the same answer.
func (it *Input[T, C]) Equal(end C) bool {
	return it.pos.Equal(end)
}

// Cursor returns the underlying cursor.
func (it *Input[T, C]) Cursor() C {
	return it.pos
}

// All yields the remaining elements up to end, advancing the iterator.
// If iteration stops early the iterator stays on the last yielded element.
func (it *Input[T, C]) All(end C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; !it.pos.Equal(end); it.pos.Next() {
			if !yield(it.pos.Read()) {
				return
			}
		}
	}
}

func (*Input[T, C]) Category() ranges.Category { return ranges.Input }

// Forward iterates a multi-pass cursor.
type Forward[T any, C ranges.ForwardCursor[T, C]] struct {
	Input[T, C]
}

// NewForward takes ownership of pos.
func NewForward[T any, C ranges.ForwardCursor[T, C]](pos C) Forward[T, C] {
	return Forward[T, C]{Input[T, C]{pos: pos}}
}

// Clone returns an iterator at the same position that advances independently.
func (it *Forward[T, C]) Clone() Forward[T, C] {
	return NewForward[T](it.pos.Clone())
}

// PostNext advances the iterator and returns its previous position.
func (it *Forward[T, C]) PostNext() Forward[T, C] {
	old := it.Clone()
	it.pos.Next()
	return old
}

// Same reports whether both iterators are at the same position.
func (it *Forward[T, C]) Same(other Forward[T, C]) bool {
	return it.pos.Equal(other.pos)
}

func (*Forward[T, C]) Category() ranges.Category { return ranges.Forward }

// Bidirectional iterates a cursor that can step backward.
type Bidirectional[T any, C ranges.BidirectionalCursor[T, C]] struct {
	Forward[T, C]
}

// NewBidirectional takes ownership of pos.
func NewBidirectional[T any, C ranges.BidirectionalCursor[T, C]](pos C) Bidirectional[T, C] {
	return Bidirectional[T, C]{NewForward[T](pos)}
}

func (it *Bidirectional[T, C]) Clone() Bidirectional[T, C] {
	return NewBidirectional[T](it.pos.Clone())
}

func (it *Bidirectional[T, C]) PostNext() Bidirectional[T, C] {
	old := it.Clone()
	it.pos.Next()
	return old
}

// Prev steps back one position.
func (it *Bidirectional[T, C]) Prev() {
	it.pos.Prev()
}

// PostPrev steps back and returns the previous position.
func (it *Bidirectional[T, C]) PostPrev() Bidirectional[T, C] {
	old := it.Clone()
	it.pos.Prev()
	return old
}

func (it *Bidirectional[T, C]) Same(other Bidirectional[T, C]) bool {
	return it.pos.Equal(other.pos)
}

func (*Bidirectional[T, C]) Category() ranges.Category { return ranges.Bidirectional }

// RandomAccess iterates a cursor with constant-time jumps.
type RandomAccess[T any, C ranges.RandomAccessCursor[T, C]] struct {
	Bidirectional[T, C]
}

// NewRandomAccess takes ownership of pos.
func NewRandomAccess[T any, C ranges.RandomAccessCursor[T, C]](pos C) RandomAccess[T, C] {
	return RandomAccess[T, C]{NewBidirectional[T](pos)}
}

func (it *RandomAccess[T, C]) Clone() RandomAccess[T, C] {
	return NewRandomAccess[T](it.pos.Clone())
}

func (it *RandomAccess[T, C]) PostNext() RandomAccess[T, C] {
	old := it.Clone()
	it.pos.Next()
	return old
}

func (it *RandomAccess[T, C]) PostPrev() RandomAccess[T, C] {
	old := it.Clone()
	it.pos.Prev()
	return old
}

func (it *RandomAccess[T, C]) Same(other RandomAccess[T, C]) bool {
	return it.pos.Equal(other.pos)
}

// Add moves the iterator n positions forward (backward if n < 0).
func (it *RandomAccess[T, C]) Add(n int) {
	it.pos.Advance(n)
}

// Sub moves the iterator n positions backward.
func (it *RandomAccess[T, C]) Sub(n int) {
	it.pos.Advance(-n)
}

// Plus returns a new iterator n positions ahead.
func (it *RandomAccess[T, C]) Plus(n int) RandomAccess[T, C] {
	c := it.Clone()
	c.pos.Advance(n)
	return c
}

// Minus returns a new iterator n positions behind.
func (it *RandomAccess[T, C]) Minus(n int) RandomAccess[T, C] {
	return it.Plus(-n)
}

// At returns the element n positions away without moving the iterator.
func (it *RandomAccess[T, C]) At(n int) T {
	c := it.pos.Clone()
	c.Advance(n)
	return c.Read()
}

// Diff returns it - other: the steps from other to it.
func (it *RandomAccess[T, C]) Diff(other RandomAccess[T, C]) int {
	return other.pos.DistanceTo(it.pos)
}

// Less reports whether it is before other.
func (it *RandomAccess[T, C]) Less(other RandomAccess[T, C]) bool {
	return it.Diff(other) < 0
}

func (*RandomAccess[T, C]) Category() ranges.Category { return ranges.RandomAccess }
