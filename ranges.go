// Package ranges defines the cursor capabilities that lazy views are built from.
//
// A cursor is a position in a sequence. What a cursor can do is decided by its
// method set alone: the interfaces below describe each capability, and the
// cursor lattice (InputCursor, ForwardCursor, BidirectionalCursor,
// RandomAccessCursor) classifies traversal strength. Generic code states the
// strength it needs as a type-parameter constraint, so asking a cursor for an
// operation it does not have is a compile error, not a runtime condition.
//
// Ranges are common: the end of a range is a cursor of the same type as its
// beginning. Cursors used as end markers compare by done-ness.
package ranges

// Reader reads the element at the current position.
type Reader[T any] interface {
	Read() T
}

// Writer stores v at the current position.
type Writer[T any] interface {
	Write(v T)
}

// Arrower returns a pointer-like handle to the current element.
type Arrower[P any] interface {
	Arrow() P
}

// Mover reads the current element, leaving the source in a valid but
// unspecified state.
type Mover[T any] interface {
	Move() T
}

// Nexter steps one position forward.
type Nexter interface {
	Next()
}

// Prever steps one position backward.
type Prever interface {
	Prev()
}

// Advancer jumps n positions; n may be negative.
type Advancer interface {
	Advance(n int)
}

// Distancer reports the signed number of steps from the receiver to other.
type Distancer[C any] interface {
	DistanceTo(other C) int
}

// Equaler reports whether two positions are the same.
// Implementations must be symmetric: a.Equal(b) == b.Equal(a).
type Equaler[C any] interface {
	Equal(other C) bool
}

// Cloner returns an independent copy of the position.
type Cloner[C any] interface {
	Clone() C
}

// InputCursor is readable and single-step. It may be traversed only once:
// without Clone there is no way to hold two independent positions.
type InputCursor[T, C any] interface {
	Reader[T]
	Nexter
	Equaler[C]
}

// ForwardCursor is a multi-pass InputCursor.
type ForwardCursor[T, C any] interface {
	InputCursor[T, C]
	Cloner[C]
}

// BidirectionalCursor is a ForwardCursor that can step backward.
type BidirectionalCursor[T, C any] interface {
	ForwardCursor[T, C]
	Prever
}

// RandomAccessCursor is a BidirectionalCursor with constant-time jumps and
// distances.
type RandomAccessCursor[T, C any] interface {
	BidirectionalCursor[T, C]
	Advancer
	Distancer[C]
}

// OutputCursor is writable and single-step.
type OutputCursor[T any] interface {
	Writer[T]
	Nexter
}

// Category is a traversal strength.
type Category uint8

const (
	Input Category = iota
	Forward
	Bidirectional
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Input:
		return "input"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	}
	return "unknown"
}
