package ranges

import "github.com/dacapoday/ranges/internal/expect"

// Read returns the element under c.
func Read[T any, C Reader[T]](c C) T {
	return c.Read()
}

// Write stores v under c.
func Write[T any, C Writer[T]](c C, v T) {
	c.Write(v)
}

// Arrow returns a handle to the element under c.
func Arrow[P any, C Arrower[P]](c C) P {
	return c.Arrow()
}

// Move takes the element under c.
func Move[T any, C Mover[T]](c C) T {
	return c.Move()
}

// Next steps c forward.
func Next[C Nexter](c C) {
	c.Next()
}

// Prev steps c backward.
func Prev[C Prever](c C) {
	c.Prev()
}

// Advance jumps c by n positions.
func Advance[C Advancer](c C, n int) {
	c.Advance(n)
}

// Equal reports whether c and other denote the same position.
func Equal[S any, C Equaler[S]](c C, other S) bool {
	return c.Equal(other)
}

// DistanceTo returns the signed number of steps from c to other.
func DistanceTo[S any, C Distancer[S]](c C, other S) int {
	return c.DistanceTo(other)
}

// Clone returns an independent copy of c.
func Clone[C Cloner[C]](c C) C {
	return c.Clone()
}

// AdvanceBounded steps pos forward up to n times, stopping early at end.
// It returns n minus the number of steps taken.
func AdvanceBounded[T any, C InputCursor[T, C]](pos C, n int, end C) int {
	if expect.Enabled {
		expect.Thatf(n >= 0, "ranges.AdvanceBounded", ErrOutOfRange, "n = %d", n)
	}
	for ; n > 0 && !pos.Equal(end); n-- {
		pos.Next()
	}
	return n
}

// AdvanceBoundedRandom is AdvanceBounded in constant time.
func AdvanceBoundedRandom[T any, C RandomAccessCursor[T, C]](pos C, n int, end C) int {
	if expect.Enabled {
		expect.Thatf(n >= 0, "ranges.AdvanceBoundedRandom", ErrOutOfRange, "n = %d", n)
	}
	if d := pos.DistanceTo(end); d < n {
		pos.Advance(d)
		return n - d
	}
	pos.Advance(n)
	return 0
}

// Retreat steps pos backward n times.
func Retreat[T any, C BidirectionalCursor[T, C]](pos C, n int) {
	for ; n > 0; n-- {
		pos.Prev()
	}
}

// Distance counts the steps from begin to end without moving begin.
func Distance[T any, C ForwardCursor[T, C]](begin, end C) (n int) {
	for pos := begin.Clone(); !pos.Equal(end); pos.Next() {
		n++
	}
	return
}

// DistanceRandom is Distance in constant time.
func DistanceRandom[T any, C RandomAccessCursor[T, C]](begin, end C) int {
	return begin.DistanceTo(end)
}
