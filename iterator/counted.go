package iterator

import (
	"fmt"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/expect"
)

// counted pairs a cursor with the number of elements left before the end.
// Two counted cursors over the same sequence are equal when their counts
// are, so a counted cursor with count 0 is the end of its range.
type counted[T any, C ranges.InputCursor[T, C]] struct {
	pos C
	n   int
}

func newCounted[T any, C ranges.InputCursor[T, C]](pos C, n int) counted[T, C] {
	if n < 0 {
		panic(fmt.Errorf("iterator: %w: %d", ranges.ErrNegativeCount, n))
	}
	return counted[T, C]{pos: pos, n: n}
}

func (c *counted[T, C]) Read() T {
	expect.That(c.n > 0, "iterator.Counted.Read", ranges.ErrPastEnd)
	return c.pos.Read()
}

func (c *counted[T, C]) Next() {
	expect.That(c.n > 0, "iterator.Counted.Next", ranges.ErrPastEnd)
	c.pos.Next()
	c.n--
}

// Count returns the number of elements left.
func (c *counted[T, C]) Count() int { return c.n }

// Base returns the wrapped cursor.
func (c *counted[T, C]) Base() C { return c.pos }

// Counted limits a single-pass cursor to n elements.
type Counted[T any, C ranges.InputCursor[T, C]] struct {
	counted[T, C]
}

// NewCounted panics with ranges.ErrNegativeCount if n < 0.
func NewCounted[T any, C ranges.InputCursor[T, C]](pos C, n int) *Counted[T, C] {
	return &Counted[T, C]{newCounted[T](pos, n)}
}

func (c *Counted[T, C]) Equal(other *Counted[T, C]) bool {
	return c.n == other.n
}

// CountedForward limits a multi-pass cursor to n elements.
type CountedForward[T any, C ranges.ForwardCursor[T, C]] struct {
	counted[T, C]
}

func NewCountedForward[T any, C ranges.ForwardCursor[T, C]](pos C, n int) *CountedForward[T, C] {
	return &CountedForward[T, C]{newCounted[T](pos, n)}
}

func (c *CountedForward[T, C]) Equal(other *CountedForward[T, C]) bool {
	return c.n == other.n
}

func (c *CountedForward[T, C]) Clone() *CountedForward[T, C] {
	return &CountedForward[T, C]{counted[T, C]{c.pos.Clone(), c.n}}
}

// CountedBidirectional is a CountedForward that can step back.
type CountedBidirectional[T any, C ranges.BidirectionalCursor[T, C]] struct {
	counted[T, C]
}

func NewCountedBidirectional[T any, C ranges.BidirectionalCursor[T, C]](pos C, n int) *CountedBidirectional[T, C] {
	return &CountedBidirectional[T, C]{newCounted[T](pos, n)}
}

func (c *CountedBidirectional[T, C]) Equal(other *CountedBidirectional[T, C]) bool {
	return c.n == other.n
}

func (c *CountedBidirectional[T, C]) Clone() *CountedBidirectional[T, C] {
	return &CountedBidirectional[T, C]{counted[T, C]{c.pos.Clone(), c.n}}
}

func (c *CountedBidirectional[T, C]) Prev() {
	c.pos.Prev()
	c.n++
}

// CountedRandomAccess is a CountedBidirectional with jumps and distances.
type CountedRandomAccess[T any, C ranges.RandomAccessCursor[T, C]] struct {
	counted[T, C]
}

func NewCountedRandomAccess[T any, C ranges.RandomAccessCursor[T, C]](pos C, n int) *CountedRandomAccess[T, C] {
	return &CountedRandomAccess[T, C]{newCounted[T](pos, n)}
}

func (c *CountedRandomAccess[T, C]) Equal(other *CountedRandomAccess[T, C]) bool {
	return c.n == other.n
}

func (c *CountedRandomAccess[T, C]) Clone() *CountedRandomAccess[T, C] {
	return &CountedRandomAccess[T, C]{counted[T, C]{c.pos.Clone(), c.n}}
}

func (c *CountedRandomAccess[T, C]) Prev() {
	c.pos.Prev()
	c.n++
}

// Advance moves k positions; k must not exceed Count.
func (c *CountedRandomAccess[T, C]) Advance(k int) {
	if expect.Enabled {
		expect.Thatf(k <= c.n, "iterator.CountedRandomAccess.Advance", ranges.ErrOutOfRange, "k = %d, count = %d", k, c.n)
	}
	c.pos.Advance(k)
	c.n -= k
}

// DistanceTo is the difference of the remaining counts.
func (c *CountedRandomAccess[T, C]) DistanceTo(other *CountedRandomAccess[T, C]) int {
	return c.n - other.n
}

