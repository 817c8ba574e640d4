// Package chunk splits a view into consecutive sub-views of a fixed size.
//
// Every chunk holds exactly n elements except the last, which holds the
// remaining 1..n. Concatenating the chunks in order gives back the original
// sequence.
//
// The constructor decides what the chunked view can do:
//
//	Forward        forward view in, lazily bounded forward chunks out
//	Bidirectional  bidirectional view in, bidirectional chunks out
//	RandomAccess   random-access view in, random-access chunks out
//	Input          single-pass view in, one live chunk at a time
//
// Passing a view whose cursors are weaker than a constructor requires is a
// compile error.
package chunk

import (
	"fmt"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/checked"
	"github.com/dacapoday/ranges/internal/expect"
	"github.com/dacapoday/ranges/view"
)

// Chunk is one chunk of a forward view: at most n elements starting at a
// chunk boundary, found lazily while it is walked.
type Chunk[T any, C ranges.ForwardCursor[T, C]] = view.View[T, *view.TakeCursor[T, C]]

// Span is one chunk of a bidirectional or random-access view: the subrange
// of the base view between two chunk boundaries, traversed with the base
// cursor type.
type Span[T any, C ranges.ForwardCursor[T, C]] = view.View[T, C]

func validate(n int) {
	if n <= 0 {
		panic(fmt.Errorf("chunk: %w: %d", ranges.ErrInvalidChunkSize, n))
	}
}

// ceil returns the number of chunks of n covering size elements.
func ceil(size, n int) int {
	c := size / n
	if size%n != 0 {
		c++
	}
	return c
}

// state is a chunk position over a multi-pass view.
//
// offset is how many steps short of n the last Next fell when it hit the
// end. It is 0 at every chunk boundary and nonzero only on a position past
// a short final chunk.
type state[T any, C ranges.ForwardCursor[T, C]] struct {
	pos, end  C
	n, offset int
}

// readable checks that s is at the start of a chunk.
func (s *state[T, C]) readable() {
	expect.That(s.offset == 0, "chunk.Read", ranges.ErrMisaligned)
	expect.That(!s.pos.Equal(s.end), "chunk.Read", ranges.ErrPastEnd)
}

func (s *state[T, C]) Read() Chunk[T, C] {
	s.readable()
	return view.Take(view.Sub[T](s.pos, s.end), s.n)
}

func (s *state[T, C]) Next() {
	expect.That(s.offset == 0, "chunk.Next", ranges.ErrMisaligned)
	s.offset = ranges.AdvanceBounded[T](s.pos, s.n, s.end)
}

// Size returns the chunk size.
func (s *state[T, C]) Size() int { return s.n }

// Base returns the position of the first element of the chunk.
func (s *state[T, C]) Base() C { return s.pos }

func (s *state[T, C]) clone() state[T, C] {
	return state[T, C]{pos: s.pos.Clone(), end: s.end, n: s.n, offset: s.offset}
}

// back steps to the start of the previous chunk.
func (s *state[T, C]) back(prev func(n int)) {
	prev(s.n - s.offset)
	s.offset = 0
}

// base builds chunk positions over a view.
type base[T any, C ranges.ForwardCursor[T, C]] struct {
	v view.View[T, C]
	n int
}

func (b base[T, C]) begin() state[T, C] {
	return state[T, C]{pos: b.v.Begin(), end: b.v.End(), n: b.n}
}

// end returns the end position; offset is the shortfall of the last chunk.
func (b base[T, C]) end(size func() int) state[T, C] {
	end := b.v.End()
	s := state[T, C]{pos: end.Clone(), end: end, n: b.n}
	if size != nil {
		s.offset = (b.n - size()%b.n) % b.n
	}
	return s
}

func (b base[T, C]) Size() (int, bool) {
	if size, ok := b.v.Size(); ok {
		return ceil(size, b.n), true
	}
	return 0, false
}

// ForwardCursor is a position in the chunks of a forward view.
type ForwardCursor[T any, C ranges.ForwardCursor[T, C]] struct {
	state[T, C]
}

func (c *ForwardCursor[T, C]) Equal(other *ForwardCursor[T, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *ForwardCursor[T, C]) Clone() *ForwardCursor[T, C] {
	return &ForwardCursor[T, C]{c.clone()}
}

type forward[T any, C ranges.ForwardCursor[T, C]] struct {
	base[T, C]
}

func (f forward[T, C]) BeginCursor() *ForwardCursor[T, C] {
	return &ForwardCursor[T, C]{f.begin()}
}

func (f forward[T, C]) EndCursor() *ForwardCursor[T, C] {
	return &ForwardCursor[T, C]{f.end(nil)}
}

// Forward chunks v into views of n elements. It panics with
// ranges.ErrInvalidChunkSize if n <= 0.
func Forward[T any, C ranges.ForwardCursor[T, C]](v view.View[T, C], n int) view.View[Chunk[T, C], *ForwardCursor[T, C]] {
	validate(n)
	return view.New[Chunk[T, C], *ForwardCursor[T, C]](forward[T, C]{base[T, C]{v: v, n: n}})
}

// BidirectionalCursor is a position in the chunks of a bidirectional view.
type BidirectionalCursor[T any, C ranges.BidirectionalCursor[T, C]] struct {
	state[T, C]
}

func (c *BidirectionalCursor[T, C]) Equal(other *BidirectionalCursor[T, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *BidirectionalCursor[T, C]) Clone() *BidirectionalCursor[T, C] {
	return &BidirectionalCursor[T, C]{c.clone()}
}

// Read walks to the end of the chunk and returns it as a sized Span.
func (c *BidirectionalCursor[T, C]) Read() Span[T, C] {
	c.readable()
	bound := c.pos.Clone()
	short := ranges.AdvanceBounded[T](bound, c.n, c.end)
	return view.SubN[T](c.pos, bound, c.n-short)
}

func (c *BidirectionalCursor[T, C]) Prev() {
	c.back(func(n int) { ranges.Retreat[T](c.pos, n) })
}

type bidirectional[T any, C ranges.BidirectionalCursor[T, C]] struct {
	base[T, C]
}

func (f bidirectional[T, C]) BeginCursor() *BidirectionalCursor[T, C] {
	return &BidirectionalCursor[T, C]{f.begin()}
}

func (f bidirectional[T, C]) EndCursor() *BidirectionalCursor[T, C] {
	return &BidirectionalCursor[T, C]{f.end(f.size)}
}

func (f bidirectional[T, C]) size() int {
	if size, ok := f.v.Size(); ok {
		return size
	}
	return ranges.Distance[T](f.v.Begin(), f.v.End())
}

// Bidirectional chunks v into views of n elements that can be walked in both
// directions, as can each chunk. When v is unsized, building the end cursor
// walks v once.
func Bidirectional[T any, C ranges.BidirectionalCursor[T, C]](v view.View[T, C], n int) view.View[Span[T, C], *BidirectionalCursor[T, C]] {
	validate(n)
	return view.New[Span[T, C], *BidirectionalCursor[T, C]](bidirectional[T, C]{base[T, C]{v: v, n: n}})
}

// RandomAccessCursor is a position in the chunks of a random-access view.
type RandomAccessCursor[T any, C ranges.RandomAccessCursor[T, C]] struct {
	state[T, C]
}

func (c *RandomAccessCursor[T, C]) Equal(other *RandomAccessCursor[T, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *RandomAccessCursor[T, C]) Clone() *RandomAccessCursor[T, C] {
	return &RandomAccessCursor[T, C]{c.clone()}
}

func (c *RandomAccessCursor[T, C]) Read() Span[T, C] {
	c.readable()
	bound := c.pos.Clone()
	ranges.AdvanceBoundedRandom[T](bound, c.n, c.end)
	return view.SubSized[T](c.pos, bound)
}

func (c *RandomAccessCursor[T, C]) Next() {
	expect.That(c.offset == 0, "chunk.Next", ranges.ErrMisaligned)
	c.offset = ranges.AdvanceBoundedRandom[T](c.pos, c.n, c.end)
}

func (c *RandomAccessCursor[T, C]) Prev() {
	c.back(func(n int) { c.pos.Advance(-n) })
}

// Advance moves k chunks. Moving forward stops at the end of the view;
// the overshoot is kept so that moving back returns to the same chunk.
// It panics with ranges.ErrOverflow if k*n does not fit in an int.
func (c *RandomAccessCursor[T, C]) Advance(k int) {
	if k == 0 {
		return
	}
	steps, ok := checked.Mul(k, c.n)
	if !ok {
		panic(fmt.Errorf("chunk.Advance: %w: %d chunks of %d", ranges.ErrOverflow, k, c.n))
	}
	if k > 0 {
		expect.That(c.offset == 0, "chunk.Advance", ranges.ErrMisaligned)
		c.offset = ranges.AdvanceBoundedRandom[T](c.pos, steps, c.end) % c.n
		return
	}
	c.pos.Advance(steps + c.offset)
	c.offset = 0
}

// DistanceTo returns the number of chunks from c to other.
func (c *RandomAccessCursor[T, C]) DistanceTo(other *RandomAccessCursor[T, C]) int {
	delta := c.pos.DistanceTo(other.pos) + (other.offset - c.offset)
	if expect.Enabled {
		expect.Thatf(delta%c.n == 0, "chunk.DistanceTo", ranges.ErrUnevenDistance, "delta = %d, n = %d", delta, c.n)
	}
	return delta / c.n
}

type randomAccess[T any, C ranges.RandomAccessCursor[T, C]] struct {
	base[T, C]
}

func (f randomAccess[T, C]) BeginCursor() *RandomAccessCursor[T, C] {
	return &RandomAccessCursor[T, C]{f.begin()}
}

func (f randomAccess[T, C]) EndCursor() *RandomAccessCursor[T, C] {
	return &RandomAccessCursor[T, C]{f.end(f.size)}
}

func (f randomAccess[T, C]) size() int {
	return ranges.DistanceRandom[T](f.v.Begin(), f.v.End())
}

// RandomAccess chunks v into views of n elements with constant-time jumps
// between chunks and within each chunk.
func RandomAccess[T any, C ranges.RandomAccessCursor[T, C]](v view.View[T, C], n int) view.View[Span[T, C], *RandomAccessCursor[T, C]] {
	validate(n)
	return view.New[Span[T, C], *RandomAccessCursor[T, C]](randomAccess[T, C]{base[T, C]{v: v, n: n}})
}
