package chunk

import (
	"fmt"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/expect"
	"github.com/dacapoday/ranges/view"
)

// InputChunk is the current chunk of a single-pass view.
type InputChunk[T any, C ranges.InputCursor[T, C]] = view.View[T, *InnerCursor[T, C]]

// shared is the read position of a chunked single-pass view. Every outer and
// inner cursor of the view refers to it.
type shared[T any, C ranges.InputCursor[T, C]] struct {
	base    view.View[T, C]
	it, end C
	n       int
	// remainder is the number of elements of the current chunk not yet
	// read through its inner view.
	remainder int
	// gen identifies the current chunk; inner views of older chunks are
	// stale.
	gen uint64
	// left counts the unread elements of a sized base.
	left  int
	sized bool
}

func (s *shared[T, C]) stale(gen uint64, method string) {
	if gen != s.gen {
		panic(fmt.Errorf("%s: %w: chunk %d, current %d", method, ranges.ErrStaleChunk, gen, s.gen))
	}
}

// InputCursor is the position of a chunked single-pass view. All cursors of
// one view share it.
type InputCursor[T any, C ranges.InputCursor[T, C]] struct {
	s   *shared[T, C]
	end bool
}

func (c *InputCursor[T, C]) done() bool {
	if c.end {
		return true
	}
	return c.s.it.Equal(c.s.end) && c.s.remainder != 0
}

// Read returns the current chunk. Only the most recently read chunk may be
// iterated; moving the cursor makes earlier chunks stale.
func (c *InputCursor[T, C]) Read() InputChunk[T, C] {
	expect.That(!c.done(), "chunk.Input.Read", ranges.ErrPastEnd)
	return view.New[T, *InnerCursor[T, C]](inner[T, C]{s: c.s, gen: c.s.gen})
}

// Next moves to the next chunk, skipping what was left unread of the
// current one.
func (c *InputCursor[T, C]) Next() {
	expect.That(!c.done(), "chunk.Input.Next", ranges.ErrPastEnd)
	s := c.s
	s.left -= s.remainder - ranges.AdvanceBounded[T](s.it, s.remainder, s.end)
	s.remainder = s.n
	s.gen++
}

func (c *InputCursor[T, C]) Equal(other *InputCursor[T, C]) bool {
	return c.done() == other.done()
}

// InnerCursor is a position in the current chunk of a single-pass view.
type InnerCursor[T any, C ranges.InputCursor[T, C]] struct {
	s   *shared[T, C]
	gen uint64
	end bool
}

// done reports true for the end marker, for a drained chunk, and for every
// cursor of a stale chunk.
func (c *InnerCursor[T, C]) done() bool {
	return c.end || c.gen != c.s.gen || c.s.remainder == 0
}

// Read panics with ranges.ErrStaleChunk if the outer cursor has moved on.
func (c *InnerCursor[T, C]) Read() T {
	c.s.stale(c.gen, "chunk.Inner.Read")
	expect.That(!c.done(), "chunk.Inner.Read", ranges.ErrPastEnd)
	return c.s.it.Read()
}

// Next panics with ranges.ErrStaleChunk if the outer cursor has moved on.
func (c *InnerCursor[T, C]) Next() {
	c.s.stale(c.gen, "chunk.Inner.Next")
	expect.That(!c.done(), "chunk.Inner.Next", ranges.ErrPastEnd)
	s := c.s
	s.it.Next()
	s.remainder--
	s.left--
	if s.it.Equal(s.end) {
		s.remainder = 0
	}
}

func (c *InnerCursor[T, C]) Equal(other *InnerCursor[T, C]) bool {
	return c.done() == other.done()
}

// Remaining returns how many elements of the chunk are still unread.
func (c *InnerCursor[T, C]) Remaining() int {
	if c.done() {
		return 0
	}
	return c.s.remainder
}

type inner[T any, C ranges.InputCursor[T, C]] struct {
	s   *shared[T, C]
	gen uint64
}

func (f inner[T, C]) BeginCursor() *InnerCursor[T, C] {
	return &InnerCursor[T, C]{s: f.s, gen: f.gen}
}

func (f inner[T, C]) EndCursor() *InnerCursor[T, C] {
	return &InnerCursor[T, C]{s: f.s, gen: f.gen, end: true}
}

// Size is known when the base view is sized. A stale chunk is empty.
func (f inner[T, C]) Size() (int, bool) {
	s := f.s
	switch {
	case !s.sized:
		return 0, false
	case f.gen != s.gen:
		return 0, true
	}
	return min(s.left, s.remainder), true
}

type input[T any, C ranges.InputCursor[T, C]] struct {
	s *shared[T, C]
}

// BeginCursor starts chunking at the current read position of the base view.
func (f input[T, C]) BeginCursor() *InputCursor[T, C] {
	s := f.s
	s.it, s.end = s.base.Begin(), s.base.End()
	s.left, s.sized = s.base.Size()
	s.remainder = s.n
	s.gen++
	return &InputCursor[T, C]{s: s}
}

func (f input[T, C]) EndCursor() *InputCursor[T, C] {
	return &InputCursor[T, C]{s: f.s, end: true}
}

func (f input[T, C]) Size() (int, bool) {
	if size, ok := f.s.base.Size(); ok {
		return ceil(size, f.s.n), true
	}
	return 0, false
}

// Input chunks a single-pass view. The chunks share the read position of v:
// at most one chunk is live at a time, and reading from a chunk after the
// outer cursor has moved on panics with ranges.ErrStaleChunk.
func Input[T any, C ranges.InputCursor[T, C]](v view.View[T, C], n int) view.View[InputChunk[T, C], *InputCursor[T, C]] {
	validate(n)
	return view.New[InputChunk[T, C], *InputCursor[T, C]](input[T, C]{&shared[T, C]{base: v, n: n}})
}
