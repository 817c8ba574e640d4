package view

import (
	"iter"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/expect"
)

// stream buffers the element at the read position of a pull function.
type stream[T any] struct {
	next   func() (T, bool)
	cur    T
	primed bool
	done   bool
}

func (s *stream[T]) fill() {
	if s.primed || s.done {
		return
	}
	s.cur, s.primed = s.next()
	s.done = !s.primed
}

// StreamCursor is a single-pass position in a pulled sequence.
//
// Every cursor of one stream shares the read position; two cursors compare
// equal when they agree on whether the stream is exhausted.
type StreamCursor[T any] struct {
	s   *stream[T]
	end bool
}

func (c *StreamCursor[T]) done() bool {
	if c.end {
		return true
	}
	c.s.fill()
	return c.s.done
}

func (c *StreamCursor[T]) Read() T {
	expect.That(!c.done(), "view.StreamCursor.Read", ranges.ErrPastEnd)
	return c.s.cur
}

func (c *StreamCursor[T]) Next() {
	expect.That(!c.done(), "view.StreamCursor.Next", ranges.ErrPastEnd)
	c.s.fill()
	c.s.primed = false
}

func (c *StreamCursor[T]) Equal(other *StreamCursor[T]) bool {
	return c.done() == other.done()
}

type streamFactory[T any] struct {
	s *stream[T]
}

func (f streamFactory[T]) BeginCursor() *StreamCursor[T] { return &StreamCursor[T]{s: f.s} }

func (f streamFactory[T]) EndCursor() *StreamCursor[T] { return &StreamCursor[T]{s: f.s, end: true} }

func (streamFactory[T]) Size() (int, bool) { return 0, false }

// Stream views the values returned by next until it reports false.
// next is not called before the first element is needed.
func Stream[T any](next func() (T, bool)) View[T, *StreamCursor[T]] {
	return New[T, *StreamCursor[T]](streamFactory[T]{&stream[T]{next: next}})
}

// Seq views seq as a single-pass range. Call stop once the view is no
// longer needed if it was not read to the end.
func Seq[T any](seq iter.Seq[T]) (View[T, *StreamCursor[T]], func()) {
	next, stop := iter.Pull(seq)
	return Stream(next), stop
}
