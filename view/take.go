package view

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/expect"
)

// take walks at most n elements of [pos, end).
type take[T any, C ranges.InputCursor[T, C]] struct {
	pos, end C
	n        int
	sentinel bool
}

func (c *take[T, C]) done() bool {
	return c.sentinel || c.n == 0 || c.pos.Equal(c.end)
}

func (c *take[T, C]) Read() T {
	expect.That(!c.done(), "view.Take.Read", ranges.ErrPastEnd)
	return c.pos.Read()
}

func (c *take[T, C]) Next() {
	expect.That(!c.done(), "view.Take.Next", ranges.ErrPastEnd)
	c.pos.Next()
	c.n--
}

// Remaining returns how many more elements the cursor may yield at most.
func (c *take[T, C]) Remaining() int {
	if c.done() {
		return 0
	}
	return c.n
}

func (c *take[T, C]) equal(other *take[T, C]) bool {
	if c.sentinel || other.sentinel {
		return c.done() == other.done()
	}
	return c.pos.Equal(other.pos)
}

// TakeCursor is a multi-pass position in the first n elements of a view.
type TakeCursor[T any, C ranges.ForwardCursor[T, C]] struct {
	take[T, C]
}

func (c *TakeCursor[T, C]) Equal(other *TakeCursor[T, C]) bool {
	return c.equal(&other.take)
}

func (c *TakeCursor[T, C]) Clone() *TakeCursor[T, C] {
	return &TakeCursor[T, C]{take[T, C]{c.pos.Clone(), c.end, c.n, c.sentinel}}
}

// TakeInputCursor is a single-pass position in the first n elements of a
// view.
type TakeInputCursor[T any, C ranges.InputCursor[T, C]] struct {
	take[T, C]
}

func (c *TakeInputCursor[T, C]) Equal(other *TakeInputCursor[T, C]) bool {
	return c.equal(&other.take)
}

type takeFactory[T any, C ranges.InputCursor[T, C]] struct {
	base View[T, C]
	n    int
}

func (f takeFactory[T, C]) begin() take[T, C] {
	return take[T, C]{pos: f.base.Begin(), end: f.base.End(), n: f.n}
}

func (f takeFactory[T, C]) end() take[T, C] {
	end := f.base.End()
	return take[T, C]{pos: end, end: end, sentinel: true}
}

func (f takeFactory[T, C]) Size() (int, bool) {
	if n, ok := f.base.Size(); ok {
		return min(n, f.n), true
	}
	return 0, false
}

type takeForward[T any, C ranges.ForwardCursor[T, C]] struct {
	takeFactory[T, C]
}

func (f takeForward[T, C]) BeginCursor() *TakeCursor[T, C] { return &TakeCursor[T, C]{f.begin()} }

func (f takeForward[T, C]) EndCursor() *TakeCursor[T, C] { return &TakeCursor[T, C]{f.end()} }

type takeInput[T any, C ranges.InputCursor[T, C]] struct {
	takeFactory[T, C]
}

func (f takeInput[T, C]) BeginCursor() *TakeInputCursor[T, C] {
	return &TakeInputCursor[T, C]{f.begin()}
}

func (f takeInput[T, C]) EndCursor() *TakeInputCursor[T, C] {
	return &TakeInputCursor[T, C]{f.end()}
}

// Take views at most the first n elements of v. n < 0 is treated as 0.
func Take[T any, C ranges.ForwardCursor[T, C]](v View[T, C], n int) View[T, *TakeCursor[T, C]] {
	return New[T, *TakeCursor[T, C]](takeForward[T, C]{takeFactory[T, C]{base: v, n: max(n, 0)}})
}

// TakeInput is Take for single-pass views.
func TakeInput[T any, C ranges.InputCursor[T, C]](v View[T, C], n int) View[T, *TakeInputCursor[T, C]] {
	return New[T, *TakeInputCursor[T, C]](takeInput[T, C]{takeFactory[T, C]{base: v, n: max(n, 0)}})
}
