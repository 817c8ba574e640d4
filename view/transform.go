package view

import "github.com/dacapoday/ranges"

// transform applies fn to each element as it is read.
type transform[T, U any, C ranges.InputCursor[T, C]] struct {
	pos C
	fn  func(T) U
}

func (c *transform[T, U, C]) Read() U { return c.fn(c.pos.Read()) }

func (c *transform[T, U, C]) Next() { c.pos.Next() }

// Base returns the position in the underlying view.
func (c *transform[T, U, C]) Base() C { return c.pos }

// TransformInputCursor is a single-pass position in a transformed view.
type TransformInputCursor[T, U any, C ranges.InputCursor[T, C]] struct {
	transform[T, U, C]
}

func (c *TransformInputCursor[T, U, C]) Equal(other *TransformInputCursor[T, U, C]) bool {
	return c.pos.Equal(other.pos)
}

// TransformCursor is a position in a transformed forward view.
type TransformCursor[T, U any, C ranges.ForwardCursor[T, C]] struct {
	transform[T, U, C]
}

func (c *TransformCursor[T, U, C]) Equal(other *TransformCursor[T, U, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *TransformCursor[T, U, C]) Clone() *TransformCursor[T, U, C] {
	return &TransformCursor[T, U, C]{transform[T, U, C]{c.pos.Clone(), c.fn}}
}

// TransformBidirectionalCursor is a position in a transformed bidirectional
// view.
type TransformBidirectionalCursor[T, U any, C ranges.BidirectionalCursor[T, C]] struct {
	transform[T, U, C]
}

func (c *TransformBidirectionalCursor[T, U, C]) Equal(other *TransformBidirectionalCursor[T, U, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *TransformBidirectionalCursor[T, U, C]) Clone() *TransformBidirectionalCursor[T, U, C] {
	return &TransformBidirectionalCursor[T, U, C]{transform[T, U, C]{c.pos.Clone(), c.fn}}
}

func (c *TransformBidirectionalCursor[T, U, C]) Prev() { c.pos.Prev() }

// TransformRandomAccessCursor is a position in a transformed random-access
// view.
type TransformRandomAccessCursor[T, U any, C ranges.RandomAccessCursor[T, C]] struct {
	transform[T, U, C]
}

func (c *TransformRandomAccessCursor[T, U, C]) Equal(other *TransformRandomAccessCursor[T, U, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *TransformRandomAccessCursor[T, U, C]) Clone() *TransformRandomAccessCursor[T, U, C] {
	return &TransformRandomAccessCursor[T, U, C]{transform[T, U, C]{c.pos.Clone(), c.fn}}
}

func (c *TransformRandomAccessCursor[T, U, C]) Prev() { c.pos.Prev() }

func (c *TransformRandomAccessCursor[T, U, C]) Advance(n int) { c.pos.Advance(n) }

func (c *TransformRandomAccessCursor[T, U, C]) DistanceTo(other *TransformRandomAccessCursor[T, U, C]) int {
	return c.pos.DistanceTo(other.pos)
}

type transformFactory[T, U any, C ranges.InputCursor[T, C]] struct {
	base View[T, C]
	fn   func(T) U
}

func (f transformFactory[T, U, C]) begin() transform[T, U, C] {
	return transform[T, U, C]{f.base.Begin(), f.fn}
}

func (f transformFactory[T, U, C]) end() transform[T, U, C] {
	return transform[T, U, C]{f.base.End(), f.fn}
}

func (f transformFactory[T, U, C]) Size() (int, bool) { return f.base.Size() }

type transformInput[T, U any, C ranges.InputCursor[T, C]] struct {
	transformFactory[T, U, C]
}

func (f transformInput[T, U, C]) BeginCursor() *TransformInputCursor[T, U, C] {
	return &TransformInputCursor[T, U, C]{f.begin()}
}

func (f transformInput[T, U, C]) EndCursor() *TransformInputCursor[T, U, C] {
	return &TransformInputCursor[T, U, C]{f.end()}
}

type transformForward[T, U any, C ranges.ForwardCursor[T, C]] struct {
	transformFactory[T, U, C]
}

func (f transformForward[T, U, C]) BeginCursor() *TransformCursor[T, U, C] {
	return &TransformCursor[T, U, C]{f.begin()}
}

func (f transformForward[T, U, C]) EndCursor() *TransformCursor[T, U, C] {
	return &TransformCursor[T, U, C]{f.end()}
}

type transformBidirectional[T, U any, C ranges.BidirectionalCursor[T, C]] struct {
	transformFactory[T, U, C]
}

func (f transformBidirectional[T, U, C]) BeginCursor() *TransformBidirectionalCursor[T, U, C] {
	return &TransformBidirectionalCursor[T, U, C]{f.begin()}
}

func (f transformBidirectional[T, U, C]) EndCursor() *TransformBidirectionalCursor[T, U, C] {
	return &TransformBidirectionalCursor[T, U, C]{f.end()}
}

type transformRandomAccess[T, U any, C ranges.RandomAccessCursor[T, C]] struct {
	transformFactory[T, U, C]
}

func (f transformRandomAccess[T, U, C]) BeginCursor() *TransformRandomAccessCursor[T, U, C] {
	return &TransformRandomAccessCursor[T, U, C]{f.begin()}
}

func (f transformRandomAccess[T, U, C]) EndCursor() *TransformRandomAccessCursor[T, U, C] {
	return &TransformRandomAccessCursor[T, U, C]{f.end()}
}

// Transform views fn applied to each element of v. fn runs on every read,
// so it should be cheap and free of side effects.
func Transform[T, U any, C ranges.ForwardCursor[T, C]](v View[T, C], fn func(T) U) View[U, *TransformCursor[T, U, C]] {
	return New[U, *TransformCursor[T, U, C]](transformForward[T, U, C]{transformFactory[T, U, C]{v, fn}})
}

// TransformInput is Transform for single-pass views.
func TransformInput[T, U any, C ranges.InputCursor[T, C]](v View[T, C], fn func(T) U) View[U, *TransformInputCursor[T, U, C]] {
	return New[U, *TransformInputCursor[T, U, C]](transformInput[T, U, C]{transformFactory[T, U, C]{v, fn}})
}

// TransformBidirectional is Transform that keeps the ability to step back.
func TransformBidirectional[T, U any, C ranges.BidirectionalCursor[T, C]](v View[T, C], fn func(T) U) View[U, *TransformBidirectionalCursor[T, U, C]] {
	return New[U, *TransformBidirectionalCursor[T, U, C]](transformBidirectional[T, U, C]{transformFactory[T, U, C]{v, fn}})
}

// TransformRandomAccess is Transform that keeps constant-time jumps.
func TransformRandomAccess[T, U any, C ranges.RandomAccessCursor[T, C]](v View[T, C], fn func(T) U) View[U, *TransformRandomAccessCursor[T, U, C]] {
	return New[U, *TransformRandomAccessCursor[T, U, C]](transformRandomAccess[T, U, C]{transformFactory[T, U, C]{v, fn}})
}
