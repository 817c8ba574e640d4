package view

import "github.com/dacapoday/ranges"

// filter skips the elements its predicate rejects.
type filter[T any, C ranges.InputCursor[T, C]] struct {
	pos, end C
	pred     func(T) bool
}

// satisfy moves pos to the next accepted element, or to end.
func (c *filter[T, C]) satisfy() {
	for !c.pos.Equal(c.end) && !c.pred(c.pos.Read()) {
		c.pos.Next()
	}
}

func (c *filter[T, C]) Read() T { return c.pos.Read() }

func (c *filter[T, C]) Next() {
	c.pos.Next()
	c.satisfy()
}

// Base returns the position in the underlying view.
func (c *filter[T, C]) Base() C { return c.pos }

// FilterCursor is a position in a filtered forward view.
type FilterCursor[T any, C ranges.ForwardCursor[T, C]] struct {
	filter[T, C]
}

func (c *FilterCursor[T, C]) Equal(other *FilterCursor[T, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *FilterCursor[T, C]) Clone() *FilterCursor[T, C] {
	return &FilterCursor[T, C]{filter[T, C]{c.pos.Clone(), c.end, c.pred}}
}

// FilterInputCursor is a position in a filtered single-pass view.
type FilterInputCursor[T any, C ranges.InputCursor[T, C]] struct {
	filter[T, C]
}

func (c *FilterInputCursor[T, C]) Equal(other *FilterInputCursor[T, C]) bool {
	return c.pos.Equal(other.pos)
}

type filterFactory[T any, C ranges.InputCursor[T, C]] struct {
	base View[T, C]
	pred func(T) bool
}

func (f filterFactory[T, C]) begin() filter[T, C] {
	c := filter[T, C]{f.base.Begin(), f.base.End(), f.pred}
	c.satisfy()
	return c
}

func (f filterFactory[T, C]) end() filter[T, C] {
	end := f.base.End()
	return filter[T, C]{end, end, f.pred}
}

func (filterFactory[T, C]) Size() (int, bool) { return 0, false }

type filterForward[T any, C ranges.ForwardCursor[T, C]] struct {
	filterFactory[T, C]
}

func (f filterForward[T, C]) BeginCursor() *FilterCursor[T, C] { return &FilterCursor[T, C]{f.begin()} }

func (f filterForward[T, C]) EndCursor() *FilterCursor[T, C] { return &FilterCursor[T, C]{f.end()} }

type filterInput[T any, C ranges.InputCursor[T, C]] struct {
	filterFactory[T, C]
}

func (f filterInput[T, C]) BeginCursor() *FilterInputCursor[T, C] {
	return &FilterInputCursor[T, C]{f.begin()}
}

func (f filterInput[T, C]) EndCursor() *FilterInputCursor[T, C] {
	return &FilterInputCursor[T, C]{f.end()}
}

// Filter views the elements of v for which keep returns true.
func Filter[T any, C ranges.ForwardCursor[T, C]](v View[T, C], keep func(T) bool) View[T, *FilterCursor[T, C]] {
	return New[T, *FilterCursor[T, C]](filterForward[T, C]{filterFactory[T, C]{v, keep}})
}

// RemoveIf views the elements of v for which drop returns false.
func RemoveIf[T any, C ranges.ForwardCursor[T, C]](v View[T, C], drop func(T) bool) View[T, *FilterCursor[T, C]] {
	return Filter(v, func(x T) bool { return !drop(x) })
}

// FilterInput is Filter for single-pass views. Beginning the view reads up
// to the first accepted element.
func FilterInput[T any, C ranges.InputCursor[T, C]](v View[T, C], keep func(T) bool) View[T, *FilterInputCursor[T, C]] {
	return New[T, *FilterInputCursor[T, C]](filterInput[T, C]{filterFactory[T, C]{v, keep}})
}

// RemoveIfInput is RemoveIf for single-pass views.
func RemoveIfInput[T any, C ranges.InputCursor[T, C]](v View[T, C], drop func(T) bool) View[T, *FilterInputCursor[T, C]] {
	return FilterInput(v, func(x T) bool { return !drop(x) })
}
