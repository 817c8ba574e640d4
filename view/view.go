// Package view builds lazy, composable ranges out of cursor factories.
//
// A View owns a Factory that knows how to produce the begin and end cursors
// of a sequence. Adaptors such as Take, Filter, Split and the chunk package
// wrap one view in another without touching any element until the result is
// iterated. The cursor type of a view carries its traversal strength, so an
// algorithm that needs to traverse twice does not compile against a view over
// a single-pass source.
//
// Ranges are common: End returns a cursor of the same type as Begin.
package view

import (
	"iter"

	"github.com/dacapoday/ranges"
)

// Factory produces the cursors of a view.
//
// Adaptor state shared by every cursor of one view (chunk size, single-pass
// read position, cached bounds) lives in the factory.
type Factory[C any] interface {
	BeginCursor() C
	EndCursor() C
	// Size reports the number of elements if it is known without traversal.
	Size() (int, bool)
}

// View is a lazily evaluated range of T traversed with cursors of type C.
type View[T any, C ranges.InputCursor[T, C]] struct {
	f Factory[C]
}

// New returns a view over the cursors produced by f.
func New[T any, C ranges.InputCursor[T, C]](f Factory[C]) View[T, C] {
	return View[T, C]{f: f}
}

// Begin returns a cursor at the first element.
func (v View[T, C]) Begin() C {
	return v.f.BeginCursor()
}

// End returns the end cursor.
func (v View[T, C]) End() C {
	return v.f.EndCursor()
}

// Size reports the number of elements when it is known in constant time.
func (v View[T, C]) Size() (int, bool) {
	return v.f.Size()
}

// Empty reports whether the view has no elements.
func (v View[T, C]) Empty() bool {
	if n, ok := v.f.Size(); ok {
		return n == 0
	}
	return v.Begin().Equal(v.End())
}

// All yields the elements in order.
func (v View[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos, end := v.Begin(), v.End(); !pos.Equal(end); pos.Next() {
			if !yield(pos.Read()) {
				return
			}
		}
	}
}

// Collect reads every element into a new slice.
func (v View[T, C]) Collect() []T {
	var out []T
	if n, ok := v.f.Size(); ok {
		out = make([]T, 0, n)
	}
	for x := range v.All() {
		out = append(out, x)
	}
	return out
}

// Pipe applies adaptor to v with arg.
//
//	chunks := view.Pipe(view.Pipe(src, view.RemoveIf, even), chunk.Forward, 2)
func Pipe[V, A, W any](v V, adaptor func(V, A) W, arg A) W {
	return adaptor(v, arg)
}
