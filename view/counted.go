package view

import (
	"fmt"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/iterator"
)

type countedFactory[T any, C ranges.ForwardCursor[T, C]] struct {
	begin C
	n     int
}

func (f countedFactory[T, C]) BeginCursor() *iterator.CountedForward[T, C] {
	return iterator.NewCountedForward[T](f.begin.Clone(), f.n)
}

func (f countedFactory[T, C]) EndCursor() *iterator.CountedForward[T, C] {
	return iterator.NewCountedForward[T](f.begin.Clone(), 0)
}

func (f countedFactory[T, C]) Size() (int, bool) { return f.n, true }

// Counted views the n elements starting at begin. The sequence must have at
// least n elements from begin; unlike Take, the end of the underlying
// sequence is never consulted.
func Counted[T any, C ranges.ForwardCursor[T, C]](begin C, n int) View[T, *iterator.CountedForward[T, C]] {
	if n < 0 {
		panic(fmt.Errorf("view.Counted: %w: %d", ranges.ErrNegativeCount, n))
	}
	return New[T, *iterator.CountedForward[T, C]](countedFactory[T, C]{begin: begin.Clone(), n: n})
}
