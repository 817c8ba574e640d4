package iterator_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/iterator"
	"github.com/dacapoday/ranges/view"
)

func TestInput(t *testing.T) {
	v, stop := view.Seq(slices.Values([]string{"a", "b", "c"}))
	defer stop()

	it := iterator.NewInput[string](v.Begin())
	end := v.End()
	require.Equal(t, ranges.Input, it.Category())
	require.False(t, it.Equal(end))
	require.False(t, end.Equal(it.Cursor()))

	require.Equal(t, "a", it.Get())
	it.Next()

	var rest []string
	for s := range it.All(end) {
		rest = append(rest, s)
	}
	require.Equal(t, []string{"b", "c"}, rest)
	require.True(t, it.Equal(end))
	require.True(t, end.Equal(it.Cursor()))
}

func TestInputAllStop(t *testing.T) {
	v := view.Iota(0, 10)
	it := iterator.NewInput[int](v.Begin())
	for x := range it.All(v.End()) {
		if x == 4 {
			break
		}
	}
	require.Equal(t, 4, it.Get())
}

func TestForward(t *testing.T) {
	v := view.Filter(view.Iota(0, 10), func(x int) bool { return x%3 == 0 })
	it := iterator.NewForward[int](v.Begin())
	require.Equal(t, ranges.Forward, it.Category())

	old := it.PostNext()
	require.Equal(t, 0, old.Get())
	require.Equal(t, 3, it.Get())

	c := it.Clone()
	c.Next()
	require.Equal(t, 3, it.Get())
	require.Equal(t, 6, c.Get())
	require.False(t, c.Same(it))

	it.Next()
	require.True(t, c.Same(it))
	require.True(t, it.Same(c))
}

func TestBidirectional(t *testing.T) {
	v := view.Slice([]int{10, 20, 30})
	it := iterator.NewBidirectional[int](v.End())
	require.Equal(t, ranges.Bidirectional, it.Category())

	old := it.PostPrev()
	require.True(t, old.Equal(v.End()))
	require.Equal(t, 30, it.Get())

	it.Prev()
	require.Equal(t, 20, it.Get())

	old = it.PostNext()
	require.Equal(t, 20, old.Get())
	require.Equal(t, 30, it.Get())
}

func TestRandomAccess(t *testing.T) {
	v := view.Slice([]int{10, 20, 30, 40, 50})
	begin := iterator.NewRandomAccess[int](v.Begin())
	end := iterator.NewRandomAccess[int](v.End())
	require.Equal(t, ranges.RandomAccess, begin.Category())

	require.Equal(t, 5, end.Diff(begin))
	require.Equal(t, -5, begin.Diff(end))
	require.True(t, begin.Less(end))
	require.False(t, end.Less(begin))

	require.Equal(t, 30, begin.At(2))
	require.Equal(t, 10, begin.Get())

	it := begin.Plus(4)
	require.Equal(t, 50, it.Get())
	back := it.Minus(3)
	require.Equal(t, 20, back.Get())

	it.Sub(2)
	require.Equal(t, 30, it.Get())
	it.Add(2)
	it.Next()
	require.True(t, it.Equal(v.End()))
	require.True(t, it.Same(end))

	old := it.PostPrev()
	require.True(t, old.Same(end))
	require.Equal(t, 50, it.Get())
	assert.Equal(t, 4, it.Diff(begin))
}
