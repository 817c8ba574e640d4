package iterator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/iterator"
	"github.com/dacapoday/ranges/view"
)

var (
	_ ranges.InputCursor[int, *iterator.Counted[int, *view.StreamCursor[int]]]                        = (*iterator.Counted[int, *view.StreamCursor[int]])(nil)
	_ ranges.ForwardCursor[int, *iterator.CountedForward[int, *view.SliceCursor[int]]]                = (*iterator.CountedForward[int, *view.SliceCursor[int]])(nil)
	_ ranges.BidirectionalCursor[int, *iterator.CountedBidirectional[int, *view.SliceCursor[int]]]    = (*iterator.CountedBidirectional[int, *view.SliceCursor[int]])(nil)
	_ ranges.RandomAccessCursor[int, *iterator.CountedRandomAccess[int, *view.SliceCursor[int]]]      = (*iterator.CountedRandomAccess[int, *view.SliceCursor[int]])(nil)
)

func TestCountedExhaustion(t *testing.T) {
	for c := range 6 {
		v := view.Iota(0, 100)
		pos := iterator.NewCounted[int](v.Begin(), c)
		end := iterator.NewCounted[int](v.Begin(), 0)
		require.Equal(t, c, pos.Count())

		steps := 0
		for ; !pos.Equal(end); pos.Next() {
			require.Equal(t, steps, pos.Read())
			steps++
			require.Equal(t, c-steps+1, pos.Count())
		}
		require.Equal(t, c, steps)
		require.Zero(t, pos.Count())
		require.True(t, end.Equal(pos))
		require.Equal(t, c, pos.Base().Read())
	}
}

func TestCountedIgnoresBaseEnd(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	pos := iterator.NewCountedForward[int](view.Slice(s).Begin(), 2)
	end := iterator.NewCountedForward[int](view.Slice(s).End(), 0)

	var got []int
	for ; !pos.Equal(end); pos.Next() {
		got = append(got, pos.Read())
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestCountedForwardClone(t *testing.T) {
	pos := iterator.NewCountedForward[int](view.Iota(0, 10).Begin(), 5)
	c := pos.Clone()
	c.Next()
	c.Next()
	require.Equal(t, 5, pos.Count())
	require.Equal(t, 0, pos.Read())
	require.Equal(t, 3, c.Count())
	require.Equal(t, 2, c.Read())
	require.False(t, c.Equal(pos))
}

func TestCountedBidirectional(t *testing.T) {
	pos := iterator.NewCountedBidirectional[int](view.Slice([]int{7, 8, 9}).Begin(), 3)
	pos.Next()
	pos.Next()
	require.Equal(t, 1, pos.Count())
	pos.Prev()
	require.Equal(t, 2, pos.Count())
	require.Equal(t, 8, pos.Read())

	c := pos.Clone()
	require.True(t, c.Equal(pos))
}

func TestCountedRandomAccess(t *testing.T) {
	v := view.Iota(0, 10)
	pos := iterator.NewCountedRandomAccess[int](v.Begin(), 8)
	end := iterator.NewCountedRandomAccess[int](v.Begin(), 0)
	require.Equal(t, 8, pos.DistanceTo(end))
	require.Equal(t, -8, end.DistanceTo(pos))

	pos.Advance(5)
	require.Equal(t, 3, pos.Count())
	require.Equal(t, 5, pos.Read())

	pos.Advance(-2)
	require.Equal(t, 5, pos.Count())
	require.Equal(t, 3, pos.Read())

	pos.Advance(5)
	require.True(t, pos.Equal(end))

	it := iterator.NewRandomAccess[int](pos)
	it.Sub(1)
	require.Equal(t, 7, it.Get())
}

func TestCountedNegative(t *testing.T) {
	v := view.Iota(0, 10)
	require.PanicsWithError(t, "iterator: negative count: -1", func() {
		iterator.NewCounted[int](v.Begin(), -1)
	})
	require.PanicsWithError(t, "iterator: negative count: -3", func() {
		iterator.NewCountedRandomAccess[int](v.Begin(), -3)
	})
}

func ExampleNewCountedForward() {
	v := view.Slice([]string{"x", "y", "z"})
	pos := iterator.NewCountedForward[string](v.Begin(), 2)
	end := iterator.NewCountedForward[string](v.Begin(), 0)
	for ; !pos.Equal(end); pos.Next() {
		fmt.Println(pos.Read(), pos.Count())
	}

	// Output:
	// x 2
	// y 1
}
