package ranges_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/view"
)

func TestDispatch(t *testing.T) {
	s := []int{1, 2, 3}
	v := view.Slice(s)
	pos := v.Begin()

	require.Equal(t, 1, ranges.Read[int](pos))
	ranges.Next(pos)
	ranges.Write(pos, 20)
	require.Equal(t, 20, s[1])
	*ranges.Arrow[*int](pos) = 21
	require.Equal(t, 21, s[1])

	c := ranges.Clone(pos)
	ranges.Advance(c, 1)
	require.Equal(t, 1, ranges.DistanceTo(pos, c))
	ranges.Prev(c)
	require.True(t, ranges.Equal(pos, c))

	require.Equal(t, 21, ranges.Move[int](c))
	require.Zero(t, s[1])
}

func TestAdvanceBounded(t *testing.T) {
	v := view.Filter(view.Iota(0, 10), func(x int) bool { return x%2 == 0 })

	pos := v.Begin()
	require.Zero(t, ranges.AdvanceBounded[int](pos, 3, v.End()))
	require.Equal(t, 6, pos.Read())

	require.Equal(t, 3, ranges.AdvanceBounded[int](pos, 5, v.End()))
	require.True(t, pos.Equal(v.End()))

	require.Equal(t, 4, ranges.AdvanceBounded[int](pos, 4, v.End()))
	require.Zero(t, ranges.AdvanceBounded[int](pos, 0, v.End()))
}

func TestAdvanceBoundedRandom(t *testing.T) {
	v := view.Iota(0, 10)

	pos := v.Begin()
	require.Zero(t, ranges.AdvanceBoundedRandom[int](pos, 4, v.End()))
	require.Equal(t, 4, pos.Read())

	require.Equal(t, 2, ranges.AdvanceBoundedRandom[int](pos, 8, v.End()))
	require.True(t, pos.Equal(v.End()))

	ranges.Retreat[int](pos, 3)
	require.Equal(t, 7, pos.Read())
}

func TestDistance(t *testing.T) {
	odd := view.RemoveIf(view.Iota(0, 11), func(x int) bool { return x%2 == 0 })
	begin := odd.Begin()
	require.Equal(t, 5, ranges.Distance[int](begin, odd.End()))
	require.Equal(t, 1, begin.Read())

	s := view.Slice(slices.Repeat([]byte{'x'}, 7))
	require.Equal(t, 7, ranges.DistanceRandom[byte](s.Begin(), s.End()))
	require.Equal(t, -7, ranges.DistanceRandom[byte](s.End(), s.Begin()))
}

func TestCategory(t *testing.T) {
	require.Equal(t, "input", ranges.Input.String())
	require.Equal(t, "forward", ranges.Forward.String())
	require.Equal(t, "bidirectional", ranges.Bidirectional.String())
	require.Equal(t, "random-access", ranges.RandomAccess.String())
	require.Equal(t, "unknown", ranges.Category(9).String())
	require.True(t, ranges.Input < ranges.Forward)
	require.True(t, ranges.Forward < ranges.Bidirectional)
	require.True(t, ranges.Bidirectional < ranges.RandomAccess)
}
