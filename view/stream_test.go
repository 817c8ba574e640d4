package view

import (
	"bufio"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func counter(n int, calls *int) func() (int, bool) {
	i := 0
	return func() (int, bool) {
		*calls++
		if i == n {
			return 0, false
		}
		i++
		return i - 1, true
	}
}

func TestStreamLazy(t *testing.T) {
	var calls int
	v := Stream(counter(3, &calls))
	pos, end := v.Begin(), v.End()
	require.Equal(t, 0, calls)

	require.False(t, pos.Equal(end))
	require.Equal(t, 1, calls)
	require.Equal(t, 0, pos.Read())
	require.Equal(t, 0, pos.Read())
	require.Equal(t, 1, calls)

	pos.Next()
	require.Equal(t, 1, calls)
	require.Equal(t, 1, pos.Read())
	require.Equal(t, 2, calls)

	_, ok := v.Size()
	require.False(t, ok)
}

func TestStreamShared(t *testing.T) {
	var calls int
	v := Stream(counter(5, &calls))
	a, b := v.Begin(), v.Begin()
	require.True(t, a.Equal(b))

	a.Next()
	require.Equal(t, 1, b.Read())

	require.Equal(t, []int{1, 2, 3, 4}, v.Collect())
	require.True(t, a.Equal(v.End()))
	require.True(t, v.End().Equal(b))
	require.True(t, v.Empty())
	require.Equal(t, 6, calls)
}

func TestSeq(t *testing.T) {
	v, stop := Seq(slices.Values([]string{"a", "b", "c"}))
	defer stop()
	require.Equal(t, []string{"a", "b", "c"}, v.Collect())
	require.True(t, v.Empty())
}

func TestSeqStop(t *testing.T) {
	v, stop := Seq(slices.Values([]string{"a", "b", "c"}))
	require.Equal(t, []string{"a", "b"}, TakeInput(v, 2).Collect())
	stop()
	require.True(t, v.Empty())
}

func TestTakeInputLeavesRest(t *testing.T) {
	var calls int
	v := Stream(counter(10, &calls))
	require.Equal(t, []int{0, 1, 2}, TakeInput(v, 3).Collect())
	require.Equal(t, 3, calls)
	require.Equal(t, []int{3, 4, 5, 6, 7, 8, 9}, v.Collect())
}

func TestFilterInput(t *testing.T) {
	var calls int
	even := func(x int) bool { return x%2 == 0 }
	v := RemoveIfInput(Stream(counter(7, &calls)), even)
	require.Equal(t, 0, calls)
	require.Equal(t, []int{1, 3, 5}, v.Collect())
	require.Equal(t, 8, calls)

	calls = 0
	odd := FilterInput(Stream(counter(4, &calls)), func(x int) bool { return x%2 == 1 })
	pos := odd.Begin()
	require.Equal(t, 2, calls)
	require.Equal(t, 1, pos.Read())
	require.Equal(t, 1, pos.Base().Read())
	require.True(t, FilterInput(Stream(counter(3, &calls)), func(int) bool { return false }).Empty())
}

func TestTransformInput(t *testing.T) {
	lines := Lines(strings.NewReader("a\nbb\nccc\n"))
	lengths := TransformInput(lines.View, func(s string) int { return len(s) })
	require.Equal(t, []int{1, 2, 3}, lengths.Collect())
	require.NoError(t, lines.Close())

	var calls int
	squares := TransformInput(Stream(counter(4, &calls)), func(x int) int { return x * x })
	_, ok := squares.Size()
	require.False(t, ok)
	require.Equal(t, []int{0, 1, 4}, TakeInput(squares, 3).Collect())
}

func TestLines(t *testing.T) {
	l := Lines(strings.NewReader("a\nb\n\nc"))
	require.Equal(t, []string{"a", "b", "", "c"}, l.Collect())
	require.NoError(t, l.Err())
	require.NoError(t, l.Close())
}

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestLinesClose(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	a, b, c := &closer{err: errA}, &closer{}, &closer{err: errB}

	l := Lines(strings.NewReader("x"), a, b, c)
	require.Equal(t, []string{"x"}, l.Collect())

	err := l.Close()
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.True(t, a.closed)
	require.True(t, b.closed)
	require.True(t, c.closed)

	require.NoError(t, l.Close())
}

func TestLinesTooLong(t *testing.T) {
	l := Lines(strings.NewReader("abcdefgh\nij"))
	l.Buffer(make([]byte, 0, 4), 4)
	require.Empty(t, l.Collect())
	require.ErrorIs(t, l.Err(), bufio.ErrTooLong)

	c := &closer{}
	l = Lines(strings.NewReader("abcdefgh"), c)
	l.Buffer(make([]byte, 0, 4), 4)
	require.True(t, l.Empty())
	require.ErrorIs(t, l.Close(), bufio.ErrTooLong)
	require.True(t, c.closed)
}
