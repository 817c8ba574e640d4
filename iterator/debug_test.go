//go:build debug

package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/iterator"
	"github.com/dacapoday/ranges/view"
)

func recovered(f func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()
	f()
	return
}

func TestDebugCountedPastEnd(t *testing.T) {
	pos := iterator.NewCountedForward[int](view.Iota(0, 10).Begin(), 1)
	pos.Next()
	require.ErrorIs(t, recovered(func() { pos.Read() }), ranges.ErrPastEnd)
	require.ErrorIs(t, recovered(func() { pos.Next() }), ranges.ErrPastEnd)
	require.Zero(t, pos.Count())
}

func TestDebugCountedOutOfRange(t *testing.T) {
	pos := iterator.NewCountedRandomAccess[int](view.Iota(0, 10).Begin(), 3)
	require.ErrorIs(t, recovered(func() { pos.Advance(4) }), ranges.ErrOutOfRange)
	require.Equal(t, 3, pos.Count())
}
