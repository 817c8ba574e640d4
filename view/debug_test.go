//go:build debug

package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
)

func TestDebugPastEnd(t *testing.T) {
	take := Take(Iota(0, 10), 2)
	end := take.End()
	require.PanicsWithError(t, "view.Take.Read: past end", func() { end.Read() })
	require.PanicsWithError(t, "view.Take.Next: past end", func() { end.Next() })

	var calls int
	s := Stream(counter(0, &calls))
	pos := s.Begin()
	require.PanicsWithError(t, "view.StreamCursor.Read: past end", func() { pos.Read() })
	require.PanicsWithError(t, "view.StreamCursor.Next: past end", func() { pos.Next() })
}

func TestDebugAdvanceBounded(t *testing.T) {
	v := Iota(0, 10)
	require.PanicsWithError(t, "ranges.AdvanceBounded: out of range: n = -1", func() {
		ranges.AdvanceBounded[int](v.Begin(), -1, v.End())
	})
}
