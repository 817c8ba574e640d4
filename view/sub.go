package view

import "github.com/dacapoday/ranges"

type subFactory[T any, C ranges.ForwardCursor[T, C]] struct {
	begin, end C
}

func (f subFactory[T, C]) BeginCursor() C { return f.begin.Clone() }

func (f subFactory[T, C]) EndCursor() C { return f.end.Clone() }

func (subFactory[T, C]) Size() (int, bool) { return 0, false }

// subN is a subrange whose length the caller already knows.
type subN[T any, C ranges.ForwardCursor[T, C]] struct {
	subFactory[T, C]
	n int
}

func (f subN[T, C]) Size() (int, bool) { return f.n, true }

type subRandom[T any, C ranges.RandomAccessCursor[T, C]] struct {
	subFactory[T, C]
}

func (f subRandom[T, C]) Size() (int, bool) { return f.begin.DistanceTo(f.end), true }

// Sub views the elements between two positions of the same sequence.
// Both positions are copied, so moving them afterwards does not affect the
// view. The view is unsized; see SubSized and SubN.
func Sub[T any, C ranges.ForwardCursor[T, C]](begin, end C) View[T, C] {
	return New[T, C](subFactory[T, C]{begin: begin.Clone(), end: end.Clone()})
}

// SubSized is Sub for random-access positions; its size is end - begin.
func SubSized[T any, C ranges.RandomAccessCursor[T, C]](begin, end C) View[T, C] {
	return New[T, C](subRandom[T, C]{subFactory[T, C]{begin: begin.Clone(), end: end.Clone()}})
}

// SubN is Sub for a subrange known to hold n elements.
func SubN[T any, C ranges.ForwardCursor[T, C]](begin, end C, n int) View[T, C] {
	return New[T, C](subN[T, C]{subFactory[T, C]{begin: begin.Clone(), end: end.Clone()}, n})
}
