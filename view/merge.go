package view

import "github.com/dacapoday/ranges"

// MergeCursor is a position in the sorted union of two sorted views.
//
// The over view acts as an overlay: when both sides hold equal elements
// (cmp returns 0) the over element is read and both sides step past it.
/*
Merge state list
  only over left        cover, !same
  only base left        !cover, !same
  both, over < base     cover, !same
  both, over > base     !cover, !same
  both, equal           cover, same
  both exhausted        !cover, !same (Equal to end)
*/
type MergeCursor[T any, O ranges.ForwardCursor[T, O], B ranges.ForwardCursor[T, B]] struct {
	over, overEnd O
	base, baseEnd B
	cmp           func(a, b T) int
	cover, same   bool
}

// settle derives cover and same from the two read positions.
func (c *MergeCursor[T, O, B]) settle() {
	overOK := !c.over.Equal(c.overEnd)
	baseOK := !c.base.Equal(c.baseEnd)
	switch {
	case overOK && baseOK:
		r := c.cmp(c.over.Read(), c.base.Read())
		c.cover, c.same = r <= 0, r == 0
	case overOK:
		c.cover, c.same = true, false
	default:
		c.cover, c.same = false, false
	}
}

func (c *MergeCursor[T, O, B]) Read() T {
	if c.cover {
		return c.over.Read()
	}
	return c.base.Read()
}

func (c *MergeCursor[T, O, B]) Next() {
	if c.same {
		c.over.Next()
		c.base.Next()
	} else if c.cover {
		c.over.Next()
	} else {
		c.base.Next()
	}
	c.settle()
}

// Cover reports whether the current element comes from the over view.
func (c *MergeCursor[T, O, B]) Cover() bool {
	return c.cover
}

// Over returns the read position in the over view.
func (c *MergeCursor[T, O, B]) Over() O {
	return c.over
}

// Base returns the read position in the base view.
func (c *MergeCursor[T, O, B]) Base() B {
	return c.base
}

func (c *MergeCursor[T, O, B]) Equal(other *MergeCursor[T, O, B]) bool {
	return c.over.Equal(other.over) && c.base.Equal(other.base)
}

func (c *MergeCursor[T, O, B]) Clone() *MergeCursor[T, O, B] {
	d := *c
	d.over, d.base = c.over.Clone(), c.base.Clone()
	return &d
}

type mergeFactory[T any, O ranges.ForwardCursor[T, O], B ranges.ForwardCursor[T, B]] struct {
	over View[T, O]
	base View[T, B]
	cmp  func(a, b T) int
}

func (f mergeFactory[T, O, B]) BeginCursor() *MergeCursor[T, O, B] {
	c := &MergeCursor[T, O, B]{
		over: f.over.Begin(), overEnd: f.over.End(),
		base: f.base.Begin(), baseEnd: f.base.End(),
		cmp: f.cmp,
	}
	c.settle()
	return c
}

func (f mergeFactory[T, O, B]) EndCursor() *MergeCursor[T, O, B] {
	overEnd, baseEnd := f.over.End(), f.base.End()
	return &MergeCursor[T, O, B]{
		over: overEnd, overEnd: overEnd,
		base: baseEnd, baseEnd: baseEnd,
		cmp: f.cmp,
	}
}

func (mergeFactory[T, O, B]) Size() (int, bool) { return 0, false }

// Merge views the sorted union of over and base, both sorted by cmp.
// Elements present in both appear once, taken from over.
func Merge[T any, O ranges.ForwardCursor[T, O], B ranges.ForwardCursor[T, B]](over View[T, O], base View[T, B], cmp func(a, b T) int) View[T, *MergeCursor[T, O, B]] {
	return New[T, *MergeCursor[T, O, B]](mergeFactory[T, O, B]{over: over, base: base, cmp: cmp})
}
