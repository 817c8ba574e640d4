package view

import "github.com/dacapoday/ranges"

// SplitCursor is a position in the segments of a view cut at delimiters.
// Each segment is a Sub view of the underlying range, delimiters excluded.
type SplitCursor[T any, C ranges.ForwardCursor[T, C]] struct {
	pos, seg, end C
	delim         func(T) bool
}

// find sets seg to the first delimiter at or after pos, or to end.
func (c *SplitCursor[T, C]) find() {
	c.seg = c.pos.Clone()
	for !c.seg.Equal(c.end) && !c.delim(c.seg.Read()) {
		c.seg.Next()
	}
}

func (c *SplitCursor[T, C]) Read() View[T, C] {
	return Sub[T](c.pos, c.seg)
}

// Next moves past the current segment and the delimiter that ends it.
// A delimiter at the very end of the range does not start a new segment.
func (c *SplitCursor[T, C]) Next() {
	c.pos = c.seg.Clone()
	if !c.pos.Equal(c.end) {
		c.pos.Next()
	}
	c.find()
}

func (c *SplitCursor[T, C]) Equal(other *SplitCursor[T, C]) bool {
	return c.pos.Equal(other.pos)
}

func (c *SplitCursor[T, C]) Clone() *SplitCursor[T, C] {
	return &SplitCursor[T, C]{pos: c.pos.Clone(), seg: c.seg.Clone(), end: c.end, delim: c.delim}
}

type splitFactory[T any, C ranges.ForwardCursor[T, C]] struct {
	base  View[T, C]
	delim func(T) bool
}

func (f splitFactory[T, C]) BeginCursor() *SplitCursor[T, C] {
	c := &SplitCursor[T, C]{pos: f.base.Begin(), end: f.base.End(), delim: f.delim}
	c.find()
	return c
}

func (f splitFactory[T, C]) EndCursor() *SplitCursor[T, C] {
	end := f.base.End()
	return &SplitCursor[T, C]{pos: end, seg: end.Clone(), end: end, delim: f.delim}
}

func (splitFactory[T, C]) Size() (int, bool) { return 0, false }

// SplitWhen cuts v into the segments between elements for which delim
// returns true. Adjacent delimiters produce empty segments.
func SplitWhen[T any, C ranges.ForwardCursor[T, C]](v View[T, C], delim func(T) bool) View[View[T, C], *SplitCursor[T, C]] {
	return New[View[T, C], *SplitCursor[T, C]](splitFactory[T, C]{base: v, delim: delim})
}

// Split cuts v at every element equal to delim.
func Split[T comparable, C ranges.ForwardCursor[T, C]](v View[T, C], delim T) View[View[T, C], *SplitCursor[T, C]] {
	return SplitWhen(v, func(x T) bool { return x == delim })
}
