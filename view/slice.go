package view

// SliceCursor is a random-access, writable position in a slice.
type SliceCursor[T any] struct {
	s []T
	i int
}

func (c *SliceCursor[T]) Read() T { return c.s[c.i] }

func (c *SliceCursor[T]) Write(v T) { c.s[c.i] = v }

// Arrow returns a pointer to the element under the cursor.
func (c *SliceCursor[T]) Arrow() *T { return &c.s[c.i] }

// Move returns the element and zeroes its slot.
func (c *SliceCursor[T]) Move() T {
	v := c.s[c.i]
	var zero T
	c.s[c.i] = zero
	return v
}

// Index returns the offset of the cursor in the slice.
func (c *SliceCursor[T]) Index() int { return c.i }

func (c *SliceCursor[T]) Next() { c.i++ }

func (c *SliceCursor[T]) Prev() { c.i-- }

func (c *SliceCursor[T]) Advance(n int) { c.i += n }

func (c *SliceCursor[T]) DistanceTo(other *SliceCursor[T]) int { return other.i - c.i }

func (c *SliceCursor[T]) Equal(other *SliceCursor[T]) bool { return c.i == other.i }

func (c *SliceCursor[T]) Clone() *SliceCursor[T] {
	return &SliceCursor[T]{s: c.s, i: c.i}
}

type sliceFactory[T any] []T

func (s sliceFactory[T]) BeginCursor() *SliceCursor[T] { return &SliceCursor[T]{s: s} }

func (s sliceFactory[T]) EndCursor() *SliceCursor[T] { return &SliceCursor[T]{s: s, i: len(s)} }

func (s sliceFactory[T]) Size() (int, bool) { return len(s), true }

// Slice views s without copying it. Writes through its cursors modify s.
func Slice[T any](s []T) View[T, *SliceCursor[T]] {
	return New[T, *SliceCursor[T]](sliceFactory[T](s))
}
