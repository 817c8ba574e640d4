package view

import "golang.org/x/exp/constraints"

// IotaCursor is a random-access position in an integer interval.
type IotaCursor[N constraints.Integer] struct {
	v N
}

func (c *IotaCursor[N]) Read() N { return c.v }

func (c *IotaCursor[N]) Next() { c.v++ }

func (c *IotaCursor[N]) Prev() { c.v-- }

func (c *IotaCursor[N]) Advance(n int) { c.v = N(int(c.v) + n) }

func (c *IotaCursor[N]) DistanceTo(other *IotaCursor[N]) int { return int(other.v) - int(c.v) }

func (c *IotaCursor[N]) Equal(other *IotaCursor[N]) bool { return c.v == other.v }

func (c *IotaCursor[N]) Clone() *IotaCursor[N] { return &IotaCursor[N]{v: c.v} }

type iotaFactory[N constraints.Integer] struct {
	from, to N
}

func (f iotaFactory[N]) BeginCursor() *IotaCursor[N] { return &IotaCursor[N]{v: f.from} }

func (f iotaFactory[N]) EndCursor() *IotaCursor[N] { return &IotaCursor[N]{v: f.to} }

func (f iotaFactory[N]) Size() (int, bool) { return int(f.to) - int(f.from), true }

// Iota views the half-open interval [from, to). It is empty if to < from.
func Iota[N constraints.Integer](from, to N) View[N, *IotaCursor[N]] {
	if to < from {
		to = from
	}
	return New[N, *IotaCursor[N]](iotaFactory[N]{from: from, to: to})
}
