// Package checked provides overflow-checked integer arithmetic.
package checked

import "golang.org/x/exp/constraints"

// Mul returns a*b and whether the product fits in D.
func Mul[D constraints.Signed](a, b D) (D, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return p, false
	}
	// MinValue * -1 wraps to itself and survives the division test.
	if a == -1 && b == p || b == -1 && a == p {
		return p, false
	}
	return p, true
}
