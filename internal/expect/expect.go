//go:build debug

// Package expect checks caller preconditions.
//
// Checks are compiled in with -tags debug and are no-ops otherwise.
// A failed check is a programming error and panics with err wrapped
// under the name of the operation that detected it.
package expect

import "fmt"

// Enabled reports whether checks are compiled in.
const Enabled = true

// That panics if ok is false.
func That(ok bool, method string, err error) {
	if !ok {
		panic(fmt.Errorf("%s: %w", method, err))
	}
}

// Thatf panics if ok is false, adding formatted detail.
// Wrap calls on hot paths in `if Enabled` so args are not built in release
// builds.
func Thatf(ok bool, method string, err error, format string, args ...any) {
	if !ok {
		panic(fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...)))
	}
}
