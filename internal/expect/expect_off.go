//go:build !debug

package expect

// Enabled reports whether checks are compiled in.
const Enabled = false

// That is a no-op in production.
// Enable with -tags debug for runtime checks.
func That(bool, string, error) {}

// Thatf is a no-op in production.
// Enable with -tags debug for runtime checks.
func Thatf(bool, string, error, string, ...any) {}
