package num

import "testing"

// SetOverflowChecks switches the overflow policy for the duration of a test.
func SetOverflowChecks(tb testing.TB, enabled bool) {
	og := overflowChecks
	overflowChecks = enabled
	tb.Cleanup(func() { overflowChecks = og })
}
