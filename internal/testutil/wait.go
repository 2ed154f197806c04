package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that drive the controller through real goroutines.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at cleanup, after timeout, or shortly
// before the test deadline, whichever comes first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, set := dt.Deadline(); set {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 {
				timeout = min(timeout, remaining)
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Eventually polls cond every interval and fails the test with msg if it is
// still false after timeout.
func Eventually(t testing.TB, timeout, interval time.Duration, cond func() bool, msg string, args ...any) {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !cond() {
		select {
		case <-timer.C:
			if cond() {
				return
			}
			if msg == "" {
				msg = "condition not met within %s"
				args = []any{timeout}
			}
			t.Fatalf(msg, args...)
		case <-ticker.C:
		}
	}
}
