// Package leaktest checks that tests of long-running components, such as the
// catalog watcher and the closure cache, leave no goroutines or heap behind.
package leaktest

import (
	"context"
	"runtime"
	"testing"
	"time"
)

const (
	// settleTimeout bounds how long checks wait for goroutines to exit
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
	bytesPerMB    = 1 << 20
)

// Goroutines records the current goroutine count and fails t at cleanup if
// more than tolerance extra goroutines are still running once they have had
// settleTimeout to exit. Register it first so its cleanup runs last.
func Goroutines(t testing.TB, tolerance int) {
	t.Helper()

	runtime.Gosched()
	time.Sleep(pollInterval)
	before := runtime.NumGoroutine()

	t.Cleanup(func() {
		after := waitForGoroutines(before+tolerance, settleTimeout)
		if leaked := after - before; leaked > tolerance {
			t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", before, after, leaked, tolerance)
		}
	})
}

// waitForGoroutines polls until at most limit goroutines run or timeout
// passes, and returns the last count seen
func waitForGoroutines(limit int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	n := runtime.NumGoroutine()
	for n > limit && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		n = runtime.NumGoroutine()
	}
	return n
}

// HeapGrowth runs fn and fails t if the live heap grew by more than maxMB.
// Use it to check that bounded caches stay bounded under repeated use.
func HeapGrowth(t testing.TB, maxMB float64, fn func()) {
	t.Helper()

	before := liveHeap()
	fn()
	growth := float64(int64(liveHeap())-int64(before)) / bytesPerMB

	if growth > maxMB {
		t.Errorf("heap grew by %.2fMB (max %.2fMB)", growth, maxMB)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// Background runs fn until the returned stop function is called. stop
// cancels fn's context and returns its error, failing the test if fn does
// not return within the settle timeout.
func Background(t testing.TB, fn func(ctx context.Context) error) (stop func() error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()

	return func() error {
		t.Helper()
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(settleTimeout):
			t.Errorf("background function did not stop within %s", settleTimeout)
			return context.DeadlineExceeded
		}
	}
}
