package console

import "sync/atomic"

// widthTracker is a running maximum shared by all goroutines that log.
// It only ever grows, so rendered columns stay aligned or widen over the
// logger's lifetime, never narrow.
type widthTracker struct {
	max atomic.Int64
}

// observe folds a candidate width into the maximum and returns the
// resulting value. Lock-free: a compare-and-swap retry loop guarantees no
// concurrent update is ever lost, so the final value equals the true
// historical maximum under any interleaving.
func (t *widthTracker) observe(width int) int {
	for {
		old := t.max.Load()
		if int64(width) <= old {
			return int(old)
		}
		if t.max.CompareAndSwap(old, int64(width)) {
			return width
		}
	}
}

// current returns the maximum observed so far without updating it.
func (t *widthTracker) current() int {
	return int(t.max.Load())
}
