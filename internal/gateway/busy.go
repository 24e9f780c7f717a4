package gateway

import "sync"

// BusyTracker is a reference-counted activity guard. The tracker is visible
// while any call is in flight; one call completing never hides activity from
// a call still running.
type BusyTracker struct {
	mu       sync.Mutex
	count    int
	onChange func(bool)
}

// OnChange registers a callback fired when activity starts (true) and when
// the last in-flight call settles (false).
func (t *BusyTracker) OnChange(fn func(bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// Busy reports whether any call is in flight.
func (t *BusyTracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count > 0
}

// Begin records the start of a call.
func (t *BusyTracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++
	if t.count == 1 && t.onChange != nil {
		t.onChange(true)
	}
}

// End records the settlement of a call, success or failure.
func (t *BusyTracker) End() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count == 0 {
		return
	}

	t.count--
	if t.count == 0 && t.onChange != nil {
		t.onChange(false)
	}
}
