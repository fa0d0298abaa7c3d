package internal

import (
	"fmt"
	"time"
)

// Timer is the start/stop state machine driven by the interactive event
// loop. It is process-local and strictly single-threaded; the store handle
// is injected at construction so tests can swap in a fake.
type Timer struct {
	store RecordStore
	now   func() time.Time

	running bool
	// startedAt is taken from now() at Start. A time.Time returned by
	// time.Now carries both the monotonic reading (used for the elapsed
	// computation) and the wall clock (used for Record.CreatedAt).
	startedAt time.Time
	logs      []string
}

// NewTimer creates a stopped timer backed by store.
func NewTimer(store RecordStore) *Timer {
	return &Timer{
		store: store,
		now:   time.Now,
	}
}

// Running reports whether a session is in progress.
func (t *Timer) Running() bool {
	return t.running
}

// Logs returns the accumulated event log, oldest first.
func (t *Timer) Logs() []string {
	return t.logs
}

// Elapsed returns the whole seconds since the running session started,
// or zero when stopped.
func (t *Timer) Elapsed() int64 {
	if !t.running {
		return 0
	}
	return int64(t.now().Sub(t.startedAt).Seconds())
}

// Start begins a new session and logs it. Calling Start while already
// running is a no-op: no state change, no duplicate log entry.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.startedAt = t.now()
	t.logs = append(t.logs, "Timer started.")
}

// Stop ends the running session, logs the elapsed time, and persists a
// record whose CreatedAt is the session's start. Calling Stop while already
// stopped is a no-op.
//
// The state transition and log entry complete even when the insert fails,
// so a storage problem can never wedge the timer; the error is returned for
// the caller to surface.
func (t *Timer) Stop() error {
	if !t.running {
		return nil
	}
	elapsed := int64(t.now().Sub(t.startedAt).Seconds())
	rec := NewRecord(t.startedAt.Unix(), elapsed)

	t.logs = append(t.logs, fmt.Sprintf("Timer stopped. Duration: %s.", FormatDuration(elapsed)))
	t.running = false
	t.startedAt = time.Time{}

	if err := t.store.Insert(&rec); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}
