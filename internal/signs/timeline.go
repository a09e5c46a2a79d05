package signs

import "time"

// Timer is a cancellable scheduled callback. Stop reports whether the
// callback was prevented from firing.
type Timer interface {
	Stop() bool
}

// Scheduler schedules one-shot callbacks. The production implementation
// wraps time.AfterFunc; tests substitute a manual scheduler to drive the
// timeline deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Timeline holds the set of currently scheduled, not-yet-fired work items
// of one animation pass, plus a generation counter guarding against stale
// callbacks that outlive a Stop on a live timer.
//
// Timeline performs no locking of its own; the owning Translator guards it
// with its mutex.
type Timeline struct {
	items      []Timer
	generation uint64
}

// CancelAll stops every pending item and advances the generation so that
// any item that already slipped past its timer's Stop is ignored when it
// runs. Returns the new generation.
func (tl *Timeline) CancelAll() uint64 {
	for _, item := range tl.items {
		item.Stop()
	}
	tl.items = nil
	tl.generation++
	return tl.generation
}

// Add tracks a newly scheduled item.
func (tl *Timeline) Add(item Timer) {
	tl.items = append(tl.items, item)
}

// Generation returns the current generation.
func (tl *Timeline) Generation() uint64 {
	return tl.generation
}

// Pending returns the number of tracked items.
func (tl *Timeline) Pending() int {
	return len(tl.items)
}
