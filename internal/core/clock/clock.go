package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer represents a scheduled one-shot callback.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks and reports the current time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// System is the wall-clock implementation backed by the time package.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Manual is a virtual clock that only moves when advanced.
// Callbacks fire serially on the goroutine calling Advance, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	seq      uint64
	fn       func()
	stopped  bool
	fired    bool
}

// NewManual creates a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (manual *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.seq++
	timer := &manualTimer{
		clock:    manual,
		deadline: manual.now.Add(d),
		seq:      manual.seq,
		fn:       f,
	}
	manual.pending = append(manual.pending, timer)
	return timer
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers scheduled by callbacks fire too if their deadline falls inside the window.
func (manual *Manual) Advance(d time.Duration) {
	manual.AdvanceTo(manual.Now().Add(d))
}

// AdvanceTo moves the clock to target, firing due timers on the way.
func (manual *Manual) AdvanceTo(target time.Time) {
	for {
		manual.mu.Lock()
		next := manual.nextDueLocked(target)
		if next == nil {
			if target.After(manual.now) {
				manual.now = target
			}
			manual.mu.Unlock()
			return
		}
		if next.deadline.After(manual.now) {
			manual.now = next.deadline
		}
		next.fired = true
		manual.removeLocked(next)
		manual.mu.Unlock()

		next.fn()
	}
}

// Pending reports how many timers are scheduled and not yet fired or stopped.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.pending)
}

func (manual *Manual) nextDueLocked(target time.Time) *manualTimer {
	if len(manual.pending) == 0 {
		return nil
	}
	sort.SliceStable(manual.pending, func(i, j int) bool {
		left, right := manual.pending[i], manual.pending[j]
		if left.deadline.Equal(right.deadline) {
			return left.seq < right.seq
		}
		return left.deadline.Before(right.deadline)
	})
	next := manual.pending[0]
	if next.deadline.After(target) {
		return nil
	}
	return next
}

func (manual *Manual) removeLocked(timer *manualTimer) {
	for index, candidate := range manual.pending {
		if candidate == timer {
			manual.pending = append(manual.pending[:index], manual.pending[index+1:]...)
			return
		}
	}
}

func (timer *manualTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	if timer.fired || timer.stopped {
		return false
	}
	timer.stopped = true
	timer.clock.removeLocked(timer)
	return true
}
