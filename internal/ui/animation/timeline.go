package animation

import (
	"sync"
	"time"

	"seekbutton/internal/core/clock"
)

// DefaultFrame is the step Timeline.RunUntil uses when given none.
const DefaultFrame = time.Second / 60

// Timeline is a deterministic executor driven by a manual clock.
// Transitions are evaluated at exact clock instants, which makes it
// suitable for tests and headless simulation.
type Timeline struct {
	mu     sync.Mutex
	store  *Store
	clock  *clock.Manual
	active []*timelineEntry
}

type timelineEntry struct {
	run   *running
	start time.Time
}

// NewTimeline creates a Timeline writing into store.
func NewTimeline(store *Store, manual *clock.Manual) *Timeline {
	return &Timeline{
		store: store,
		clock: manual,
	}
}

// Store returns the parameter store the timeline writes.
func (timeline *Timeline) Store() *Store {
	return timeline.store
}

// Set writes value immediately.
func (timeline *Timeline) Set(param Param, value float64) {
	timeline.store.Set(param, value)
}

// SetLabel replaces the accumulation label text.
func (timeline *Timeline) SetLabel(text string) {
	timeline.store.SetLabel(text)
}

// Animate schedules transition on the manual clock.
func (timeline *Timeline) Animate(transition Transition) {
	if transition.Delay > 0 {
		timeline.clock.AfterFunc(transition.Delay, func() {
			timeline.start(transition)
		})
		return
	}
	timeline.start(transition)
}

// Frame evaluates every active transition at the current clock time.
func (timeline *Timeline) Frame() {
	timeline.mu.Lock()
	defer timeline.mu.Unlock()
	timeline.frameLocked(timeline.clock.Now())
}

// Active reports how many transitions are still interpolating.
func (timeline *Timeline) Active() int {
	timeline.mu.Lock()
	defer timeline.mu.Unlock()
	return len(timeline.active)
}

// RunUntil advances the clock to deadline in frame-sized steps, evaluating
// transitions after each step. Timers already due at the current time fire
// even when deadline has passed.
func (timeline *Timeline) RunUntil(deadline time.Time, frame time.Duration) {
	if frame <= 0 {
		frame = DefaultFrame
	}
	for {
		now := timeline.clock.Now()
		if !now.Before(deadline) {
			timeline.clock.AdvanceTo(now)
			timeline.Frame()
			return
		}
		next := now.Add(frame)
		if next.After(deadline) {
			next = deadline
		}
		timeline.clock.AdvanceTo(next)
		timeline.Frame()
	}
}

// Advance is RunUntil relative to the current clock time.
func (timeline *Timeline) Advance(duration time.Duration, frame time.Duration) {
	timeline.RunUntil(timeline.clock.Now().Add(duration), frame)
}

func (timeline *Timeline) start(transition Transition) {
	timeline.mu.Lock()
	defer timeline.mu.Unlock()

	now := timeline.clock.Now()
	// Bring in-flight values up to this instant so the origin is exact.
	timeline.frameLocked(now)

	run := begin(timeline.store, transition)
	if transition.Duration <= 0 {
		run.apply(1)
		return
	}
	timeline.active = append(timeline.active, &timelineEntry{run: run, start: now})
}

func (timeline *Timeline) frameLocked(now time.Time) {
	kept := timeline.active[:0]
	for _, entry := range timeline.active {
		transition := entry.run.transition
		progress := float64(now.Sub(entry.start)) / float64(transition.Duration)
		owned := entry.run.apply(transition.Curve.apply(progress))
		if owned && progress < 1 {
			kept = append(kept, entry)
		}
	}
	for index := len(kept); index < len(timeline.active); index++ {
		timeline.active[index] = nil
	}
	timeline.active = kept
}
