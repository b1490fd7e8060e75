package animation

import (
	"seekbutton/internal/core/clock"

	"fyne.io/fyne/v2"
)

// Animator runs transitions on the fyne animation runner.
// Delays go through the clock, which must deliver callbacks on the UI goroutine.
type Animator struct {
	store *Store
	clock clock.Clock
	run   func(*fyne.Animation)
}

// NewAnimator creates an Animator writing into store.
func NewAnimator(store *Store, timers clock.Clock) *Animator {
	if timers == nil {
		timers = clock.System
	}
	return &Animator{
		store: store,
		clock: timers,
		run:   (*fyne.Animation).Start,
	}
}

// Set writes value immediately.
func (animator *Animator) Set(param Param, value float64) {
	animator.store.Set(param, value)
}

// SetLabel replaces the accumulation label text.
func (animator *Animator) SetLabel(text string) {
	animator.store.SetLabel(text)
}

// Animate schedules transition. A started transition stops once a later
// transition claims its parameter.
func (animator *Animator) Animate(transition Transition) {
	if transition.Delay > 0 {
		animator.clock.AfterFunc(transition.Delay, func() {
			animator.start(transition)
		})
		return
	}
	animator.start(transition)
}

func (animator *Animator) start(transition Transition) {
	run := begin(animator.store, transition)
	if transition.Duration <= 0 {
		run.apply(1)
		return
	}

	var anim *fyne.Animation
	anim = fyne.NewAnimation(transition.Duration, func(progress float32) {
		if !run.apply(float64(progress)) {
			anim.Stop()
		}
	})
	anim.Curve = transition.Curve.forFyne()
	animator.run(anim)
}
