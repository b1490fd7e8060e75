package animation

import "time"

// Transition animates one parameter from its value at start time to To.
type Transition struct {
	Param    Param
	To       float64
	Delay    time.Duration
	Duration time.Duration
	Curve    Curve
}

// Surface is the rendering surface bursts are issued against.
type Surface interface {
	Set(param Param, value float64)
	SetLabel(text string)
	Animate(transition Transition)
}

// running is a started transition bound to its claim and origin.
type running struct {
	store      *Store
	claim      Claim
	from       float64
	transition Transition
}

func begin(store *Store, transition Transition) *running {
	claim := store.Claim(transition.Param)
	return &running{
		store:      store,
		claim:      claim,
		from:       store.Value(transition.Param),
		transition: transition,
	}
}

// apply writes the value at eased progress. It reports false once superseded.
func (run *running) apply(eased float64) bool {
	value := run.from + (run.transition.To-run.from)*eased
	return run.store.Write(run.claim, value)
}
