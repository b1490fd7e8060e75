package seekbutton

import (
	"time"

	"seekbutton/internal/core/clock"

	"fyne.io/fyne/v2"
)

// MainThreadClock delivers timer callbacks on the fyne main goroutine so
// settle timers share the timeline of taps and animation ticks.
var MainThreadClock clock.Clock = mainThreadClock{}

type mainThreadClock struct{}

func (mainThreadClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	return time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}

func (mainThreadClock) Now() time.Time {
	return time.Now()
}
