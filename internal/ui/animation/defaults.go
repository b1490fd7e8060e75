package animation

import "time"

// DefaultConfig returns the stock seek-control burst timings.
func DefaultConfig() Config {
	return Config{
		PulseDuration:          100 * time.Millisecond,
		PulseRotation:          20,
		PulseBackgroundOpacity: 0.3,

		DurationFadeOut: 100 * time.Millisecond,

		AccumulationFadeIn:        100 * time.Millisecond,
		AccumulationSlide:         350 * time.Millisecond,
		AccumulationSlideDistance: 80,
		AccumulationFadeOutDelay:  500 * time.Millisecond,
		AccumulationFadeOut:       450 * time.Millisecond,
		AccumulationCurve:         TimingCurve(0, 0, 0.2, 1),

		RestoreDuration: 150 * time.Millisecond,
	}
}
