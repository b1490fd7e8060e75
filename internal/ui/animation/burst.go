package animation

import (
	"log/slog"
	"time"
)

// Config contains burst timing values.
type Config struct {
	PulseDuration          time.Duration
	PulseRotation          float64
	PulseBackgroundOpacity float64

	DurationFadeOut time.Duration

	AccumulationFadeIn        time.Duration
	AccumulationSlide         time.Duration
	AccumulationSlideDistance float64
	AccumulationFadeOutDelay  time.Duration
	AccumulationFadeOut       time.Duration
	AccumulationCurve         Curve

	RestoreDuration time.Duration
}

// BurstScheduler issues the timed visual sequence of one activation.
// Bursts never cancel each other; overlapping writes resolve through the
// store's last-writer-wins rule.
type BurstScheduler struct {
	surface Surface
	config  Config
}

// NewBurstScheduler creates a scheduler issuing transitions to surface.
func NewBurstScheduler(surface Surface, config Config) *BurstScheduler {
	return &BurstScheduler{
		surface: surface,
		config:  config,
	}
}

// RunBurst issues the arrow pulse, duration-label fade and accumulation
// label sequence for one activation.
func (scheduler *BurstScheduler) RunBurst(accumulatedText string, interval int) {
	slog.Debug("seek burst", "text", accumulatedText, "interval", interval)
	scheduler.pulseArrow()
	scheduler.fadeDurationLabel()
	scheduler.animateAccumulation(accumulatedText)
}

// RestoreIdle fades the duration label back in.
func (scheduler *BurstScheduler) RestoreIdle() {
	scheduler.surface.Animate(Transition{
		Param:    ParamDurationOpacity,
		To:       1,
		Duration: scheduler.config.RestoreDuration,
		Curve:    EaseInOut,
	})
}

func (scheduler *BurstScheduler) pulseArrow() {
	config := scheduler.config
	// Out.
	scheduler.surface.Animate(Transition{
		Param:    ParamRotation,
		To:       config.PulseRotation,
		Duration: config.PulseDuration,
		Curve:    EaseInOut,
	})
	scheduler.surface.Animate(Transition{
		Param:    ParamBackgroundOpacity,
		To:       config.PulseBackgroundOpacity,
		Duration: config.PulseDuration,
		Curve:    EaseInOut,
	})

	// Back in once the first half is done.
	scheduler.surface.Animate(Transition{
		Param:    ParamRotation,
		To:       0,
		Delay:    config.PulseDuration,
		Duration: config.PulseDuration,
		Curve:    EaseInOut,
	})
	scheduler.surface.Animate(Transition{
		Param:    ParamBackgroundOpacity,
		To:       0,
		Delay:    config.PulseDuration,
		Duration: config.PulseDuration,
		Curve:    EaseInOut,
	})
}

func (scheduler *BurstScheduler) fadeDurationLabel() {
	scheduler.surface.Set(ParamDurationOpacity, 1)
	scheduler.surface.Animate(Transition{
		Param:    ParamDurationOpacity,
		To:       0,
		Duration: scheduler.config.DurationFadeOut,
		Curve:    EaseInOut,
	})
}

func (scheduler *BurstScheduler) animateAccumulation(text string) {
	config := scheduler.config
	scheduler.surface.SetLabel(text)
	scheduler.surface.Set(ParamAccumulationOpacity, 0)
	scheduler.surface.Set(ParamAccumulationOffset, 0)

	scheduler.surface.Animate(Transition{
		Param:    ParamAccumulationOpacity,
		To:       1,
		Duration: config.AccumulationFadeIn,
		Curve:    EaseInOut,
	})
	scheduler.surface.Animate(Transition{
		Param:    ParamAccumulationOffset,
		To:       config.AccumulationSlideDistance,
		Duration: config.AccumulationSlide,
		Curve:    config.AccumulationCurve,
	})
	scheduler.surface.Animate(Transition{
		Param:    ParamAccumulationOpacity,
		To:       0,
		Delay:    config.AccumulationFadeOutDelay,
		Duration: config.AccumulationFadeOut,
		Curve:    config.AccumulationCurve,
	})
}
