package preferences

import (
	"time"

	"seekbutton/internal/core/model"
)

const (
	MaxInterval    = 600
	MinSettleDelay = 100 * time.Millisecond
	MaxSettleDelay = 5 * time.Second
)

// Settings defines editable user preferences.
type Settings struct {
	Interval    int
	SettleDelay time.Duration
	MediaLength time.Duration
}

// DefaultSettings returns default settings for the seek demo.
func DefaultSettings() Settings {
	return Settings{
		Interval:    model.DefaultInterval,
		SettleDelay: model.DefaultSettleDelay,
		MediaLength: 5 * time.Minute,
	}
}

// SeekConfig converts settings to the seek control configuration.
func (settings Settings) SeekConfig() model.SeekConfig {
	return model.SeekConfig{
		Interval:    settings.Interval,
		SettleDelay: settings.SettleDelay,
	}.Normalized()
}

// ValidInterval reports whether seconds is an accepted per-tap interval.
func ValidInterval(seconds int) bool {
	return seconds > 0 && seconds <= MaxInterval
}

// ValidSettleDelay reports whether delay is an accepted settle delay.
func ValidSettleDelay(delay time.Duration) bool {
	return delay >= MinSettleDelay && delay <= MaxSettleDelay
}
