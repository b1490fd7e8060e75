package model

import "time"

const (
	// DefaultInterval is the number of seconds one activation seeks by.
	DefaultInterval = 10
	// DefaultSettleDelay is how long an activation keeps its burst outstanding.
	DefaultSettleDelay = 800 * time.Millisecond
)

// SeekConfig contains the fixed construction parameters of a seek control.
type SeekConfig struct {
	Interval    int
	SettleDelay time.Duration
}

// DefaultSeekConfig returns the stock forward-10-seconds configuration.
func DefaultSeekConfig() SeekConfig {
	return SeekConfig{
		Interval:    DefaultInterval,
		SettleDelay: DefaultSettleDelay,
	}
}

// Normalized replaces non-positive values with defaults.
func (config SeekConfig) Normalized() SeekConfig {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.SettleDelay <= 0 {
		config.SettleDelay = DefaultSettleDelay
	}
	return config
}
