package playback

import (
	"fmt"
	"sync"
	"time"
)

// Position tracks a playhead over a fixed-length media item.
type Position struct {
	mu       sync.Mutex
	current  time.Duration
	duration time.Duration
}

// New creates a playhead at zero over an item of the given length.
func New(duration time.Duration) *Position {
	if duration < 0 {
		duration = 0
	}
	return &Position{duration: duration}
}

// Seek moves the playhead by seconds, clamped to the item bounds,
// and returns the new position.
func (position *Position) Seek(seconds int) time.Duration {
	position.mu.Lock()
	defer position.mu.Unlock()
	position.current += time.Duration(seconds) * time.Second
	if position.current < 0 {
		position.current = 0
	}
	if position.current > position.duration {
		position.current = position.duration
	}
	return position.current
}

// Reset rewinds to the start.
func (position *Position) Reset() {
	position.mu.Lock()
	defer position.mu.Unlock()
	position.current = 0
}

// Current returns the playhead.
func (position *Position) Current() time.Duration {
	position.mu.Lock()
	defer position.mu.Unlock()
	return position.current
}

// Duration returns the item length.
func (position *Position) Duration() time.Duration {
	return position.duration
}

// Progress returns the playhead as a fraction of the item length.
func (position *Position) Progress() float64 {
	position.mu.Lock()
	defer position.mu.Unlock()
	if position.duration <= 0 {
		return 1
	}
	return float64(position.current) / float64(position.duration)
}

// String formats the playhead as "mm:ss / mm:ss".
func (position *Position) String() string {
	return FormatDuration(position.Current()) + " / " + FormatDuration(position.duration)
}

// FormatDuration renders value as mm:ss.
func FormatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
