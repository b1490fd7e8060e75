package sequencer

import "time"

// EventType defines the type of Sequencer event.
type EventType string

const (
	EventActivated    EventType = "activated"
	EventSettled      EventType = "settled"
	EventIdleRestored EventType = "idle_restored"
)

// Event represents a display-state update for observers.
type Event struct {
	Type            EventType
	Burst           uint64
	AccumulatedText string
	Pending         int
	Interval        int
	At              time.Time
}

// State is a snapshot of the control state owned by the Sequencer.
type State struct {
	Interval        int
	Pending         int
	AccumulatedText string
}
