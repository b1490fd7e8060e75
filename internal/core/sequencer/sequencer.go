package sequencer

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"seekbutton/internal/core/clock"
	"seekbutton/internal/core/model"

	"github.com/gammazero/deque"
)

const accumulationPrefix = "+"

// BurstRunner plays the visual sequence of a single activation.
type BurstRunner interface {
	RunBurst(accumulatedText string, interval int)
	RestoreIdle()
}

// Sequencer is the tap-accumulation state machine of one seek control.
type Sequencer struct {
	mu          sync.Mutex
	config      model.SeekConfig
	clock       clock.Clock
	bursts      BurstRunner
	onSeek      func(int)
	accumulated string
	pending     deque.Deque[uint64]
	lastBurst   uint64
	events      []chan Event
	closed      bool
}

// New creates a Sequencer. A nil clock falls back to the system clock.
func New(config model.SeekConfig, timers clock.Clock, bursts BurstRunner, onSeek func(int)) *Sequencer {
	if timers == nil {
		timers = clock.System
	}
	return &Sequencer{
		config: config.Normalized(),
		clock:  timers,
		bursts: bursts,
		onSeek: onSeek,
	}
}

// Subscribe registers a new observer channel.
func (seq *Sequencer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	seq.mu.Lock()
	defer seq.mu.Unlock()
	if seq.closed {
		close(ch)
		return ch
	}
	seq.events = append(seq.events, ch)
	return ch
}

// Close detaches and closes all observers.
func (seq *Sequencer) Close() {
	seq.mu.Lock()
	if seq.closed {
		seq.mu.Unlock()
		return
	}
	seq.closed = true
	events := seq.events
	seq.events = nil
	seq.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Interval returns the seconds added per activation.
func (seq *Sequencer) Interval() int {
	return seq.config.Interval
}

// State returns a snapshot of the control state.
func (seq *Sequencer) State() State {
	seq.mu.Lock()
	defer seq.mu.Unlock()
	return State{
		Interval:        seq.config.Interval,
		Pending:         seq.pending.Len(),
		AccumulatedText: seq.accumulated,
	}
}

// Activate handles one discrete user activation.
func (seq *Sequencer) Activate() {
	seq.mu.Lock()
	if seq.pending.Len() == 0 {
		seq.accumulated = accumulationPrefix + strconv.Itoa(seq.config.Interval)
	} else {
		seq.accumulated = seq.extendLocked()
	}
	seq.lastBurst++
	burst := seq.lastBurst
	seq.pending.PushBack(burst)
	text := seq.accumulated
	interval := seq.config.Interval
	seq.emitLocked(Event{
		Type:            EventActivated,
		Burst:           burst,
		AccumulatedText: text,
		Pending:         seq.pending.Len(),
		Interval:        interval,
		At:              seq.clock.Now(),
	})
	seq.mu.Unlock()

	if seq.bursts != nil {
		seq.bursts.RunBurst(text, interval)
	}
	seq.clock.AfterFunc(seq.config.SettleDelay, func() {
		seq.settle(burst)
	})
	if seq.onSeek != nil {
		seq.onSeek(interval)
	}
}

func (seq *Sequencer) extendLocked() string {
	numeral := strings.TrimPrefix(seq.accumulated, accumulationPrefix)
	total, err := strconv.Atoi(numeral)
	if err != nil || !strings.HasPrefix(seq.accumulated, accumulationPrefix) {
		slog.Debug("accumulation text not numeric, leaving unchanged", "text", seq.accumulated)
		return seq.accumulated
	}
	return accumulationPrefix + strconv.Itoa(total+seq.config.Interval)
}

func (seq *Sequencer) settle(burst uint64) {
	seq.mu.Lock()
	index := seq.pending.Index(func(candidate uint64) bool {
		return candidate == burst
	})
	if index < 0 {
		seq.mu.Unlock()
		return
	}
	seq.pending.Remove(index)
	remaining := seq.pending.Len()
	now := seq.clock.Now()
	seq.emitLocked(Event{
		Type:            EventSettled,
		Burst:           burst,
		AccumulatedText: seq.accumulated,
		Pending:         remaining,
		Interval:        seq.config.Interval,
		At:              now,
	})
	if remaining > 0 {
		seq.mu.Unlock()
		return
	}
	seq.accumulated = ""
	seq.emitLocked(Event{
		Type:     EventIdleRestored,
		Burst:    burst,
		Interval: seq.config.Interval,
		At:       now,
	})
	seq.mu.Unlock()

	if seq.bursts != nil {
		seq.bursts.RestoreIdle()
	}
}

func (seq *Sequencer) emitLocked(event Event) {
	for _, ch := range seq.events {
		select {
		case ch <- event:
		default:
		}
	}
}
