package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	start := time.Unix(0, 0)
	manual := NewManual(start)

	var fired []string
	var firedAt []time.Duration
	record := func(name string) func() {
		return func() {
			fired = append(fired, name)
			firedAt = append(firedAt, manual.Now().Sub(start))
		}
	}

	manual.AfterFunc(300*time.Millisecond, record("late"))
	manual.AfterFunc(100*time.Millisecond, record("early"))
	manual.AfterFunc(100*time.Millisecond, record("early-second"))

	manual.Advance(50 * time.Millisecond)
	assert.Empty(t, fired)

	manual.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-second", "late"}, fired)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 300 * time.Millisecond}, firedAt)
	assert.Equal(t, 1050*time.Millisecond, manual.Now().Sub(start))
	assert.Zero(t, manual.Pending())
}

func TestManualFiresTimersScheduledByCallbacks(t *testing.T) {
	start := time.Unix(0, 0)
	manual := NewManual(start)

	var chained time.Duration
	manual.AfterFunc(100*time.Millisecond, func() {
		manual.AfterFunc(100*time.Millisecond, func() {
			chained = manual.Now().Sub(start)
		})
	})

	manual.Advance(250 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, chained)
}

func TestManualStop(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))
	called := false
	timer := manual.AfterFunc(time.Second, func() { called = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing to stop")

	manual.Advance(2 * time.Second)
	assert.False(t, called)
}

func TestManualStopAfterFire(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))
	timer := manual.AfterFunc(0, func() {})
	manual.Advance(0)
	assert.False(t, timer.Stop())
}

func TestSystemClockAfterFunc(t *testing.T) {
	done := make(chan struct{})
	System.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("system timer did not fire")
	}
}
