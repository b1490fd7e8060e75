package seekbutton

import (
	"image/color"
	"testing"
	"time"

	"seekbutton/internal/core/clock"
	"seekbutton/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	start    time.Time
	clock    *clock.Manual
	timeline *animation.Timeline
	seeks    []int
	button   *SeekButton
}

func newHarness(t *testing.T, interval int) *harness {
	t.Helper()
	test.NewTempApp(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := &harness{start: start, clock: clock.NewManual(start)}
	h.button = New(interval, func(value int) {
		h.seeks = append(h.seeks, value)
	},
		WithClock(h.clock),
		WithSurface(func(store *animation.Store) animation.Surface {
			h.timeline = animation.NewTimeline(store, h.clock)
			return h.timeline
		}),
	)
	h.button.Resize(fyne.NewSize(64, 64))
	return h
}

func (h *harness) at(offset time.Duration) {
	h.timeline.RunUntil(h.start.Add(offset), time.Millisecond)
}

func TestTapActivates(t *testing.T) {
	h := newHarness(t, 10)

	test.Tap(h.button)

	assert.Equal(t, []int{10}, h.seeks)
	assert.Equal(t, "+10", h.button.State().AccumulatedText)
	assert.Equal(t, 1, h.button.State().Pending)
	assert.Equal(t, "+10", h.button.Values().AccumulationText)
}

func TestKeyboardActivatesThroughSamePath(t *testing.T) {
	h := newHarness(t, 15)

	h.button.TypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	h.button.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	h.button.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnter})
	h.button.TypedKey(&fyne.KeyEvent{Name: fyne.KeyA})

	assert.Equal(t, []int{15, 15, 15}, h.seeks)
	assert.Equal(t, "+45", h.button.State().AccumulatedText)
}

func TestAccessibility(t *testing.T) {
	h := newHarness(t, 30)
	assert.Equal(t, "Forward 30 seconds", h.button.AccessibilityLabel())
	assert.Equal(t, "button", h.button.AccessibilityRole())
}

func TestDefaultInterval(t *testing.T) {
	h := newHarness(t, 0)
	assert.Equal(t, 10, h.button.Interval())
	assert.Equal(t, "Forward 10 seconds", h.button.AccessibilityLabel())
}

func TestIdleRestoreAfterSettle(t *testing.T) {
	h := newHarness(t, 10)
	events := h.button.Subscribe(8)

	test.Tap(h.button)
	h.at(400 * time.Millisecond)
	assert.InDelta(t, 0, h.button.Values().DurationOpacity, 1e-9)

	h.at(800 * time.Millisecond)
	assert.Equal(t, 0, h.button.State().Pending)

	h.at(950 * time.Millisecond)
	values := h.button.Values()
	assert.InDelta(t, 1, values.DurationOpacity, 1e-9)
	assert.InDelta(t, 0, values.AccumulationOpacity, 1e-9)

	var types []string
	for len(events) > 0 {
		types = append(types, string((<-events).Type))
	}
	assert.Equal(t, []string{"activated", "settled", "idle_restored"}, types)
}

func TestRendererTracksValues(t *testing.T) {
	h := newHarness(t, 10)
	r, ok := test.WidgetRenderer(h.button).(*renderer)
	require.True(t, ok)
	r.Layout(fyne.NewSize(64, 64))

	assert.Equal(t, "10", r.duration.Text)
	assert.Equal(t, uint8(0), alpha(r.accumulation.Color))
	assert.NotZero(t, alpha(r.duration.Color))

	test.Tap(h.button)
	h.at(100 * time.Millisecond)

	assert.Equal(t, "+10", r.accumulation.Text)
	assert.Equal(t, uint8(0), alpha(r.duration.Color))
	assert.NotZero(t, alpha(r.accumulation.Color))

	h.at(350 * time.Millisecond)
	// Slide of 80 units on a 64 wide control.
	expectedShift := labelOffset(80, 64)
	measured := fyne.MeasureText(r.accumulation.Text, r.accumulation.TextSize, r.accumulation.TextStyle)
	assert.InDelta(t, 32-measured.Width/2+expectedShift, r.accumulation.Position().X, 0.01)
}

func TestFocusRing(t *testing.T) {
	h := newHarness(t, 10)
	r := test.WidgetRenderer(h.button).(*renderer)

	h.button.FocusGained()
	assert.Equal(t, float32(2), r.background.StrokeWidth)

	h.button.FocusLost()
	assert.Equal(t, float32(0), r.background.StrokeWidth)
}

func TestNewDefaultsToAnimator(t *testing.T) {
	test.NewTempApp(t)
	var seeks []int
	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	button := New(10, func(value int) { seeks = append(seeks, value) }, WithClock(manual))
	defer button.Close()

	test.Tap(button)
	assert.Equal(t, []int{10}, seeks)
	values := button.Values()
	assert.Equal(t, "+10", values.AccumulationText)
	// The test driver finishes each started animation at once.
	assert.Equal(t, 20.0, values.Rotation)
	assert.Equal(t, 80.0, values.AccumulationOffset)
	assert.Equal(t, 0.0, values.DurationOpacity)

	manual.Advance(100 * time.Millisecond)
	assert.Equal(t, 0.0, button.Values().Rotation)

	manual.Advance(700 * time.Millisecond)
	assert.Equal(t, 0, button.State().Pending)
	assert.Equal(t, 1.0, button.Values().DurationOpacity)
}

func alpha(c color.Color) uint8 {
	return color.NRGBAModel.Convert(c).(color.NRGBA).A
}
