package seekbutton

import (
	"fmt"
	"time"

	"seekbutton/internal/core/clock"
	"seekbutton/internal/core/model"
	"seekbutton/internal/core/sequencer"
	"seekbutton/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SurfaceFactory builds the rendering surface for a button's parameter store.
type SurfaceFactory func(*animation.Store) animation.Surface

type options struct {
	clock       clock.Clock
	surface     SurfaceFactory
	animation   animation.Config
	settleDelay time.Duration
}

// Option customizes a SeekButton.
type Option func(*options)

// WithClock replaces the UI-goroutine clock used for settle timers and delays.
func WithClock(timers clock.Clock) Option {
	return func(opts *options) {
		opts.clock = timers
	}
}

// WithSurface replaces the default fyne animator.
func WithSurface(factory SurfaceFactory) Option {
	return func(opts *options) {
		opts.surface = factory
	}
}

// WithAnimationConfig replaces the burst timings.
func WithAnimationConfig(config animation.Config) Option {
	return func(opts *options) {
		opts.animation = config
	}
}

// WithSettleDelay sets how long each activation keeps the accumulation open.
func WithSettleDelay(delay time.Duration) Option {
	return func(opts *options) {
		opts.settleDelay = delay
	}
}

// SeekButton is a tappable seek-forward control with an accumulation counter.
type SeekButton struct {
	widget.BaseWidget

	sequencer *sequencer.Sequencer
	store     *animation.Store
	focused   bool
}

var (
	_ fyne.Tappable      = (*SeekButton)(nil)
	_ fyne.Focusable     = (*SeekButton)(nil)
	_ desktop.Cursorable = (*SeekButton)(nil)
)

// New creates a SeekButton adding interval seconds per activation and
// reporting each activation to onSeek.
func New(interval int, onSeek func(int), opts ...Option) *SeekButton {
	config := options{
		clock:       MainThreadClock,
		animation:   animation.DefaultConfig(),
		settleDelay: model.DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(&config)
	}

	store := animation.NewStore()
	var surface animation.Surface
	if config.surface != nil {
		surface = config.surface(store)
	} else {
		surface = animation.NewAnimator(store, config.clock)
	}

	bursts := animation.NewBurstScheduler(surface, config.animation)
	seekConfig := model.SeekConfig{Interval: interval, SettleDelay: config.settleDelay}

	button := &SeekButton{
		sequencer: sequencer.New(seekConfig, config.clock, bursts, onSeek),
		store:     store,
	}
	button.ExtendBaseWidget(button)
	store.SetOnChange(button.Refresh)
	return button
}

// CreateRenderer implements fyne.Widget.
func (button *SeekButton) CreateRenderer() fyne.WidgetRenderer {
	button.ExtendBaseWidget(button)
	return newRenderer(button)
}

// Activate runs one activation, the same path a tap takes.
func (button *SeekButton) Activate() {
	button.sequencer.Activate()
}

// Tapped implements fyne.Tappable.
func (button *SeekButton) Tapped(*fyne.PointEvent) {
	button.Activate()
}

// FocusGained implements fyne.Focusable.
func (button *SeekButton) FocusGained() {
	button.focused = true
	button.Refresh()
}

// FocusLost implements fyne.Focusable.
func (button *SeekButton) FocusLost() {
	button.focused = false
	button.Refresh()
}

// TypedRune implements fyne.Focusable.
func (button *SeekButton) TypedRune(rune) {}

// TypedKey activates on Space, Return and Enter.
func (button *SeekButton) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		button.Activate()
	}
}

// Cursor implements desktop.Cursorable.
func (button *SeekButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// AccessibilityLabel returns the human-readable label of the control.
// fyne has no accessibility tree, so hosts read it for assistive bridges
// and other surfaces that trigger the same action, such as the tray item.
func (button *SeekButton) AccessibilityLabel() string {
	return fmt.Sprintf("Forward %d seconds", button.Interval())
}

// AccessibilityRole returns the role an assistive bridge should announce.
func (button *SeekButton) AccessibilityRole() string {
	return "button"
}

// Interval returns the seconds added per activation.
func (button *SeekButton) Interval() int {
	return button.sequencer.Interval()
}

// State returns the sequencer snapshot.
func (button *SeekButton) State() sequencer.State {
	return button.sequencer.State()
}

// Values returns the current visual parameters.
func (button *SeekButton) Values() animation.Values {
	return button.store.Snapshot()
}

// Subscribe registers an observer of activation events.
func (button *SeekButton) Subscribe(buffer int) <-chan sequencer.Event {
	return button.sequencer.Subscribe(buffer)
}

// Close detaches observers. Transitions already issued still finish.
func (button *SeekButton) Close() {
	button.sequencer.Close()
}
