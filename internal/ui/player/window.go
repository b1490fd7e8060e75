package player

import (
	"image/color"
	"time"

	"seekbutton/internal/core/model"
	"seekbutton/internal/core/playback"
	"seekbutton/internal/ui/seekbutton"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines the player window.
type Config struct {
	Title       string
	Interval    int
	SettleDelay time.Duration
}

// Window hosts a seek button over a playback position.
type Window struct {
	window        fyne.Window
	config        Config
	position      *playback.Position
	button        *seekbutton.SeekButton
	buttonHolder  *fyne.Container
	positionLabel *canvas.Text
	progress      *widget.ProgressBar
	lastSeekLabel *canvas.Text
	onSeek        func(seconds int)
	buttonOptions []seekbutton.Option
}

// New creates the player window.
func New(app fyne.App, config Config, position *playback.Position, options ...seekbutton.Option) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText(config.Title, color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 18

	positionLabel := canvas.NewText(position.String(), color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	positionLabel.TextStyle = fyne.TextStyle{Monospace: true}
	positionLabel.TextSize = 14

	lastSeekLabel := canvas.NewText("", color.NRGBA{R: 160, G: 160, B: 160, A: 255})
	lastSeekLabel.TextSize = 12

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	buttonHolder := container.NewCenter()

	player := &Window{
		window:        window,
		config:        config,
		position:      position,
		buttonHolder:  buttonHolder,
		positionLabel: positionLabel,
		progress:      progress,
		lastSeekLabel: lastSeekLabel,
		buttonOptions: options,
	}
	player.replaceButton()

	content := container.New(&playerLayout{}, titleLabel, buttonHolder, positionLabel, progress, lastSeekLabel)
	window.SetContent(content)
	window.Resize(fyne.NewSize(320, 260))
	return player
}

// Show displays the window.
func (player *Window) Show() {
	player.window.Show()
	player.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (player *Window) Window() fyne.Window {
	return player.window
}

// Button returns the current seek button.
func (player *Window) Button() *seekbutton.SeekButton {
	return player.button
}

// SeekLabel returns the accessibility label of the current seek button.
func (player *Window) SeekLabel() string {
	return player.button.AccessibilityLabel()
}

// SetOnSeek registers a listener called after each seek with the interval.
func (player *Window) SetOnSeek(handler func(seconds int)) {
	player.onSeek = handler
}

// UpdateInterval rebuilds the seek button. The interval is fixed for a
// button's lifetime, so a change starts a new control.
func (player *Window) UpdateInterval(interval int) {
	player.UpdateSeekConfig(model.SeekConfig{Interval: interval, SettleDelay: player.config.SettleDelay})
}

// UpdateSeekConfig rebuilds the seek button when the interval or settle delay
// differs from the running control.
func (player *Window) UpdateSeekConfig(config model.SeekConfig) {
	config = config.Normalized()
	current := model.SeekConfig{Interval: player.config.Interval, SettleDelay: player.config.SettleDelay}.Normalized()
	if player.button != nil && current == config {
		return
	}
	player.config.Interval = config.Interval
	player.config.SettleDelay = config.SettleDelay
	player.replaceButton()
}

// SeekForward activates the button as if it was tapped.
func (player *Window) SeekForward() {
	player.button.Activate()
}

// Refresh redraws the position readout.
func (player *Window) Refresh() {
	player.positionLabel.Text = player.position.String()
	player.positionLabel.Refresh()
	player.progress.SetValue(player.position.Progress())
}

func (player *Window) replaceButton() {
	if player.button != nil {
		player.button.Close()
	}
	options := player.buttonOptions
	if player.config.SettleDelay > 0 {
		options = append([]seekbutton.Option{seekbutton.WithSettleDelay(player.config.SettleDelay)}, options...)
	}
	player.button = seekbutton.New(player.config.Interval, player.handleSeek, options...)
	player.buttonHolder.Objects = []fyne.CanvasObject{player.button}
	player.buttonHolder.Refresh()
}

func (player *Window) handleSeek(seconds int) {
	player.position.Seek(seconds)
	state := player.button.State()
	player.lastSeekLabel.Text = "seek " + state.AccumulatedText + "s"
	player.lastSeekLabel.Refresh()
	player.Refresh()
	if player.onSeek != nil {
		player.onSeek(seconds)
	}
}

type playerLayout struct{}

func (layout *playerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	title := objects[0]
	button := objects[1]
	position := objects[2]
	progress := objects[3]
	lastSeek := objects[4]

	pad := size.Height * 0.05
	availableWidth := size.Width - pad*2
	if availableWidth < 0 {
		availableWidth = 0
	}

	titleSize := title.MinSize()
	title.Move(fyne.NewPos(pad, pad))
	title.Resize(fyne.NewSize(availableWidth, titleSize.Height))

	lastSeekSize := lastSeek.MinSize()
	lastSeekY := size.Height - pad - lastSeekSize.Height
	progressSize := progress.MinSize()
	progressY := lastSeekY - 6 - progressSize.Height
	positionSize := position.MinSize()
	positionY := progressY - 6 - positionSize.Height

	buttonTop := pad + titleSize.Height + 8
	buttonHeight := positionY - 8 - buttonTop
	if buttonHeight < 0 {
		buttonHeight = 0
	}
	button.Move(fyne.NewPos(pad, buttonTop))
	button.Resize(fyne.NewSize(availableWidth, buttonHeight))

	position.Move(fyne.NewPos((size.Width-positionSize.Width)/2, positionY))
	position.Resize(positionSize)

	progress.Move(fyne.NewPos(pad, progressY))
	progress.Resize(fyne.NewSize(availableWidth, progressSize.Height))

	lastSeek.Move(fyne.NewPos((size.Width-lastSeekSize.Width)/2, lastSeekY))
	lastSeek.Resize(lastSeekSize)
}

func (layout *playerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 5 {
		return fyne.NewSize(0, 0)
	}
	width := float32(0)
	height := float32(40)
	for _, object := range objects {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		height += minSize.Height
	}
	return fyne.NewSize(width+20, height)
}
