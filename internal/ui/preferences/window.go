package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	interval    *widget.Entry
	settleDelay *widget.Entry
	mediaLength *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("SeekButton Settings")

	interval := widget.NewEntry()
	settleDelay := widget.NewEntry()
	mediaLength := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Seek", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Seconds per tap"), interval, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Accumulate taps within"), settleDelay, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Demo media length"), mediaLength, widget.NewLabel("min")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 220))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		interval:    interval,
		settleDelay: settleDelay,
		mediaLength: mediaLength,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.interval.SetText(fmt.Sprintf("%d", settings.Interval))
	prefs.settleDelay.SetText(fmt.Sprintf("%d", settings.SettleDelay.Milliseconds()))
	prefs.mediaLength.SetText(fmt.Sprintf("%d", int(settings.MediaLength.Minutes())))
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect merges valid entry values over the current settings.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if seconds, ok := parsePositiveInt(prefs.interval.Text); ok && ValidInterval(seconds) {
		settings.Interval = seconds
	}
	if millis, ok := parsePositiveInt(prefs.settleDelay.Text); ok {
		delay := time.Duration(millis) * time.Millisecond
		if ValidSettleDelay(delay) {
			settings.SettleDelay = delay
		}
	}
	if minutes, ok := parsePositiveInt(prefs.mediaLength.Text); ok {
		settings.MediaLength = time.Duration(minutes) * time.Minute
	}
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
