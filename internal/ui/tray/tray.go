package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowPlayer    func()
	OnPreferences   func()
	OnSeekForward   func()
	OnResetPosition func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	seekItem    *fyne.MenuItem
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Position: 00:00", nil)
	manager.statusItem.Disabled = true
	manager.seekItem = fyne.NewMenuItem("Seek forward", invoke(&manager.callbacks.OnSeekForward))

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Position: %s", status)
	manager.refreshMenu()
}

// SetSeekLabel names the seek item, normally with the seek control's
// accessibility label so both surfaces announce the same action.
func (manager *Manager) SetSeekLabel(label string) {
	manager.seekItem.Label = label
	manager.refreshMenu()
}

// Status returns the last status label.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("SeekButton",
		manager.statusItem,
		fyne.NewMenuItem("Show player", invoke(&manager.callbacks.OnShowPlayer)),
		manager.seekItem,
		fyne.NewMenuItem("Reset position", invoke(&manager.callbacks.OnResetPosition)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
