package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"seekbutton/internal/core/playback"
	"seekbutton/internal/platform"
	"seekbutton/internal/storage"
	"seekbutton/internal/ui/player"
	"seekbutton/internal/ui/preferences"
	"seekbutton/internal/ui/tray"
	"seekbutton/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName     = "SeekButton"
	logLevelEnv = "SEEKBUTTON_LOG_LEVEL"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv(logLevelEnv)),
	})))

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		slog.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		slog.Warn("load settings, using defaults", "error", err)
	}

	fyneApp := app.NewWithID("com.seekbutton.demo")
	fyneApp.SetIcon(resources.MustIcon("seek.svg"))

	position := playback.New(settings.MediaLength)
	playerWindow := player.New(fyneApp, player.Config{
		Title:       appName,
		Interval:    settings.Interval,
		SettleDelay: settings.SettleDelay,
	}, position)
	playerWindow.Window().SetMaster()

	var trayManager *tray.Manager
	applySettings := func(updated preferences.Settings) {
		playerWindow.UpdateSeekConfig(updated.SeekConfig())
		if trayManager != nil {
			trayManager.SetSeekLabel(playerWindow.SeekLabel())
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			slog.Error("save settings", "error", err)
		}
		applySettings(updated)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowPlayer:  playerWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnSeekForward: playerWindow.SeekForward,
			OnResetPosition: func() {
				position.Reset()
				playerWindow.Refresh()
				trayManager.SetStatus(position.String())
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon("seek.svg"))
		trayManager.SetSeekLabel(playerWindow.SeekLabel())
		trayManager.SetStatus(position.String())
	} else {
		slog.Info("system tray unsupported on this platform")
	}

	playerWindow.SetOnSeek(func(seconds int) {
		slog.Debug("seek", "seconds", seconds, "position", position.String())
		if trayManager != nil {
			trayManager.SetStatus(position.String())
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = storage.WatchSettings(ctx, appName, func(updated preferences.Settings) {
		fyne.Do(func() {
			prefsWindow.UpdateSettings(updated)
			applySettings(updated)
		})
	})
	if err != nil {
		slog.Warn("watch settings", "error", err)
	}

	playerWindow.Show()
	fyneApp.Run()
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
