package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seekbutton/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
)

// WatchSettings reloads the settings file whenever it is written and passes
// the result to onChange. It returns once the watcher is running; watching
// stops when ctx is done.
func WatchSettings(ctx context.Context, appName string, onChange func(preferences.Settings)) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return watchSettingsFile(ctx, configPath, onChange)
}

func watchSettingsFile(ctx context.Context, configPath string, onChange func(preferences.Settings)) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory rather than the file.
	if err := watcher.Add(configDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(configPath) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				settings, err := loadSettingsFile(configPath)
				if err != nil {
					slog.Warn("reload settings", "path", configPath, "error", err)
					continue
				}
				onChange(settings)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("settings watcher", "error", err)
			}
		}
	}()
	return nil
}
