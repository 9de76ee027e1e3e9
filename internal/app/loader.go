package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/philipparndt/snapcircle/pkg/watcher"
)

// ReloadDebounce is how long the config file has to stay unchanged before a reload
const ReloadDebounce = 300 * time.Millisecond

// setupConfigWatcher watches the config file for changes
func (app *App) setupConfigWatcher() error {
	fw, err := watcher.NewFileWatcher(ReloadDebounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		fmt.Printf("\nConfig changed: %s\n", changedFile)
		app.Config.needsReload.Store(true)
	}

	if err := fw.Watch(app.Config.path, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch config: %w", err)
	}

	fw.Start()
	app.Config.fileWatcher = fw
	fmt.Printf("Watching config for changes: %s\n", app.Config.path)
	return nil
}

// reloadConfig applies the config file again (must be called on main thread).
// On failure the previous configuration stays in effect.
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.Config.path)
	if err != nil {
		fmt.Printf("Error reloading config: %v\n", err)
		app.showStatus("Config error, keeping previous settings")
		return
	}

	previous := app.Config.current
	app.Config.current = cfg
	app.Config.reloads++
	app.Widget.ApplyTunables(cfg.WidgetTunables())

	if cfg.Window.Title != previous.Window.Title {
		rl.SetWindowTitle(cfg.Window.Title)
	}
	if cfg.Window.FPS != previous.Window.FPS {
		rl.SetTargetFPS(int32(cfg.Window.FPS))
	}
	if cfg.Window.Width != previous.Window.Width || cfg.Window.Height != previous.Window.Height {
		rl.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}

	fmt.Println("Config reloaded successfully!")
	app.showStatus(fmt.Sprintf("Config reloaded (%d)", app.Config.reloads))
}
