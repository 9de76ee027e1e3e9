package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/internal/render"
	"golang.org/x/image/font/gofont/goregular"
)

// Options configures the window
type Options struct {
	Config     config.Config
	ConfigPath string // Watched for changes when set
	Verbose    bool
}

type App struct {
	Widget  *interaction.Widget
	Config  ConfigState
	Pointer PointerState
	UI      UIState

	last interaction.Snapshot
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	cfg := opts.Config

	app := &App{
		Widget: interaction.NewWidget(cfg.WidgetLayout(), cfg.WidgetTunables()),
		UI:     UIState{verbose: opts.Verbose},
	}
	app.Config.path = opts.ConfigPath
	app.Config.current = cfg
	app.last = app.Widget.Snapshot()
	app.Widget.OnChange(app.onChange)

	if app.Config.path != "" {
		if err := app.setupConfigWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up config watching: %v\n", err)
			fmt.Println("Live reload will not be available")
		} else {
			defer app.Config.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 48, nil)

	for !rl.WindowShouldClose() {
		if app.Config.needsReload.CompareAndSwap(true, false) {
			app.reloadConfig()
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(toColor(render.ColorBackground))
		app.drawWidget()
		app.drawUI()
		rl.EndDrawing()
	}

	rl.UnloadFont(app.UI.font)
	rl.CloseWindow()
	return nil
}

// onChange runs after every event that changed the widget
func (app *App) onChange(s interaction.Snapshot) {
	if app.UI.verbose {
		for _, t := range app.last.Gestures.Transitions(s.Gestures) {
			fmt.Println(t)
		}
		if s.Line.StartAttached != app.last.Line.StartAttached {
			fmt.Printf("start attached: %v\n", s.Line.StartAttached)
		}
		if s.Line.EndAttached != app.last.Line.EndAttached {
			fmt.Printf("end attached: %v\n", s.Line.EndAttached)
		}
	}
	app.last = s
}
