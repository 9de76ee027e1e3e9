package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/internal/render"
	"github.com/philipparndt/snapcircle/pkg/viewer"
	"github.com/philipparndt/snapcircle/pkg/watcher"
)

type App struct {
	window     fyne.Window
	configPath string
	view       *viewer.CircleView
	hudLabels  []*widget.Label
}

func main() {
	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow(cfg.Window.Title)

	appInstance := &App{
		window:     w,
		configPath: configPath,
		view:       viewer.NewCircleView(interaction.NewWidget(cfg.WidgetLayout(), cfg.WidgetTunables())),
	}
	appInstance.setupMainUI()

	if configPath != "" {
		fw, err := appInstance.watchConfig()
		if err != nil {
			fmt.Printf("Warning: Failed to set up config watching: %v\n", err)
		} else {
			defer fw.Close()
		}
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width)+260, float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	lines := render.HUDLines(a.view.Snapshot())
	a.hudLabels = make([]*widget.Label, len(lines))
	for i := range lines {
		a.hudLabels[i] = widget.NewLabel("")
	}
	a.hudLabels[0].TextStyle = fyne.TextStyle{Bold: true}
	a.updateHUD(a.view.Snapshot())

	a.view.SetOnChange(a.updateHUD)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag the center handle up or down to resize\n" +
			"• Drag a line end near the circle to attach it\n" +
			"• Attached ends follow the circle",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox()
	for _, l := range a.hudLabels {
		infoPanel.Add(l)
	}
	infoPanel.Add(widget.NewSeparator())
	infoPanel.Add(instructions)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)
	a.window.SetContent(content)
}

func (a *App) updateHUD(s interaction.Snapshot) {
	for i, line := range render.HUDLines(s) {
		a.hudLabels[i].SetText(line)
	}
}

// watchConfig applies tunables from the config file whenever it changes
func (a *App) watchConfig() (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return nil, err
	}

	err = fw.Watch(a.configPath, func(changedFile string) {
		cfg, err := config.Load(changedFile)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("config not reloaded: %w", err), a.window)
				return
			}
			a.view.ApplyTunables(cfg.WidgetTunables())
		})
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	fmt.Printf("Watching config for changes: %s\n", a.configPath)
	return fw, nil
}
