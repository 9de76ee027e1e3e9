package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/snapcircle/internal/render"
	"github.com/philipparndt/snapcircle/version"
)

// drawUI draws the HUD
func (app *App) drawUI() {
	x := float32(10)
	y := float32(10)
	fontSize18 := float32(18)
	fontSize14 := float32(14)
	lineHeight := float32(22)

	text := toColor(render.ColorText)
	for i, line := range render.HUDLines(app.Widget.Snapshot()) {
		size := fontSize14
		if i == 0 {
			size = fontSize18
		}
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: x, Y: y}, size, 1, text)
		y += lineHeight
	}

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Version (bottom-right corner)
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	versionSize := rl.MeasureTextEx(app.UI.font, versionText, fontSize14, 1)
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: screenWidth - versionSize.X - 10, Y: screenHeight - versionSize.Y - 10}, fontSize14, 1, rl.Fade(text, 0.6))

	// Status message (bottom-left corner)
	if app.UI.status != "" && time.Now().Before(app.UI.statusUntil) {
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: x, Y: screenHeight - fontSize14 - 10}, fontSize14, 1, text)
	}
}

// showStatus displays msg for a few seconds
func (app *App) showStatus(msg string) {
	app.UI.status = msg
	app.UI.statusUntil = time.Now().Add(3 * time.Second)
}
