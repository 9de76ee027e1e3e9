package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/internal/render"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

func toColor(c color.NRGBA) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toVector2(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// drawWidget draws the circle, the line and the three handles
func (app *App) drawWidget() {
	s := app.Widget.Snapshot()

	half := float32(render.StrokeWidth / 2)
	radius := float32(s.Circle.Radius)
	rl.DrawRing(toVector2(s.Circle.Center), radius-half, radius+half, 0, 360, 128, toColor(render.ColorCircle))

	rl.DrawLineEx(toVector2(s.Line.Start), toVector2(s.Line.End), render.StrokeWidth, toColor(render.ColorLine))

	// Bottom to top, matching hit test priority
	for _, h := range []interaction.Handle{interaction.HandleRadius, interaction.HandleLineStart, interaction.HandleLineEnd} {
		pos, _ := s.HandlePosition(h)
		app.drawHandle(toVector2(pos), h == app.Pointer.hovered || app.Widget.GestureState(h) == interaction.Dragging)
	}
}

func (app *App) drawHandle(pos rl.Vector2, highlighted bool) {
	rl.DrawCircleV(pos, render.HaloRadius, toColor(render.ColorHalo))
	rl.DrawCircleV(pos, render.HandleRadius, toColor(render.ColorHandle))
	if highlighted {
		rl.DrawCircleLinesV(pos, render.HaloRadius+2, toColor(render.ColorHandle))
	}
}
