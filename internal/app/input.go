package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// handleInput feeds this frame's mouse state into the widget
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	sample := interaction.PointerSample{
		Pos:      geometry.NewVector2(float64(mouse.X), float64(mouse.Y)),
		Inside:   rl.IsCursorOnScreen(),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
	}

	for _, ev := range app.Pointer.tracker.Events(sample, app.Widget.HitTest) {
		app.Widget.Dispatch(ev)
	}

	app.Pointer.hovered = interaction.HandleNone
	if sample.Inside {
		app.Pointer.hovered = app.Widget.HitTest(sample.Pos)
	}
	app.updateCursor()
}

func (app *App) updateCursor() {
	s := app.Widget.Snapshot()

	cursor := int32(rl.MouseCursorDefault)
	switch {
	case s.Gestures.Radius == interaction.Dragging || app.Pointer.hovered == interaction.HandleRadius:
		cursor = int32(rl.MouseCursorResizeNS)
	case s.Gestures.Active() || app.Pointer.hovered != interaction.HandleNone:
		cursor = int32(rl.MouseCursorPointingHand)
	}

	if cursor != app.Pointer.cursor {
		rl.SetMouseCursor(cursor)
		app.Pointer.cursor = cursor
	}
}
