package interaction

import (
	"testing"

	"github.com/philipparndt/snapcircle/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geometry.Vector2 {
	return geometry.NewVector2(x, y)
}

func down(x, y float64, h Handle) PointerEvent {
	return PointerEvent{Kind: PointerDown, Pos: pt(x, y), Target: h}
}

func move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, Pos: pt(x, y)}
}

func up(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerUp, Pos: pt(x, y)}
}

func leave(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerLeave, Pos: pt(x, y)}
}

func newDefaultWidget() *Widget {
	return NewWidget(DefaultLayout(), DefaultTunables())
}

func TestWidgetInitialSnapshot(t *testing.T) {
	s := newDefaultWidget().Snapshot()

	assert.Equal(t, pt(300, 300), s.Circle.Center)
	assert.Equal(t, 100.0, s.Circle.Radius)
	assert.Equal(t, pt(100, 200), s.Line.Start)
	assert.Equal(t, pt(400, 100), s.Line.End)
	assert.Equal(t, pt(300, 300), s.RadiusHandle)
	assert.False(t, s.Gestures.Active())
}

func TestWidgetAttachThenShrinkScenario(t *testing.T) {
	w := newDefaultWidget()

	// Drag the start handle from its place to (300, 250)
	w.Dispatch(down(100, 200, HandleLineStart))
	w.Dispatch(move(300, 250))
	w.Dispatch(up(300, 250))

	s := w.Snapshot()
	require.True(t, s.Line.StartAttached)
	assert.InDelta(t, 300, s.Line.Start.X, 1e-9)
	assert.InDelta(t, 200, s.Line.Start.Y, 1e-9)

	// Drag the radius handle 500 px down: radius 100 - 500/10 = 50
	w.Dispatch(down(300, 300, HandleRadius))
	w.Dispatch(move(300, 800))
	w.Dispatch(up(300, 800))

	s = w.Snapshot()
	assert.InDelta(t, 50, s.Circle.Radius, 1e-9)
	assert.True(t, s.Line.StartAttached)
	assert.InDelta(t, 300, s.Line.Start.X, 1e-9)
	assert.InDelta(t, 250, s.Line.Start.Y, 1e-9)
	assert.Equal(t, s.Circle.Center, s.RadiusHandle)
}

func TestWidgetRetracksWhileGrowing(t *testing.T) {
	w := newDefaultWidget()
	w.Dispatch(down(400, 100, HandleLineEnd))
	w.Dispatch(move(300, 390))
	w.Dispatch(up(300, 390))
	require.True(t, w.Snapshot().Line.EndAttached)

	w.Dispatch(down(300, 300, HandleRadius))
	for y := 290.0; y >= -200; y -= 10 {
		w.Dispatch(move(300, y))
	}

	s := w.Snapshot()
	assert.InDelta(t, 150, s.Circle.Radius, 1e-9)
	assert.InDelta(t, 300, s.Line.End.X, 1e-9)
	assert.InDelta(t, 450, s.Line.End.Y, 1e-9)
}

func TestWidgetUpAndLeaveRelease(t *testing.T) {
	tests := []struct {
		name    string
		release PointerEvent
	}{
		{name: "Should release on pointer up", release: up(350, 150)},
		{name: "Should release on pointer leave", release: leave(350, 150)},
	}

	var results []Snapshot
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newDefaultWidget()
			w.Dispatch(down(300, 300, HandleRadius))
			w.Dispatch(down(100, 200, HandleLineStart))
			w.Dispatch(move(350, 150))

			assert.True(t, w.Dispatch(tt.release))

			s := w.Snapshot()
			assert.False(t, s.Gestures.Active())
			assert.Equal(t, s.Circle.Center, s.RadiusHandle)
			results = append(results, s)
		})
	}

	require.Len(t, results, 2)
	assert.Equal(t, results[0], results[1])
}

func TestWidgetConcurrentGestures(t *testing.T) {
	w := newDefaultWidget()

	assert.True(t, w.Dispatch(down(100, 200, HandleLineStart)))
	assert.True(t, w.Dispatch(down(400, 100, HandleLineEnd)))
	assert.True(t, w.Dispatch(down(300, 300, HandleRadius)))

	assert.Equal(t, Dragging, w.GestureState(HandleLineStart))
	assert.Equal(t, Dragging, w.GestureState(HandleLineEnd))
	assert.Equal(t, Dragging, w.GestureState(HandleRadius))

	// 100 px up: radius 110, then both endpoints snap at the new radius
	w.Dispatch(move(300, 200))

	s := w.Snapshot()
	assert.InDelta(t, 110, s.Circle.Radius, 1e-9)
	assert.True(t, s.Line.StartAttached)
	assert.True(t, s.Line.EndAttached)
	assert.InDelta(t, 190, s.Line.Start.Y, 1e-9)
	assert.InDelta(t, 190, s.Line.End.Y, 1e-9)
}

func TestWidgetDownTwiceIsNoop(t *testing.T) {
	w := newDefaultWidget()

	assert.True(t, w.Dispatch(down(100, 200, HandleLineStart)))
	assert.False(t, w.Dispatch(down(100, 200, HandleLineStart)))
	assert.False(t, w.Dispatch(down(10, 10, HandleNone)))
}

func TestWidgetMoveWithoutGesture(t *testing.T) {
	w := newDefaultWidget()
	before := w.Snapshot()

	assert.False(t, w.Dispatch(move(300, 250)))
	assert.False(t, w.Dispatch(up(300, 250)))
	assert.Equal(t, before, w.Snapshot())
}

func TestWidgetOnChange(t *testing.T) {
	w := newDefaultWidget()

	var seen []Snapshot
	w.OnChange(func(s Snapshot) {
		seen = append(seen, s)
	})

	w.Dispatch(move(0, 0)) // nothing dragging
	w.Dispatch(down(100, 200, HandleLineStart))
	w.Dispatch(move(300, 250))
	w.Dispatch(up(300, 250))

	require.Len(t, seen, 3)
	assert.Equal(t, Dragging, seen[0].Gestures.LineStart)
	assert.True(t, seen[1].Line.StartAttached)
	assert.Equal(t, Idle, seen[2].Gestures.LineStart)
	assert.Equal(t, w.Snapshot(), seen[2])
}

func TestWidgetApplyTunables(t *testing.T) {
	w := newDefaultWidget()
	w.Dispatch(down(100, 200, HandleLineStart))
	w.Dispatch(move(300, 250))
	w.Dispatch(up(300, 250))

	tun := DefaultTunables()
	tun.MinRadius = 120
	tun.CaptureMargin = 0
	w.ApplyTunables(tun)

	s := w.Snapshot()
	assert.Equal(t, 120.0, s.Circle.Radius)
	assert.InDelta(t, 180, s.Line.Start.Y, 1e-9)
	assert.Equal(t, tun, w.Tunables())

	// With no margin the end handle only attaches inside the circle
	w.Dispatch(down(400, 100, HandleLineEnd))
	w.Dispatch(move(300, 425))
	assert.False(t, w.Snapshot().Line.EndAttached)
	w.Dispatch(move(300, 410))
	assert.True(t, w.Snapshot().Line.EndAttached)
}

func TestWidgetHitTest(t *testing.T) {
	w := newDefaultWidget()

	assert.Equal(t, HandleRadius, w.HitTest(pt(305, 305)))
	assert.Equal(t, HandleLineStart, w.HitTest(pt(100, 212)))
	assert.Equal(t, HandleLineEnd, w.HitTest(pt(390, 100)))
	assert.Equal(t, HandleNone, w.HitTest(pt(200, 200)))
	assert.Equal(t, HandleNone, w.HitTest(pt(300, 314))) // just outside the 13 px disc
}
