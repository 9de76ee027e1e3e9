package interaction

import (
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// Widget is the gesture dispatcher of the circle-and-line widget. It routes
// pointer events to the circle model and the line engine and tells
// listeners about every change.
//
// Each handle has its own gesture slot, so several drags can be active at
// once. A Widget is not safe for concurrent use.
type Widget struct {
	circle    *CircleModel
	line      *LineEngine
	tunables  Tunables
	listeners []func(Snapshot)
}

// NewWidget creates a widget with the given starting geometry
func NewWidget(layout Layout, t Tunables) *Widget {
	return &Widget{
		circle:   NewCircleModel(layout.Center, layout.Radius, t),
		line:     NewLineEngine(layout.LineStart, layout.LineEnd, t.CaptureMargin),
		tunables: t,
	}
}

// OnChange registers fn to be called with the new snapshot after every
// event that changed the widget
func (w *Widget) OnChange(fn func(Snapshot)) {
	w.listeners = append(w.listeners, fn)
}

// Tunables returns the tunables in effect
func (w *Widget) Tunables() Tunables {
	return w.tunables
}

// Snapshot returns the current state
func (w *Widget) Snapshot() Snapshot {
	handle := w.circle.Handle()
	start, end := w.line.Start(), w.line.End()
	return Snapshot{
		Circle: w.circle.Circle(),
		Line: LineState{
			Start:         start.Position,
			End:           end.Position,
			StartAttached: start.Attached,
			EndAttached:   end.Attached,
		},
		RadiusHandle: handle.Position,
		Gestures: Gestures{
			Radius:    stateOf(handle.Dragging),
			LineStart: stateOf(start.Dragging),
			LineEnd:   stateOf(end.Dragging),
		},
	}
}

// GestureState returns the gesture state of a handle
func (w *Widget) GestureState(h Handle) GestureState {
	g := w.Snapshot().Gestures
	switch h {
	case HandleRadius:
		return g.Radius
	case HandleLineStart:
		return g.LineStart
	case HandleLineEnd:
		return g.LineEnd
	}
	return Idle
}

// HitTest returns the handle under p using the configured hit radius
func (w *Widget) HitTest(p geometry.Vector2) Handle {
	return HitTest(w.Snapshot(), p, w.tunables.HandleHitRadius)
}

// Dispatch processes one pointer event and reports whether it changed the
// widget. Up and leave are handled identically.
func (w *Widget) Dispatch(ev PointerEvent) bool {
	var changed bool
	switch ev.Kind {
	case PointerDown:
		changed = w.press(ev.Target)
	case PointerMove:
		changed = w.move(ev.Pos)
	case PointerUp, PointerLeave:
		changed = w.release()
	}

	if changed {
		w.notify()
	}
	return changed
}

// ApplyTunables replaces the tunables at runtime. When the new floor lifts the
// radius, attached endpoints follow the boundary.
func (w *Widget) ApplyTunables(t Tunables) {
	w.tunables = t
	w.line.SetCaptureMargin(t.CaptureMargin)
	if w.circle.ApplyTunables(t) {
		w.line.RetrackOnRadiusChange(w.circle.Circle())
	}
	w.notify()
}

func (w *Widget) press(target Handle) bool {
	if w.GestureState(target) == Dragging {
		return false
	}

	switch target {
	case HandleRadius:
		w.circle.BeginRadiusDrag()
	case HandleLineStart:
		w.line.BeginStartDrag()
	case HandleLineEnd:
		w.line.BeginEndDrag()
	default:
		return false
	}
	return true
}

// move runs the radius drag first, so the line sees the circle as it is
// after this event
func (w *Widget) move(pos geometry.Vector2) bool {
	changed := w.circle.Handle().Dragging
	if w.circle.UpdateRadiusDrag(pos.Y) {
		w.line.RetrackOnRadiusChange(w.circle.Circle())
	}
	if w.line.UpdateDuringDrag(pos, w.circle.Circle()) {
		changed = true
	}
	return changed
}

func (w *Widget) release() bool {
	active := w.Snapshot().Gestures.Active()
	w.circle.EndRadiusDrag()
	w.line.EndDrag()
	return active
}

func (w *Widget) notify() {
	if len(w.listeners) == 0 {
		return
	}
	s := w.Snapshot()
	for _, fn := range w.listeners {
		fn(s)
	}
}
