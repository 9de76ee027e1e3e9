package interaction

import (
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// LineState is the read-only view of the line
type LineState struct {
	Start         geometry.Vector2
	End           geometry.Vector2
	StartAttached bool
	EndAttached   bool
}

// Gestures holds the gesture state of each handle
type Gestures struct {
	Radius    GestureState
	LineStart GestureState
	LineEnd   GestureState
}

// Active reports whether any gesture is dragging
func (g Gestures) Active() bool {
	return g.Radius == Dragging || g.LineStart == Dragging || g.LineEnd == Dragging
}

// Snapshot is everything a rendering surface needs to draw one frame
type Snapshot struct {
	Circle       geometry.Circle
	Line         LineState
	RadiusHandle geometry.Vector2
	Gestures     Gestures
}

// HandlePosition returns where the given handle is drawn
func (s Snapshot) HandlePosition(h Handle) (geometry.Vector2, bool) {
	switch h {
	case HandleRadius:
		return s.RadiusHandle, true
	case HandleLineStart:
		return s.Line.Start, true
	case HandleLineEnd:
		return s.Line.End, true
	}
	return geometry.Vector2{}, false
}

func stateOf(dragging bool) GestureState {
	if dragging {
		return Dragging
	}
	return Idle
}
