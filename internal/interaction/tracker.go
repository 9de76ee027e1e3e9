package interaction

import (
	"fmt"

	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// PointerSample is the pointer state a polling surface reads once per frame
type PointerSample struct {
	Pos      geometry.Vector2
	Inside   bool // Pointer is over the drawing area
	Pressed  bool // Primary button went down this frame
	Released bool // Primary button went up this frame
}

// Tracker turns per-frame pointer samples into pointer events
type Tracker struct {
	last   geometry.Vector2
	inside bool
}

// Events returns the events for one sample. Presses are resolved to a
// handle with hit. Leaving the drawing area produces a single leave event
// at the last known position.
func (t *Tracker) Events(s PointerSample, hit func(geometry.Vector2) Handle) []PointerEvent {
	if !s.Inside {
		if !t.inside {
			return nil
		}
		t.inside = false
		return []PointerEvent{{Kind: PointerLeave, Pos: t.last}}
	}

	var events []PointerEvent
	if !t.inside || s.Pos != t.last {
		events = append(events, PointerEvent{Kind: PointerMove, Pos: s.Pos})
	}
	t.inside = true
	t.last = s.Pos

	if s.Pressed {
		events = append(events, PointerEvent{Kind: PointerDown, Pos: s.Pos, Target: hit(s.Pos)})
	}
	if s.Released {
		events = append(events, PointerEvent{Kind: PointerUp, Pos: s.Pos})
	}
	return events
}

// Transitions describes the gesture slots that differ between two states,
// for example "radius: idle -> dragging"
func (g Gestures) Transitions(next Gestures) []string {
	var out []string
	pairs := []struct {
		h        Handle
		from, to GestureState
	}{
		{HandleRadius, g.Radius, next.Radius},
		{HandleLineStart, g.LineStart, next.LineStart},
		{HandleLineEnd, g.LineEnd, next.LineEnd},
	}
	for _, p := range pairs {
		if p.from != p.to {
			out = append(out, fmt.Sprintf("%s: %s -> %s", p.h, p.from, p.to))
		}
	}
	return out
}
