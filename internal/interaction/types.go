package interaction

import (
	"fmt"
	"strings"

	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// GestureState is the state of a single handle's drag gesture
type GestureState int

const (
	Idle GestureState = iota
	Dragging
)

func (s GestureState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Handle identifies an interactive handle of the widget
type Handle int

const (
	HandleNone Handle = iota
	HandleRadius
	HandleLineStart
	HandleLineEnd
)

func (h Handle) String() string {
	switch h {
	case HandleRadius:
		return "radius"
	case HandleLineStart:
		return "start"
	case HandleLineEnd:
		return "end"
	}
	return "none"
}

// ParseHandle parses the names printed by Handle.String
func ParseHandle(s string) (Handle, error) {
	switch strings.ToLower(s) {
	case "radius":
		return HandleRadius, nil
	case "start":
		return HandleLineStart, nil
	case "end":
		return HandleLineEnd, nil
	case "none", "":
		return HandleNone, nil
	}
	return HandleNone, fmt.Errorf("unknown handle %q", s)
}

// EventKind is the kind of a pointer event
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// PointerEvent is a single event delivered by the rendering surface.
// Target is only meaningful for PointerDown.
type PointerEvent struct {
	Kind   EventKind
	Pos    geometry.Vector2
	Target Handle
}

func (e PointerEvent) String() string {
	if e.Kind == PointerDown {
		return fmt.Sprintf("%s %s on %s", e.Kind, e.Pos, e.Target)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Pos)
}

// Tunables are the sensitivity and size constants of the widget
type Tunables struct {
	MinRadius         float64 // Smallest radius the circle can shrink to
	RadiusSensitivity float64 // Pixels of vertical drag per unit of radius
	CaptureMargin     float64 // Distance outside the boundary that still attaches
	HandleHitRadius   float64 // Pointer-down hit radius around each handle
}

// DefaultTunables returns the stock tunables
func DefaultTunables() Tunables {
	return Tunables{
		MinRadius:         20,
		RadiusSensitivity: 10,
		CaptureMargin:     20,
		HandleHitRadius:   13,
	}
}

// Layout is the geometry the widget starts with
type Layout struct {
	Center    geometry.Vector2
	Radius    float64
	LineStart geometry.Vector2
	LineEnd   geometry.Vector2
}

// DefaultLayout returns the stock starting geometry
func DefaultLayout() Layout {
	return Layout{
		Center:    geometry.NewVector2(300, 300),
		Radius:    100,
		LineStart: geometry.NewVector2(100, 200),
		LineEnd:   geometry.NewVector2(400, 100),
	}
}
