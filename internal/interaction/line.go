package interaction

import (
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// Endpoint is one end of the line
type Endpoint struct {
	Position geometry.Vector2
	Dragging bool
	Attached bool
}

// LineEngine owns the line's endpoints and keeps attached endpoints on the
// circle's boundary. Attachment is never stored as a link to the circle; it
// is re-derived from the geometry on every drag move and radius change.
type LineEngine struct {
	start         Endpoint
	end           Endpoint
	captureMargin float64
}

// NewLineEngine creates a line with two free endpoints
func NewLineEngine(start, end geometry.Vector2, captureMargin float64) *LineEngine {
	return &LineEngine{
		start:         Endpoint{Position: start},
		end:           Endpoint{Position: end},
		captureMargin: captureMargin,
	}
}

// Start returns the start endpoint
func (l *LineEngine) Start() Endpoint {
	return l.start
}

// End returns the end endpoint
func (l *LineEngine) End() Endpoint {
	return l.end
}

// SetCaptureMargin changes the distance outside the boundary that still
// attaches. Existing attachments are kept until the next drag move.
func (l *LineEngine) SetCaptureMargin(margin float64) {
	l.captureMargin = margin
}

// Attach applies AttachToCircle with the engine's capture margin
func (l *LineEngine) Attach(p geometry.Vector2, c geometry.Circle) (geometry.Vector2, bool) {
	return geometry.AttachToCircle(p, c, l.captureMargin)
}

// BeginStartDrag starts dragging the start endpoint
func (l *LineEngine) BeginStartDrag() {
	l.start.Dragging = true
}

// BeginEndDrag starts dragging the end endpoint
func (l *LineEngine) BeginEndDrag() {
	l.end.Dragging = true
}

// UpdateDuringDrag moves every dragging endpoint to the pointer, snapping it
// to the circle when it is within the capture margin. It reports whether any
// endpoint was dragging.
func (l *LineEngine) UpdateDuringDrag(pointer geometry.Vector2, c geometry.Circle) bool {
	updated := false
	for _, ep := range []*Endpoint{&l.start, &l.end} {
		if !ep.Dragging {
			continue
		}
		ep.Position, ep.Attached = l.Attach(pointer, c)
		updated = true
	}
	return updated
}

// EndDrag releases both endpoints. Positions and attachment are kept.
func (l *LineEngine) EndDrag() {
	l.start.Dragging = false
	l.end.Dragging = false
}

// RetrackOnRadiusChange moves attached endpoints onto the resized boundary,
// keeping their angle from the center. It reports whether any endpoint moved.
//
// Attached endpoints are projected even when a single large radius step
// leaves them outside the capture margin, so an attached endpoint is always
// on the boundary.
func (l *LineEngine) RetrackOnRadiusChange(c geometry.Circle) bool {
	moved := false
	for _, ep := range []*Endpoint{&l.start, &l.end} {
		if !ep.Attached {
			continue
		}
		ep.Position = geometry.ProjectOntoCircle(ep.Position, c)
		moved = true
	}
	return moved
}
