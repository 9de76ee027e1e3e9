package interaction

import (
	"math"

	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// RadiusHandle is the drag proxy used to resize the circle. Its position
// only tracks the pointer's vertical movement while dragging and rests on
// the circle's center otherwise.
type RadiusHandle struct {
	Position geometry.Vector2
	Dragging bool
}

// CircleModel owns the circle and its radius handle
type CircleModel struct {
	circle      geometry.Circle
	handle      RadiusHandle
	minRadius   float64
	sensitivity float64
}

// NewCircleModel creates a circle model. A radius below the floor is raised to it.
func NewCircleModel(center geometry.Vector2, radius float64, t Tunables) *CircleModel {
	return &CircleModel{
		circle:      geometry.NewCircle(center, math.Max(t.MinRadius, radius)),
		handle:      RadiusHandle{Position: center},
		minRadius:   t.MinRadius,
		sensitivity: t.RadiusSensitivity,
	}
}

// Circle returns the current circle
func (m *CircleModel) Circle() geometry.Circle {
	return m.circle
}

// Handle returns the radius handle state
func (m *CircleModel) Handle() RadiusHandle {
	return m.handle
}

// BeginRadiusDrag starts a radius drag
func (m *CircleModel) BeginRadiusDrag() {
	m.handle.Dragging = true
}

// UpdateRadiusDrag applies the vertical movement since the previous update.
// Moving up grows the circle. It reports whether the radius changed.
func (m *CircleModel) UpdateRadiusDrag(pointerY float64) bool {
	if !m.handle.Dragging {
		return false
	}

	dy := m.handle.Position.Y - pointerY
	m.handle.Position.Y = pointerY

	radius := math.Max(m.minRadius, m.circle.Radius+dy/m.sensitivity)
	if radius == m.circle.Radius {
		return false
	}
	m.circle.Radius = radius
	return true
}

// EndRadiusDrag stops the drag and returns the handle to the center
func (m *CircleModel) EndRadiusDrag() {
	m.handle.Dragging = false
	m.handle.Position = m.circle.Center
}

// ApplyTunables swaps the sensitivity and floor. It reports whether the
// radius had to be raised to the new floor.
func (m *CircleModel) ApplyTunables(t Tunables) bool {
	m.minRadius = t.MinRadius
	m.sensitivity = t.RadiusSensitivity
	if m.circle.Radius < m.minRadius {
		m.circle.Radius = m.minRadius
		return true
	}
	return false
}
