package geometry

// Circle is a circle in the plane
type Circle struct {
	Center Vector2
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center Vector2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// PointAt returns the point on the boundary at the given angle (radians)
func (c Circle) PointAt(angle float64) Vector2 {
	return c.Center.Add(FromPolar(c.Radius, angle))
}

// DistanceFromCenter returns how far p lies from the center
func (c Circle) DistanceFromCenter(p Vector2) float64 {
	return p.Distance(c.Center)
}

// ProjectOntoCircle moves p onto the boundary along the ray from the center
// through p. A point at the exact center uses angle 0.
func ProjectOntoCircle(p Vector2, c Circle) Vector2 {
	return c.PointAt(p.Sub(c.Center).Angle())
}

// AttachToCircle snaps p onto the circle's boundary when it lies closer to the
// center than radius+margin. The second result reports whether p was
// captured; uncaptured points are returned unchanged.
//
// With a positive margin captured points are fixed points: attaching an
// already attached point returns the same point.
func AttachToCircle(p Vector2, c Circle, margin float64) (Vector2, bool) {
	if c.DistanceFromCenter(p) < c.Radius+margin {
		return ProjectOntoCircle(p, c), true
	}
	return p, false
}
