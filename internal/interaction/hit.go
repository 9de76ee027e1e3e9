package interaction

import (
	"github.com/dhconnelly/rtreego"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// handleOrder lists handles from bottom to top, in the order they are drawn
var handleOrder = []Handle{HandleRadius, HandleLineStart, HandleLineEnd}

// handleDisc is the clickable area around a handle
type handleDisc struct {
	handle Handle
	center geometry.Vector2
	radius float64
	z      int
}

func (d *handleDisc) Bounds() rtreego.Rect {
	return rtreego.Point{d.center.X, d.center.Y}.ToRect(d.radius)
}

func (d *handleDisc) contains(p geometry.Vector2) bool {
	return d.center.Distance(p) <= d.radius
}

// HitTest returns the topmost handle whose disc of the given radius contains
// p, or HandleNone. When discs overlap, handles drawn later win.
func HitTest(s Snapshot, p geometry.Vector2, radius float64) Handle {
	if radius <= 0 {
		return HandleNone
	}

	tree := rtreego.NewTree(2, 2, 8)
	for z, h := range handleOrder {
		center, _ := s.HandlePosition(h)
		tree.Insert(&handleDisc{handle: h, center: center, radius: radius, z: z})
	}

	hit := HandleNone
	top := -1
	for _, spatial := range tree.SearchIntersect(rtreego.Point{p.X, p.Y}.ToRect(0.5)) {
		disc := spatial.(*handleDisc)
		if disc.z > top && disc.contains(p) {
			hit = disc.handle
			top = disc.z
		}
	}
	return hit
}
