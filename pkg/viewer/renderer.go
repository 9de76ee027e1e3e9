package viewer

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/internal/render"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// CircleView shows an interaction.Widget and feeds it mouse events
type CircleView struct {
	widget.BaseWidget

	mu       sync.Mutex
	model    *interaction.Widget
	snapshot interaction.Snapshot
	pointer  geometry.Vector2
	onChange func(interaction.Snapshot)
}

var (
	_ desktop.Mouseable = (*CircleView)(nil)
	_ desktop.Hoverable = (*CircleView)(nil)
)

// NewCircleView creates a view for model. The view owns the model from now
// on; use ApplyTunables and Snapshot instead of touching it directly.
func NewCircleView(model *interaction.Widget) *CircleView {
	v := &CircleView{
		model:    model,
		snapshot: model.Snapshot(),
	}
	model.OnChange(func(s interaction.Snapshot) {
		v.snapshot = s
	})
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback for state changes. It runs without the
// view's lock held.
func (v *CircleView) SetOnChange(callback func(interaction.Snapshot)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onChange = callback
}

// Snapshot returns the current state
func (v *CircleView) Snapshot() interaction.Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// ApplyTunables replaces the tunables of the underlying widget
func (v *CircleView) ApplyTunables(t interaction.Tunables) {
	v.mu.Lock()
	v.model.ApplyTunables(t)
	s, cb := v.snapshot, v.onChange
	v.mu.Unlock()

	v.Refresh()
	if cb != nil {
		cb(s)
	}
}

// MouseDown starts a drag on the handle under the pointer
func (v *CircleView) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := toVector2(e.Position)
	v.dispatch(func(w *interaction.Widget) interaction.PointerEvent {
		return interaction.PointerEvent{Kind: interaction.PointerDown, Pos: p, Target: w.HitTest(p)}
	})
}

// MouseUp releases all drags
func (v *CircleView) MouseUp(e *desktop.MouseEvent) {
	p := toVector2(e.Position)
	v.dispatch(func(*interaction.Widget) interaction.PointerEvent {
		return interaction.PointerEvent{Kind: interaction.PointerUp, Pos: p}
	})
}

func (v *CircleView) MouseIn(e *desktop.MouseEvent) {
	v.MouseMoved(e)
}

func (v *CircleView) MouseMoved(e *desktop.MouseEvent) {
	p := toVector2(e.Position)
	v.dispatch(func(*interaction.Widget) interaction.PointerEvent {
		return interaction.PointerEvent{Kind: interaction.PointerMove, Pos: p}
	})
}

// MouseOut releases all drags, the same as MouseUp
func (v *CircleView) MouseOut() {
	v.dispatch(func(*interaction.Widget) interaction.PointerEvent {
		return interaction.PointerEvent{Kind: interaction.PointerLeave, Pos: v.pointer}
	})
}

// dispatch builds and delivers one event under the lock, then redraws
func (v *CircleView) dispatch(build func(*interaction.Widget) interaction.PointerEvent) {
	v.mu.Lock()
	ev := build(v.model)
	v.pointer = ev.Pos
	changed := v.model.Dispatch(ev)
	s, cb := v.snapshot, v.onChange
	v.mu.Unlock()

	if !changed {
		return
	}
	v.Refresh()
	if cb != nil {
		cb(s)
	}
}

// CreateRenderer creates the renderer for the widget
func (v *CircleView) CreateRenderer() fyne.WidgetRenderer {
	r := &circleViewRenderer{
		view:       v,
		background: canvas.NewRectangle(render.ColorBackground),
		ring:       canvas.NewCircle(color.Transparent),
		line:       canvas.NewLine(render.ColorLine),
	}
	r.ring.StrokeColor = render.ColorCircle
	r.ring.StrokeWidth = render.StrokeWidth
	r.line.StrokeWidth = render.StrokeWidth

	r.objects = []fyne.CanvasObject{r.background, r.ring, r.line}
	for i := range r.halos {
		r.halos[i] = canvas.NewCircle(render.ColorHalo)
		r.dots[i] = canvas.NewCircle(render.ColorHandle)
		r.objects = append(r.objects, r.halos[i], r.dots[i])
	}
	r.update()
	return r
}

func toVector2(p fyne.Position) geometry.Vector2 {
	return geometry.NewVector2(float64(p.X), float64(p.Y))
}

func toPosition(v geometry.Vector2) fyne.Position {
	return fyne.NewPos(float32(v.X), float32(v.Y))
}

// circleViewRenderer implements fyne.WidgetRenderer
type circleViewRenderer struct {
	view       *CircleView
	background *canvas.Rectangle
	ring       *canvas.Circle
	line       *canvas.Line
	halos      [3]*canvas.Circle
	dots       [3]*canvas.Circle
	objects    []fyne.CanvasObject
}

// drawOrder matches hit test priority, the last handle is on top
var drawOrder = [3]interaction.Handle{interaction.HandleRadius, interaction.HandleLineStart, interaction.HandleLineEnd}

func (r *circleViewRenderer) update() {
	s := r.view.Snapshot()

	c := s.Circle
	r.ring.Position1 = toPosition(c.Center.Sub(geometry.NewVector2(c.Radius, c.Radius)))
	r.ring.Position2 = toPosition(c.Center.Add(geometry.NewVector2(c.Radius, c.Radius)))

	r.line.Position1 = toPosition(s.Line.Start)
	r.line.Position2 = toPosition(s.Line.End)

	for i, h := range drawOrder {
		pos, _ := s.HandlePosition(h)
		placeDisc(r.halos[i], pos, render.HaloRadius)
		placeDisc(r.dots[i], pos, render.HandleRadius)
	}
}

func placeDisc(c *canvas.Circle, center geometry.Vector2, radius float64) {
	c.Position1 = toPosition(center.Sub(geometry.NewVector2(radius, radius)))
	c.Position2 = toPosition(center.Add(geometry.NewVector2(radius, radius)))
}

func (r *circleViewRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.update()
}

func (r *circleViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(600, 600)
}

func (r *circleViewRenderer) Refresh() {
	r.update()
	for _, obj := range r.objects {
		canvas.Refresh(obj)
	}
}

func (r *circleViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *circleViewRenderer) Destroy() {}
