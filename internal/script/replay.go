package script

import (
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// Result is the outcome of replaying one step
type Result struct {
	Step     Step
	Event    interaction.PointerEvent
	Changed  bool
	Snapshot interaction.Snapshot
}

// Replay feeds every step into w and calls fn after each one. Steps without
// coordinates reuse the last pointer position, and down steps without a
// target are hit tested against the widget's state at that moment.
func Replay(w *interaction.Widget, s *Script, fn func(Result)) interaction.Snapshot {
	var pointer geometry.Vector2

	for _, step := range s.Steps {
		if step.HasPos {
			pointer = step.Pos
		}

		ev := interaction.PointerEvent{Kind: step.Kind, Pos: pointer, Target: step.Target}
		if ev.Kind == interaction.PointerDown && ev.Target == interaction.HandleNone {
			ev.Target = w.HitTest(pointer)
		}

		changed := w.Dispatch(ev)
		if fn != nil {
			fn(Result{Step: step, Event: ev, Changed: changed, Snapshot: w.Snapshot()})
		}
	}
	return w.Snapshot()
}
