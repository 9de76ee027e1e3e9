package script

import (
	"strings"
	"testing"

	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayHitTestsAndReusesPosition(t *testing.T) {
	src := `
down 102 198   # lands on the start handle
move 300 250
up
down 300 300   # lands on the radius handle
move 300 800
leave
`
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	w := interaction.NewWidget(interaction.DefaultLayout(), interaction.DefaultTunables())

	var results []Result
	final := Replay(w, s, func(r Result) {
		results = append(results, r)
	})

	require.Len(t, results, 6)
	assert.Equal(t, interaction.HandleLineStart, results[0].Event.Target)
	assert.Equal(t, interaction.HandleRadius, results[3].Event.Target)
	assert.Equal(t, 250.0, results[2].Event.Pos.Y)
	for _, r := range results {
		assert.True(t, r.Changed, "step on line %d", r.Step.Line)
	}

	assert.InDelta(t, 50, final.Circle.Radius, 1e-9)
	assert.True(t, final.Line.StartAttached)
	assert.InDelta(t, 300, final.Line.Start.X, 1e-9)
	assert.InDelta(t, 250, final.Line.Start.Y, 1e-9)
	assert.False(t, final.Gestures.Active())
}

func TestReplayDownOnEmptySpace(t *testing.T) {
	s, err := Parse(strings.NewReader("down 10 10\nmove 50 50\nup\n"))
	require.NoError(t, err)

	w := interaction.NewWidget(interaction.DefaultLayout(), interaction.DefaultTunables())
	before := w.Snapshot()

	changed := 0
	Replay(w, s, func(r Result) {
		if r.Changed {
			changed++
		}
	})

	assert.Zero(t, changed)
	assert.Equal(t, before, w.Snapshot())
}
