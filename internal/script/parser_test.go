package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllKinds(t *testing.T) {
	src := `
# attach the start point
down 100 200 start
move 300 250   # inside the capture band
up

down 300 300
move 300 800
leave 10 20
`
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, s.Steps, 6)

	expected := []Step{
		{Line: 3, Kind: interaction.PointerDown, Pos: geometry.NewVector2(100, 200), HasPos: true, Target: interaction.HandleLineStart},
		{Line: 4, Kind: interaction.PointerMove, Pos: geometry.NewVector2(300, 250), HasPos: true},
		{Line: 5, Kind: interaction.PointerUp},
		{Line: 7, Kind: interaction.PointerDown, Pos: geometry.NewVector2(300, 300), HasPos: true},
		{Line: 8, Kind: interaction.PointerMove, Pos: geometry.NewVector2(300, 800), HasPos: true},
		{Line: 9, Kind: interaction.PointerLeave, Pos: geometry.NewVector2(10, 20), HasPos: true},
	}
	assert.Equal(t, expected, s.Steps)
}

func TestParseErrorsReportLine(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		line   string
		detail string
	}{
		{name: "Should reject unknown events", src: "move 1 2\njump 3 4\n", line: "line 2", detail: "jump"},
		{name: "Should reject missing coordinates", src: "move 1\n", line: "line 1", detail: "move expects"},
		{name: "Should reject bad numbers", src: "\n\ndown x 2\n", line: "line 3", detail: `"x"`},
		{name: "Should reject unknown handles", src: "down 1 2 middle\n", line: "line 1", detail: "middle"},
		{name: "Should reject a lone coordinate on up", src: "up 5\n", line: "line 1", detail: "up expects"},
		{name: "Should reject infinite coordinates", src: "move Inf 0\n", line: "line 1", detail: "finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))
			assert.Contains(t, err.Error(), tt.line)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.txt")
	require.NoError(t, os.WriteFile(path, []byte("down 1 2 end\nup 1 2\n"), 0o644))

	s, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
