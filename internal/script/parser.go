package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// ErrSyntax is wrapped by every parse error
var ErrSyntax = errors.New("syntax error")

// Step is one scripted pointer event. When HasPos is false the event reuses
// the previous pointer position. A down step with Target HandleNone is
// resolved by hit testing at replay time.
type Step struct {
	Line   int
	Kind   interaction.EventKind
	Pos    geometry.Vector2
	HasPos bool
	Target interaction.Handle
}

// Script is a parsed pointer-event script
type Script struct {
	Steps []Step
}

// ParseFile reads a script from disk
func ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Parse reads one event per line. Blank lines and text after '#' are ignored.
func Parse(reader io.Reader) (*Script, error) {
	scanner := bufio.NewScanner(reader)
	s := &Script{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		step, err := parseStep(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		step.Line = lineNo
		s.Steps = append(s.Steps, step)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return s, nil
}

func parseStep(fields []string) (Step, error) {
	var step Step
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "down":
		step.Kind = interaction.PointerDown
		if len(args) != 2 && len(args) != 3 {
			return step, fmt.Errorf("%w: down expects X Y [radius|start|end]", ErrSyntax)
		}
		if len(args) == 3 {
			h, err := interaction.ParseHandle(args[2])
			if err != nil || h == interaction.HandleNone {
				return step, fmt.Errorf("%w: unknown handle %q", ErrSyntax, args[2])
			}
			step.Target = h
		}
		args = args[:2]

	case "move":
		step.Kind = interaction.PointerMove
		if len(args) != 2 {
			return step, fmt.Errorf("%w: move expects X Y", ErrSyntax)
		}

	case "up", "leave":
		step.Kind = interaction.PointerUp
		if name == "leave" {
			step.Kind = interaction.PointerLeave
		}
		if len(args) != 0 && len(args) != 2 {
			return step, fmt.Errorf("%w: %s expects no arguments or X Y", ErrSyntax, name)
		}
		if len(args) == 0 {
			return step, nil
		}

	default:
		return step, fmt.Errorf("%w: unknown event %q", ErrSyntax, fields[0])
	}

	pos, err := parsePoint(args[0], args[1])
	if err != nil {
		return step, err
	}
	step.Pos = pos
	step.HasPos = true
	return step, nil
}

func parsePoint(xs, ys string) (geometry.Vector2, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("%w: invalid coordinate %q", ErrSyntax, xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("%w: invalid coordinate %q", ErrSyntax, ys)
	}
	p := geometry.NewVector2(x, y)
	if !p.IsFinite() {
		return geometry.Vector2{}, fmt.Errorf("%w: coordinates must be finite", ErrSyntax)
	}
	return p, nil
}
