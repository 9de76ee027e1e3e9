package render

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/snapcircle/internal/interaction"
)

// Colors shared by every rendering surface
var (
	ColorBackground = color.NRGBA{250, 250, 250, 255}
	ColorCircle     = color.NRGBA{0x2c, 0x7d, 0x23, 255} // #2c7d23
	ColorLine       = color.NRGBA{0x2c, 0x69, 0xd4, 255} // #2c69d4
	ColorHandle     = color.NRGBA{0x85, 0x68, 0xac, 255} // #8568ac
	ColorHalo       = color.NRGBA{0x85, 0x68, 0xac, 128}
	ColorText       = color.NRGBA{51, 51, 51, 255}
)

// Stroke and handle sizes in pixels
const (
	StrokeWidth  = 3.0
	HandleRadius = 4.0
	HaloRadius   = 13.0 // Same as the default handle hit radius
)

// Heading is shown above the HUD values
const Heading = "Interactive Circle and Line"

// HUDLines returns the text lines describing a snapshot
func HUDLines(s interaction.Snapshot) []string {
	return []string{
		Heading,
		fmt.Sprintf("Radius: %.1f", s.Circle.Radius),
		fmt.Sprintf("Start: %s %s", s.Line.Start, attachLabel(s.Line.StartAttached)),
		fmt.Sprintf("End: %s %s", s.Line.End, attachLabel(s.Line.EndAttached)),
	}
}

func attachLabel(attached bool) string {
	if attached {
		return "attached"
	}
	return "free"
}
