package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/snapcircle/internal/interaction"
)

// Options configures PNG rendering
type Options struct {
	Width    int
	Height   int
	Scale    int // Supersampling factor, 1 disables it
	FontSize float64
	HUD      bool
}

// DefaultOptions returns the options used by the replay command
func DefaultOptions() Options {
	return Options{
		Width:    800,
		Height:   600,
		Scale:    4,
		FontSize: 14,
		HUD:      true,
	}
}

type canvas struct {
	img   *image.RGBA
	scale float64
	face  font.Face
}

// Render draws a snapshot into a new image of the configured size
func Render(s interaction.Snapshot, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	large := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	c := &canvas{img: large, scale: float64(scale)}
	if opts.HUD {
		face, err := newFace(opts.FontSize * float64(scale))
		if err != nil {
			return nil, err
		}
		c.face = face
	}
	c.paint(s)

	if scale == 1 {
		return large, nil
	}

	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final, nil
}

// WritePNG renders a snapshot and encodes it as PNG
func WritePNG(w io.Writer, s interaction.Snapshot, opts Options) error {
	img, err := Render(s, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes a snapshot to a PNG file
func SavePNG(path string, s interaction.Snapshot, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WritePNG(f, s, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func (c *canvas) paint(s interaction.Snapshot) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)

	c.ring(s.Circle.Center.X, s.Circle.Center.Y, s.Circle.Radius, ColorCircle)
	c.line(s.Line.Start.X, s.Line.Start.Y, s.Line.End.X, s.Line.End.Y, ColorLine)

	// Same stacking as hit testing: radius, start, end
	for _, p := range []struct{ x, y float64 }{
		{s.RadiusHandle.X, s.RadiusHandle.Y},
		{s.Line.Start.X, s.Line.Start.Y},
		{s.Line.End.X, s.Line.End.Y},
	} {
		c.disc(p.x, p.y, HaloRadius, ColorHalo)
		c.disc(p.x, p.y, HandleRadius, ColorHandle)
	}

	if c.face != nil {
		c.text(HUDLines(s))
	}
}

// ring strokes a circle outline. Only pixels of the ring's bounding box
// that lie on the image are visited.
func (c *canvas) ring(cx, cy, r float64, col color.Color) {
	cx, cy, r = cx*c.scale, cy*c.scale, r*c.scale
	half := StrokeWidth * c.scale / 2

	c.fill(cx-r-half, cy-r-half, cx+r+half, cy+r+half, col, func(px, py float64) bool {
		return math.Abs(math.Hypot(px-cx, py-cy)-r) <= half
	})
}

// line strokes a segment, visiting only the clipped bounding box
func (c *canvas) line(x1, y1, x2, y2 float64, col color.Color) {
	x1, y1, x2, y2 = x1*c.scale, y1*c.scale, x2*c.scale, y2*c.scale
	half := StrokeWidth * c.scale / 2

	dx, dy := x2-x1, y2-y1
	len2 := dx*dx + dy*dy
	if len2 < 1 {
		c.disc(x1/c.scale, y1/c.scale, StrokeWidth/2, col)
		return
	}

	c.fill(math.Min(x1, x2)-half, math.Min(y1, y2)-half, math.Max(x1, x2)+half, math.Max(y1, y2)+half, col, func(px, py float64) bool {
		t := ((px-x1)*dx + (py-y1)*dy) / len2
		t = math.Max(0, math.Min(1, t))
		return math.Hypot(px-(x1+dx*t), py-(y1+dy*t)) <= half
	})
}

// fill sets every pixel inside the given box and the image whose center
// satisfies inside
func (c *canvas) fill(minX, minY, maxX, maxY float64, col color.Color, inside func(px, py float64) bool) {
	b := c.img.Bounds()
	x0 := clampInt(math.Floor(minX), b.Min.X, b.Max.X)
	y0 := clampInt(math.Floor(minY), b.Min.Y, b.Max.Y)
	x1 := clampInt(math.Ceil(maxX), b.Min.X-1, b.Max.X-1)
	y1 := clampInt(math.Ceil(maxY), b.Min.Y-1, b.Max.Y-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				c.img.Set(x, y, col)
			}
		}
	}
}

// clampInt converts v to an int within [lo, hi]; NaN maps to hi
func clampInt(v float64, lo, hi int) int {
	switch {
	case v >= float64(lo) && v <= float64(hi):
		return int(v)
	case v < float64(lo):
		return lo
	default:
		return hi
	}
}

// disc fills a circle, blending translucent colours over what is below
func (c *canvas) disc(cx, cy, r float64, col color.Color) {
	m := &discMask{cx: cx * c.scale, cy: cy * c.scale, r: r * c.scale}
	draw.DrawMask(c.img, m.Bounds(), image.NewUniform(col), image.Point{}, m, m.Bounds().Min, draw.Over)
}

func (c *canvas) text(lines []string) {
	metrics := c.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	margin := int(10 * c.scale)

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(ColorText),
		Face: c.face,
	}
	for i, s := range lines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(margin),
			Y: fixed.I(margin + metrics.Ascent.Ceil() + i*lineHeight),
		}
		d.DrawString(s)
	}
}

// discMask is an alpha mask that is opaque inside a circle
type discMask struct {
	cx, cy, r float64
}

func (m *discMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *discMask) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(m.cx-m.r)), int(math.Floor(m.cy-m.r)),
		int(math.Ceil(m.cx+m.r))+1, int(math.Ceil(m.cy+m.r))+1,
	)
}

func (m *discMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
