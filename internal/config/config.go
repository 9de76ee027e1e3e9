package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/pkg/geometry"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Tunables holds the numeric knobs of the widget
type Tunables struct {
	MinRadius         float64 `toml:"min_radius"`
	RadiusSensitivity float64 `toml:"radius_sensitivity"`
	CaptureMargin     float64 `toml:"capture_margin"`
	HandleHitRadius   float64 `toml:"handle_hit_radius"`
}

// Circle is the starting circle
type Circle struct {
	Center [2]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
}

// Line is the starting line
type Line struct {
	Start [2]float64 `toml:"start"`
	End   [2]float64 `toml:"end"`
}

// Window describes the raylib window
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	FPS    int    `toml:"fps"`
}

// Config is the full configuration file
type Config struct {
	Tunables Tunables `toml:"tunables"`
	Circle   Circle   `toml:"circle"`
	Line     Line     `toml:"line"`
	Window   Window   `toml:"window"`
}

// Default returns the built-in configuration
func Default() Config {
	t := interaction.DefaultTunables()
	l := interaction.DefaultLayout()
	return Config{
		Tunables: Tunables{
			MinRadius:         t.MinRadius,
			RadiusSensitivity: t.RadiusSensitivity,
			CaptureMargin:     t.CaptureMargin,
			HandleHitRadius:   t.HandleHitRadius,
		},
		Circle: Circle{
			Center: pair(l.Center),
			Radius: l.Radius,
		},
		Line: Line{
			Start: pair(l.LineStart),
			End:   pair(l.LineEnd),
		},
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "SnapCircle",
			FPS:    60,
		},
	}
}

// Load reads a configuration file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Read decodes a configuration on top of the defaults and validates it.
// Keys that are not part of the configuration are rejected.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks value ranges. The returned error wraps ErrInvalid and
// names the offending key.
func (c Config) Validate() error {
	t := c.Tunables
	switch {
	case !(t.MinRadius > 0):
		return invalid("tunables.min_radius", "must be > 0", t.MinRadius)
	case !(t.RadiusSensitivity > 0):
		return invalid("tunables.radius_sensitivity", "must be > 0", t.RadiusSensitivity)
	case !(t.CaptureMargin >= 0):
		return invalid("tunables.capture_margin", "must be >= 0", t.CaptureMargin)
	case !(t.HandleHitRadius > 0):
		return invalid("tunables.handle_hit_radius", "must be > 0", t.HandleHitRadius)
	case !(c.Circle.Radius >= t.MinRadius):
		return invalid("circle.radius", "must be >= tunables.min_radius", c.Circle.Radius)
	case c.Window.Width <= 0:
		return invalid("window.width", "must be > 0", c.Window.Width)
	case c.Window.Height <= 0:
		return invalid("window.height", "must be > 0", c.Window.Height)
	case c.Window.FPS <= 0:
		return invalid("window.fps", "must be > 0", c.Window.FPS)
	}

	points := []struct {
		key string
		p   [2]float64
	}{
		{"circle.center", c.Circle.Center},
		{"line.start", c.Line.Start},
		{"line.end", c.Line.End},
	}
	for _, pt := range points {
		if !vec(pt.p).IsFinite() {
			return invalid(pt.key, "must be finite", pt.p)
		}
	}
	return nil
}

// WidgetTunables converts the tunables section for the interaction package
func (c Config) WidgetTunables() interaction.Tunables {
	return interaction.Tunables{
		MinRadius:         c.Tunables.MinRadius,
		RadiusSensitivity: c.Tunables.RadiusSensitivity,
		CaptureMargin:     c.Tunables.CaptureMargin,
		HandleHitRadius:   c.Tunables.HandleHitRadius,
	}
}

// WidgetLayout converts the circle and line sections for the interaction package
func (c Config) WidgetLayout() interaction.Layout {
	return interaction.Layout{
		Center:    vec(c.Circle.Center),
		Radius:    c.Circle.Radius,
		LineStart: vec(c.Line.Start),
		LineEnd:   vec(c.Line.End),
	}
}

func invalid(key, rule string, value any) error {
	return fmt.Errorf("%w: %s %s (got %v)", ErrInvalid, key, rule, value)
}

func pair(v geometry.Vector2) [2]float64 {
	return [2]float64{v.X, v.Y}
}

func vec(p [2]float64) geometry.Vector2 {
	return geometry.NewVector2(p[0], p[1])
}
