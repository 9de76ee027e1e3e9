package geometry

import (
	"math"
	"math/rand"
	"testing"
)

const captureMargin = 20.0

func TestAttachToCircleProjectsOntoBoundary(t *testing.T) {
	c := NewCircle(NewVector2(300, 300), 100)

	got, attached := AttachToCircle(NewVector2(300, 250), c, captureMargin)
	if !attached {
		t.Fatal("expected (300, 250) to be captured")
	}
	if !got.ApproxEqual(NewVector2(300, 200), 1e-9) {
		t.Errorf("expected (300, 200), got %v", got)
	}
}

func TestAttachToCircleLeavesDistantPoint(t *testing.T) {
	c := NewCircle(NewVector2(300, 300), 100)
	p := NewVector2(400, 100)

	got, attached := AttachToCircle(p, c, captureMargin)
	if attached {
		t.Fatal("expected (400, 100) to stay free")
	}
	if got != p {
		t.Errorf("expected point to be returned unchanged, got %v", got)
	}
}

func TestAttachToCircleMarginBoundary(t *testing.T) {
	c := NewCircle(NewVector2(300, 300), 100)
	const eps = 1e-6

	inside := c.Center.Add(FromPolar(c.Radius+captureMargin-eps, 0.7))
	if _, attached := AttachToCircle(inside, c, captureMargin); !attached {
		t.Errorf("point just inside the capture margin should attach")
	}

	outside := c.Center.Add(FromPolar(c.Radius+captureMargin+eps, 0.7))
	if _, attached := AttachToCircle(outside, c, captureMargin); attached {
		t.Errorf("point just outside the capture margin should not attach")
	}
}

func TestAttachToCircleAtCenter(t *testing.T) {
	c := NewCircle(NewVector2(300, 300), 100)

	got, attached := AttachToCircle(c.Center, c, captureMargin)
	if !attached {
		t.Fatal("center should be captured")
	}
	if !got.IsFinite() {
		t.Fatalf("center projection produced %v", got)
	}
	if !got.ApproxEqual(NewVector2(400, 300), 1e-9) {
		t.Errorf("expected angle 0 fallback (400, 300), got %v", got)
	}
}

func TestAttachToCircleDistanceInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		c := NewCircle(
			NewVector2(rng.Float64()*800, rng.Float64()*600),
			20+rng.Float64()*400,
		)
		p := NewVector2(rng.Float64()*1200-200, rng.Float64()*1000-200)

		got, attached := AttachToCircle(p, c, captureMargin)
		if !attached {
			continue
		}
		if d := c.DistanceFromCenter(got); math.Abs(d-c.Radius) > 1e-6 {
			t.Fatalf("attached point %v lies %v from center, radius %v", got, d, c.Radius)
		}
	}
}

func TestAttachToCircleIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCircle(NewVector2(300, 300), 100)

	for i := 0; i < 500; i++ {
		p := NewVector2(150+rng.Float64()*300, 150+rng.Float64()*300)

		first, attached := AttachToCircle(p, c, captureMargin)
		if !attached {
			continue
		}
		second, stillAttached := AttachToCircle(first, c, captureMargin)
		if !stillAttached {
			t.Fatalf("attached point %v did not re-attach", first)
		}
		if !second.ApproxEqual(first, 1e-9) {
			t.Fatalf("projection not idempotent: %v -> %v", first, second)
		}
	}
}

func TestProjectOntoCirclePreservesAngle(t *testing.T) {
	c := NewCircle(NewVector2(300, 300), 150)
	p := NewVector2(300, 200) // 100 above the center

	got := ProjectOntoCircle(p, c)
	if !got.ApproxEqual(NewVector2(300, 150), 1e-9) {
		t.Errorf("expected (300, 150), got %v", got)
	}
}
