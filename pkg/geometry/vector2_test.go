package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Add(v2)

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	v1 := NewVector2(5, 7)
	v2 := NewVector2(1, 2)
	result := v1.Sub(v2)

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2Angle(t *testing.T) {
	tests := []struct {
		v        Vector2
		expected float64
	}{
		{NewVector2(1, 0), 0},
		{NewVector2(0, 1), math.Pi / 2},
		{NewVector2(0, -50), -math.Pi / 2},
		{NewVector2(-1, 0), math.Pi},
		{NewVector2(0, 0), 0}, // undefined direction falls back to 0
	}

	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Angle of %v: expected %v, got %v", tt.v, tt.expected, got)
		}
	}
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(2, math.Pi/2)
	if !v.ApproxEqual(NewVector2(0, 2), 1e-10) {
		t.Errorf("FromPolar failed: expected (0, 2), got %v", v)
	}
}

func TestVector2IsFinite(t *testing.T) {
	if !NewVector2(1, 2).IsFinite() {
		t.Error("expected (1, 2) to be finite")
	}
	if NewVector2(math.NaN(), 0).IsFinite() {
		t.Error("expected NaN component to be reported")
	}
	if NewVector2(0, math.Inf(1)).IsFinite() {
		t.Error("expected Inf component to be reported")
	}
}
