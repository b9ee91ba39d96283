package bloom

import (
	"math"
	"testing"
)

func TestGrowthFactors(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    float64
		expected float64
	}{
		{"stem at start", StemGrowth, 0, 0},
		{"stem halfway", StemGrowth, 0.4, 0.6},
		{"stem saturates at two thirds", StemGrowth, 2.0 / 3.0, 1},
		{"leaf before start", LeafGrowth, 0.3, 0},
		{"leaf ramp", LeafGrowth, 0.5, 0.4},
		{"leaf full", LeafGrowth, 0.8, 1},
		{"flower before start", FlowerGrowth, 0.4, 0},
		{"flower ramp", FlowerGrowth, 0.65, 0.4},
		{"flower just before full progress", FlowerGrowth, 0.99, 0.944},
		{"flower at full progress", FlowerGrowth, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.input)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("f(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGrowthFactorsClampAtFullProgress(t *testing.T) {
	for _, p := range []float64{1, 1.2, 3, 100} {
		if got := StemGrowth(p); got != 1 {
			t.Errorf("StemGrowth(%v) = %v, want 1", p, got)
		}
		if got := LeafGrowth(p); got != 1 {
			t.Errorf("LeafGrowth(%v) = %v, want 1", p, got)
		}
		if got := FlowerGrowth(p); got != 1 {
			t.Errorf("FlowerGrowth(%v) = %v, want 1", p, got)
		}
		if got := CenterRadius(FlowerGrowth(p), 1); got != 15 {
			t.Errorf("CenterRadius at p=%v = %v, want 15", p, got)
		}
	}
}

func TestCenterRadius(t *testing.T) {
	if got := CenterRadius(0.8, 1); got != 0 {
		t.Errorf("CenterRadius(0.8) = %v, want 0", got)
	}
	if got := CenterRadius(0.9, 2); math.Abs(got-15) > 1e-9 {
		t.Errorf("CenterRadius(0.9, 2) = %v, want 15", got)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want float64
	}{
		{"reference size", 800, 800, 1},
		{"large screen uses the smaller side", 1920, 1200, 1.5},
		{"tiny screen is floored", 320, 480, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scale(tt.w, tt.h); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Scale(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestTargetY(t *testing.T) {
	if got := TargetY(639, 1000); got != 450 {
		t.Errorf("narrow TargetY = %v, want 450", got)
	}
	if got := TargetY(640, 1000); got != 650 {
		t.Errorf("wide TargetY = %v, want 650", got)
	}
}
