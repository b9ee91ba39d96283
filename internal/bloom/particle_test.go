package bloom

import (
	"math"
	"testing"
)

func TestInSpawnWindow(t *testing.T) {
	tests := []struct {
		p    float64
		want bool
	}{
		{0, false},
		{0.5, false},
		{0.505, true},
		{0.9, true},
		{0.95, false},
		{1, false},
	}
	for _, tt := range tests {
		if got := InSpawnWindow(tt.p); got != tt.want {
			t.Errorf("InSpawnWindow(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSpawnParticle(t *testing.T) {
	scene := NewScene(800, 800, 0.7, DefaultPalette())

	t.Run("roll below threshold", func(t *testing.T) {
		if _, ok := spawnParticle(&seqRand{vals: []float64{0.7}}, scene); ok {
			t.Error("spawned on a roll of exactly 0.7")
		}
	})

	t.Run("outside window never rolls", func(t *testing.T) {
		rng := &seqRand{vals: []float64{0.99}}
		if _, ok := spawnParticle(rng, NewScene(800, 800, 0.5, DefaultPalette())); ok {
			t.Error("spawned at progress 0.5")
		}
		if rng.i != 0 {
			t.Error("random source consumed outside the spawn window")
		}
	})

	t.Run("fields", func(t *testing.T) {
		// spawn roll, x, y, vx, vy, size, color, decay
		rng := &seqRand{vals: []float64{0.8, 0.5, 0.5, 0.5, 0.5, 0.5, 0.9, 0.5}}
		p, ok := spawnParticle(rng, scene)
		if !ok {
			t.Fatal("expected a particle")
		}
		if p.X != 400 || p.Y != 520 {
			t.Errorf("position = (%v, %v), want (400, 520)", p.X, p.Y)
		}
		if p.VX != 0 || p.VY != -2 {
			t.Errorf("velocity = (%v, %v), want (0, -2)", p.VX, p.VY)
		}
		if p.Size != 3 {
			t.Errorf("size = %v, want 3", p.Size)
		}
		if p.Color != scene.Palette.RoseSoft {
			t.Errorf("color = %v, want rose soft", p.Color)
		}
		if p.Life != 1 || math.Abs(p.Decay-0.02) > 1e-12 {
			t.Errorf("life/decay = %v/%v, want 1/0.02", p.Life, p.Decay)
		}
	})
}

func TestAgeParticles(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0, VX: 1, VY: -1, Life: 1, Decay: 0.03},
		{X: 5, Y: 5, Life: 0.02, Decay: 0.02},
		{X: 9, Y: 9, Life: 0.5, Decay: 0.01},
	}

	ps = ageParticles(ps)

	if len(ps) != 2 {
		t.Fatalf("live particles = %d, want 2", len(ps))
	}
	if ps[0].X != 1 || ps[0].Y != -1 {
		t.Errorf("position = (%v, %v), want (1, -1)", ps[0].X, ps[0].Y)
	}
	if math.Abs(ps[0].Life-0.97) > 1e-12 {
		t.Errorf("life = %v, want 0.97", ps[0].Life)
	}
	if ps[1].X != 9 {
		t.Errorf("order not preserved: second particle X = %v", ps[1].X)
	}
}

func TestParticleLifeStrictlyDecreasesUntilRemoved(t *testing.T) {
	ps := []Particle{{Life: 1, Decay: 0.03}}
	prev := 1.0
	ticks := 0
	for len(ps) > 0 {
		ps = ageParticles(ps)
		ticks++
		if len(ps) > 0 {
			if ps[0].Life >= prev {
				t.Fatalf("life did not decrease: %v -> %v", prev, ps[0].Life)
			}
			if ps[0].Life <= 0 {
				t.Fatalf("particle kept with life %v", ps[0].Life)
			}
			prev = ps[0].Life
		}
	}
	// 1/0.03 = 33.3, so the 34th tick takes life below zero.
	if ticks != 34 {
		t.Errorf("particle removed after %d ticks, want 34", ticks)
	}
}
