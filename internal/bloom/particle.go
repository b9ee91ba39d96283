package bloom

import "image/color"

// SpawnThreshold is the roll a tick must beat to spawn a sparkle, giving a
// 30% chance per tick inside the spawn window.
const SpawnThreshold = 0.7

// Particle is a short-lived sparkle released around the flower head.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.Color
	Life   float64
	Decay  float64
}

// InSpawnWindow reports whether sparkles may be released at progress p.
func InSpawnWindow(p float64) bool {
	return p > SpawnStart && p < SpawnEnd
}

// spawnParticle rolls once and, on success, returns a sparkle near the
// flower head of s.
func spawnParticle(rng Rand, s Scene) (Particle, bool) {
	if !InSpawnWindow(s.Progress) || rng.Float64() <= SpawnThreshold {
		return Particle{}, false
	}
	p := Particle{
		X:     s.Width/2 + (rng.Float64()-0.5)*100*s.Scale,
		Y:     TargetY(s.Width, s.Height) + (rng.Float64()-0.5)*100*s.Scale,
		VX:    (rng.Float64() - 0.5) * 2 * s.Scale,
		VY:    -rng.Float64()*2 - 1*s.Scale,
		Size:  (rng.Float64()*4 + 1) * s.Scale,
		Color: s.Palette.RoseSoft,
		Life:  1,
	}
	if rng.Float64() <= 0.5 {
		p.Color = s.Palette.Sparkle
	}
	p.Decay = rng.Float64()*0.02 + 0.01
	return p, true
}

// ageParticles advances every particle by one tick and drops the ones whose
// life ran out, keeping the original order.
func ageParticles(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(ps); i++ {
		ps[i] = Particle{}
	}
	return live
}
