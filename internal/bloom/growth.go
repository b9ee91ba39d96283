package bloom

import "math"

// Stage breakpoints on the progress axis.
const (
	LeafStart      = 0.3
	PetalStart     = 0.4
	SpawnStart     = 0.5
	SpawnEnd       = 0.95
	CenterStart    = 0.8
	NarrowWidth    = 640
	NarrowTargetY  = 0.45
	DefaultTargetY = 0.65
	ScaleReference = 800.0
	MinScale       = 0.6
)

// StemGrowth is the fraction of the stem drawn at progress p.
func StemGrowth(p float64) float64 {
	return clamp01(p * 1.5)
}

// LeafGrowth is zero until p passes LeafStart.
func LeafGrowth(p float64) float64 {
	if p <= LeafStart {
		return 0
	}
	return clamp01((p - LeafStart) * 2)
}

// FlowerGrowth is zero until p passes PetalStart. The 1.6 ramp tops out at
// 0.96, so full progress snaps the flower to fully open.
func FlowerGrowth(p float64) float64 {
	if p <= PetalStart {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return clamp01((p - PetalStart) * 1.6)
}

// CenterRadius grows the flower center from 0 to 15*scale over the last
// fifth of the flower growth.
func CenterRadius(growth, scale float64) float64 {
	if growth <= CenterStart {
		return 0
	}
	return 15 * clamp01(1-(1-growth)*5) * scale
}

// Scale maps surface dimensions to a uniform feature scale.
func Scale(w, h float64) float64 {
	return math.Max(math.Min(w, h)/ScaleReference, MinScale)
}

// TargetY is the height the stem grows to and the flower sits at.
func TargetY(w, h float64) float64 {
	if w < NarrowWidth {
		return h * NarrowTargetY
	}
	return h * DefaultTargetY
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
