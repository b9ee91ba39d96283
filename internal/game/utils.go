package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// easeOutCubic starts fast and settles gently: f(t) = 1 - (1-t)^3
func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-clamp01(t), 3)
}

// blend mixes a and b in HCL space, which keeps intermediate roses vivid.
func blend(a, b color.Color, t float64) color.Color {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendHcl(cb, clamp01(t)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// pointIn reports whether (x, y) lies inside the rectangle at (rx, ry).
func pointIn(x, y, rx, ry, rw, rh float64) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}
