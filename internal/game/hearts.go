package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/blossom-greeting/internal/config"
)

const heartSpriteSize = 64

// heart is one background heart floating up the screen forever.
type heart struct {
	left     float64 // fraction of the width
	top      float64 // start offset below the top, as a fraction of the height
	size     float64 // pixels
	delay    float64 // seconds
	duration float64 // seconds per cycle
	tint     color.Color
}

func newHearts(n int, rng *rand.Rand, soft, primary color.Color) []heart {
	hs := make([]heart, n)
	for i := range hs {
		hs[i] = heart{
			left:     rng.Float64(),
			top:      1 + rng.Float64()*0.5,
			size:     18 + rng.Float64()*25,
			delay:    rng.Float64() * config.HeartMaxDelay,
			duration: config.HeartMinDuration + rng.Float64()*(config.HeartMaxDuration-config.HeartMinDuration),
			tint:     blend(soft, primary, rng.Float64()),
		}
	}
	return hs
}

// heartFrame is where a heart is at a point of its cycle.
type heartFrame struct {
	rise     float64 // fraction of the screen height risen
	rotation float64 // radians
	opacity  float64
}

// frameAt evaluates the float keyframes at t seconds since the hearts
// appeared: rise 130% of the height and turn once per cycle, fading in over
// the first tenth and out over the last.
func (h heart) frameAt(t float64) heartFrame {
	if t < h.delay || h.duration <= 0 {
		return heartFrame{}
	}
	phase := math.Mod(t-h.delay, h.duration) / h.duration

	opacity := config.HeartPeakOpacity
	switch {
	case phase < 0.1:
		opacity *= phase / 0.1
	case phase > 0.9:
		opacity *= (1 - phase) / 0.1
	}
	return heartFrame{
		rise:     config.HeartRise * phase,
		rotation: 2 * math.Pi * phase,
		opacity:  opacity,
	}
}

// newHeartSprite renders a white heart the hearts are tinted from.
func newHeartSprite() *ebiten.Image {
	dc := gg.NewContext(heartSpriteSize, heartSpriteSize)
	s := float64(heartSpriteSize)
	dc.MoveTo(s*0.5, s*0.92)
	dc.CubicTo(s*0.05, s*0.6, s*0.0, s*0.18, s*0.28, s*0.12)
	dc.CubicTo(s*0.4, s*0.1, s*0.47, s*0.18, s*0.5, s*0.28)
	dc.CubicTo(s*0.53, s*0.18, s*0.6, s*0.1, s*0.72, s*0.12)
	dc.CubicTo(s*1.0, s*0.18, s*0.95, s*0.6, s*0.5, s*0.92)
	dc.ClosePath()
	dc.SetColor(color.White)
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

// drawHeart draws the sprite centred at (x, y) with the given pixel size.
func drawHeart(dst, sprite *ebiten.Image, x, y, size, rotation float64, tint color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-heartSpriteSize/2, -heartSpriteSize/2)
	op.GeoM.Scale(size/heartSpriteSize, size/heartSpriteSize)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, op)
}

func (g *Game) drawHearts(screen *ebiten.Image) {
	t := g.time - g.startedAt
	w, h := float64(g.width), float64(g.height)
	for _, hr := range g.hearts {
		f := hr.frameAt(t)
		x := hr.left * w
		y := hr.top*h - f.rise*h
		drawHeart(screen, g.heartSprite, x, y, hr.size, f.rotation, hr.tint, f.opacity*config.HeartLayerOpacity)
	}
}
