package game

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/blossom-greeting/internal/config"
)

// newGlow renders the rose radial glow behind everything at full opacity;
// Draw scales it down with the audio level.
func newGlow(w, h int, rose color.Color) *ebiten.Image {
	dc := gg.NewContext(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	// circle at center, fading out at 80% of the farthest corner
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, 0.8*math.Hypot(cx, cy))
	grad.AddColorStop(0, rose)
	grad.AddColorStop(1, color.Transparent)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(g.colors.Background)

	if g.glow == nil || g.glow.Bounds().Dx() != g.width || g.glow.Bounds().Dy() != g.height {
		if g.glow != nil {
			g.glow.Deallocate()
		}
		g.glow = newGlow(g.width, g.height, g.colors.Bloom.RosePrimary)
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(config.GlowBaseOpacity + g.audioLevel*config.GlowAudioBoost))
	screen.DrawImage(g.glow, op)
}

// buttonRect is the landing button, centred slightly above the middle.
func (g *Game) buttonRect() (x, y, w, h float64) {
	w = math.Min(config.ButtonWidth, float64(g.width)-32)
	h = config.ButtonHeight
	x = (float64(g.width) - w) / 2
	y = float64(g.height)/2 - h
	return x, y, w, h
}

func (g *Game) drawStartButton(screen *ebiten.Image) {
	x, y, w, h := g.buttonRect()
	rose := g.colors.Bloom.RosePrimary

	// pulsing halo
	pulse := 0.2 + 0.15*math.Sin(g.time*2)
	if g.buttonHovered {
		pulse = 0.6
	}
	vector.DrawFilledRect(screen, float32(x-8), float32(y-8), float32(w+16), float32(h+16), withAlpha(rose, pulse*0.5), true)

	var bg color.Color
	switch {
	case g.buttonPressed:
		bg = color.RGBA{R: 30, G: 41, B: 59, A: 240}
	case g.buttonHovered:
		bg = color.RGBA{R: 24, G: 32, B: 50, A: 230}
	default:
		bg = color.RGBA{R: 15, G: 23, B: 42, A: 204}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.5, withAlpha(rose, 0.4), true)

	label := g.cfg.Message.StartLabel
	face := g.fonts.face(false, 28)
	labelColor := g.colors.Text
	if g.buttonHovered {
		labelColor = g.colors.Bloom.RoseSoft
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleWithColor(labelColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, label, face, op)

	// a heart on either side of the label, bouncing on hover
	lw := text.Advance(label, face)
	bounce := 0.0
	if g.buttonHovered {
		bounce = -math.Abs(math.Sin(g.time*6)) * 6
	}
	for _, side := range []float64{-1, 1} {
		hx := x + w/2 + side*(lw/2+28)
		drawHeart(screen, g.heartSprite, hx, y+h/2+bounce, 24, 0, rose, 1)
	}

	inv := &text.DrawOptions{}
	inv.GeoM.Translate(x+w/2, y+h+56)
	inv.ColorScale.ScaleWithColor(g.colors.Bloom.RoseSoft)
	inv.ColorScale.ScaleAlpha(float32(0.45 + 0.2*math.Sin(g.time*2)))
	inv.PrimaryAlign = text.AlignCenter
	text.Draw(screen, g.cfg.Message.Invitation, g.fonts.face(true, 24), inv)
}

// muteCenter is the centre of the round mute button.
func (g *Game) muteCenter() (float64, float64) {
	r := float64(config.MuteButtonRadius)
	m := float64(config.MuteButtonMargin)
	return float64(g.width) - m - r, float64(g.height) - m - r
}

func (g *Game) drawMuteButton(screen *ebiten.Image) {
	cx, cy := g.muteCenter()
	r := float32(config.MuteButtonRadius)
	rose := g.colors.Bloom.RoseSoft

	bg := color.RGBA{R: 15, G: 23, B: 42, A: 153}
	if g.muteHovered {
		bg = color.RGBA{R: 76, G: 5, B: 25, A: 180}
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, bg, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), r, 1, withAlpha(rose, 0.3), true)

	// music note: two heads joined by a beam
	icon := withAlpha(rose, 0.9)
	fx, fy := float32(cx), float32(cy)
	vector.DrawFilledCircle(screen, fx-7, fy+7, 3.5, icon, true)
	vector.DrawFilledCircle(screen, fx+7, fy+4, 3.5, icon, true)
	vector.StrokeLine(screen, fx-4, fy+7, fx-4, fy-9, 2, icon, true)
	vector.StrokeLine(screen, fx+10, fy+4, fx+10, fy-12, 2, icon, true)
	vector.StrokeLine(screen, fx-4, fy-9, fx+10, fy-12, 2, icon, true)

	if g.muted() {
		vector.StrokeLine(screen, fx-12, fy-12, fx+12, fy+12, 2, icon, true)
	}
}
