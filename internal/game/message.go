package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/blossom-greeting/internal/config"
)

// fonts holds the faces the greeting text is set in.
type fonts struct {
	regular *text.GoTextFaceSource
	italic  *text.GoTextFaceSource
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	italic, err := text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF))
	if err != nil {
		return nil, fmt.Errorf("load italic font: %w", err)
	}
	return &fonts{regular: regular, italic: italic}, nil
}

func (f *fonts) face(italic bool, size float64) *text.GoTextFace {
	src := f.regular
	if italic {
		src = f.italic
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// wrapText breaks s into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func wrapText(s string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if text.Advance(candidate, face) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// messageReveal is how far the message has faded in, elapsed seconds after
// the bloom completed: nothing for the first MessageDelay seconds, then a
// linear fade over MessageFadeIn seconds.
func messageReveal(elapsed float64) float64 {
	return clamp01((elapsed - config.MessageDelay) / config.MessageFadeIn)
}

// messageSlide is the downward offset of the message while it fades in.
func messageSlide(reveal float64) float64 {
	return (1 - easeOutCubic(reveal)) * config.MessageSlide
}

// messageBlock is one typeset paragraph of the message.
type messageBlock struct {
	lines   []string
	face    *text.GoTextFace
	color   color.Color
	pulse   bool
	divider bool
	gapTop  float64
}

func (b messageBlock) lineHeight() float64 {
	if b.face == nil {
		return 0
	}
	return b.face.Size * 1.35
}

func (b messageBlock) height() float64 {
	if b.divider {
		return 1
	}
	return float64(len(b.lines)) * b.lineHeight()
}

// layoutMessage typesets the greeting for a screen of the given width.
func (g *Game) layoutMessage(width int) []messageBlock {
	maxWidth := math.Min(float64(width)-64, config.MessageMaxWidth)
	wide := width >= 768
	size := func(small, large float64) float64 {
		if wide {
			return large
		}
		return small
	}

	msg := g.cfg.Message
	titleFace := g.fonts.face(false, size(40, 64))
	subFace := g.fonts.face(true, size(22, 32))
	noteFace := g.fonts.face(false, size(18, 24))
	sigFace := g.fonts.face(true, size(32, 40))

	return []messageBlock{
		{lines: wrapText(msg.Title, titleFace, maxWidth), face: titleFace, color: g.colors.Bloom.RosePrimary},
		{lines: wrapText("“"+msg.Subtext+"”", subFace, maxWidth), face: subFace, color: g.colors.Text, gapTop: 32},
		{divider: true, gapTop: 32},
		{lines: wrapText(msg.Note, noteFace, maxWidth), face: noteFace, color: g.colors.Text, gapTop: 32},
		{lines: wrapText(msg.Signature, sigFace, maxWidth), face: sigFace, color: g.colors.Bloom.RosePrimary, pulse: true, gapTop: 48},
	}
}

func (g *Game) drawMessage(screen *ebiten.Image) {
	reveal := messageReveal(g.time - g.completedAt)
	if reveal <= 0 {
		return
	}
	if g.messageWidth != g.width || g.message == nil {
		g.message = g.layoutMessage(g.width)
		g.messageWidth = g.width
	}

	total := 0.0
	for _, b := range g.message {
		total += b.gapTop + b.height()
	}
	cx := float64(g.width) / 2
	y := math.Max(32, (float64(g.height)-total)/2+float64(g.height)*config.MessageTopPercent/2)
	y += messageSlide(reveal)

	for _, b := range g.message {
		y += b.gapTop
		if b.divider {
			vector.StrokeLine(screen, float32(cx-96), float32(y), float32(cx+96), float32(y), 1,
				withAlpha(g.colors.Bloom.RosePrimary, 0.6*reveal), true)
			y += b.height()
			continue
		}
		alpha := reveal
		if b.pulse {
			alpha *= 0.75 + 0.25*math.Sin(g.time*math.Pi)
		}
		for _, line := range b.lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(cx, y)
			op.ColorScale.ScaleWithColor(b.color)
			op.ColorScale.ScaleAlpha(float32(alpha))
			op.PrimaryAlign = text.AlignCenter
			text.Draw(screen, line, b.face, op)
			y += b.lineHeight()
		}
	}
}

func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * clamp01(a))
	return n
}
