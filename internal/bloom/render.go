package bloom

import "math"

const (
	petalCount  = 8
	petalLayers = 3
)

// Scene is everything one frame of the bloom depends on.
type Scene struct {
	Width, Height float64
	Scale         float64
	Progress      float64
	Palette       Palette
}

// NewScene derives the responsive scale from the surface size.
func NewScene(w, h int, progress float64, palette Palette) Scene {
	fw, fh := float64(w), float64(h)
	return Scene{
		Width:    fw,
		Height:   fh,
		Scale:    Scale(fw, fh),
		Progress: progress,
		Palette:  palette,
	}
}

// DrawScene clears the canvas and draws stem, petals and particles in order.
func DrawScene(c Canvas, s Scene, particles []Particle) {
	c.Clear()
	DrawStem(c, s)
	DrawPetals(c, s)
	DrawParticles(c, particles)
}

// DrawStem draws the curved stem from the bottom center and, past
// LeafStart, the two leaves.
func DrawStem(c Canvas, s Scene) {
	centerX := s.Width / 2
	startY := s.Height
	targetY := TargetY(s.Width, s.Height)
	rise := startY - targetY
	currentY := startY - rise*StemGrowth(s.Progress)

	c.BeginPath()
	c.MoveTo(centerX, startY)
	c.QuadraticTo(centerX-20*s.Scale, startY-rise/2, centerX, currentY)
	c.SetStrokeColor(s.Palette.Stem)
	c.SetLineWidth(6 * s.Scale)
	c.SetRoundCap(true)
	c.Stroke()

	leaf := LeafGrowth(s.Progress)
	if leaf <= 0 {
		return
	}
	rx := 20 * leaf * s.Scale
	ry := 8 * leaf * s.Scale
	c.SetFillColor(s.Palette.Stem)

	c.BeginPath()
	c.Ellipse(centerX-12*s.Scale, startY-100*s.Scale, rx, ry, math.Pi/4)
	c.Fill()

	c.BeginPath()
	c.Ellipse(centerX+12*s.Scale, startY-150*s.Scale, rx, ry, -math.Pi/4)
	c.Fill()
}

// DrawPetals draws three layers of eight petals around the stem tip and the
// flower center once the growth is nearly complete.
func DrawPetals(c Canvas, s Scene) {
	growth := FlowerGrowth(s.Progress)
	if growth <= 0 {
		return
	}
	centerX := s.Width / 2
	centerY := TargetY(s.Width, s.Height)

	for layer := 0; layer < petalLayers; layer++ {
		layerScale := 1 - float64(layer)*0.25
		length := 100 * growth * layerScale * s.Scale
		width := 45 * growth * layerScale * s.Scale

		inner := s.Palette.RosePrimary
		if layer == 0 {
			inner = s.Palette.RoseSecondary
		}
		gradient := RadialGradient{
			X0: 0, Y0: -length / 2, R0: 0,
			X1: 0, Y1: -length / 2, R1: length,
			Stops: []ColorStop{
				{Offset: 0, Color: inner},
				{Offset: 1, Color: s.Palette.RoseSoft},
			},
		}

		c.Save()
		c.Translate(centerX, centerY)
		// gentle sway
		c.Rotate(float64(layer)*math.Pi/4 + s.Progress*0.2)
		for i := 0; i < petalCount; i++ {
			c.BeginPath()
			c.Rotate(2 * math.Pi / petalCount)
			c.MoveTo(0, 0)
			c.CubicTo(-width, -length/2, -width/2, -length, 0, -length)
			c.CubicTo(width/2, -length, width, -length/2, 0, 0)

			c.SetFillGradient(gradient)
			c.Fill()

			c.SetStrokeColor(s.Palette.PetalOutline)
			c.SetLineWidth(1)
			c.Stroke()
		}
		c.Restore()
	}

	if r := CenterRadius(growth, s.Scale); r > 0 {
		c.BeginPath()
		c.Circle(centerX, centerY, r)
		c.SetFillColor(s.Palette.Center)
		c.Fill()
	}
}

// DrawParticles draws each live particle with opacity equal to its life.
func DrawParticles(c Canvas, particles []Particle) {
	for _, p := range particles {
		if p.Life <= 0 {
			continue
		}
		c.BeginPath()
		c.Circle(p.X, p.Y, p.Size)
		c.SetFillColor(withAlpha(p.Color, p.Life))
		c.Fill()
	}
}
