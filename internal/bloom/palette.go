package bloom

import "image/color"

// Palette holds the colors the bloom is drawn with.
type Palette struct {
	Stem          color.Color
	RosePrimary   color.Color
	RoseSecondary color.Color
	RoseSoft      color.Color
	Center        color.Color
	PetalOutline  color.Color
	Sparkle       color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Stem:          color.RGBA{R: 0x16, G: 0x65, B: 0x34, A: 0xff},
		RosePrimary:   color.RGBA{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff},
		RoseSecondary: color.RGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff},
		RoseSoft:      color.RGBA{R: 0xfb, G: 0x71, B: 0x85, A: 0xff},
		Center:        color.RGBA{R: 0xfd, G: 0xe0, B: 0x47, A: 0xff},
		PetalOutline:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 26},
		Sparkle:       color.White,
	}
}

// withAlpha scales the opacity of c by a in [0,1].
func withAlpha(c color.Color, a float64) color.Color {
	a = clamp01(a)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}
