package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/blossom-greeting/internal/bloom"
)

// Greeting is the user-editable description of the greeting. Fields left
// out of the YAML file keep their defaults.
type Greeting struct {
	Window  WindowConfig  `yaml:"window"`
	Audio   AudioConfig   `yaml:"audio"`
	Message MessageConfig `yaml:"message"`
	Palette PaletteConfig `yaml:"palette"`
	Hearts  int           `yaml:"hearts"` // floating hearts behind the message
	Seed    int64         `yaml:"seed"`   // 0 picks a time based seed
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type AudioConfig struct {
	Path   string  `yaml:"path"`   // wav, mp3 or flac; empty plays nothing
	Volume float64 `yaml:"volume"` // linear gain 0.0 ~ 1.0
	Loop   bool    `yaml:"loop"`
}

type MessageConfig struct {
	StartLabel string `yaml:"startLabel"`
	Invitation string `yaml:"invitation"`
	Title      string `yaml:"title"`
	Subtext    string `yaml:"subtext"`
	Note       string `yaml:"note"`
	Signature  string `yaml:"signature"`
}

// PaletteConfig holds hex colors such as "#e11d48".
type PaletteConfig struct {
	Background    string `yaml:"background"`
	Text          string `yaml:"text"`
	Stem          string `yaml:"stem"`
	RosePrimary   string `yaml:"rosePrimary"`
	RoseSecondary string `yaml:"roseSecondary"`
	RoseSoft      string `yaml:"roseSoft"`
	Center        string `yaml:"center"`
}

func Default() *Greeting {
	return &Greeting{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Audio: AudioConfig{
			Volume: 0.4,
			Loop:   true,
		},
		Message: MessageConfig{
			StartLabel: "Click to Open",
			Invitation: "A melody of my love for Marfie",
			Title:      "Happy Valentine's Day, Marfie!",
			Subtext:    "Through sunshine and storms, my love for you only grows stronger.",
			Note: "Our love isn't just about the easy, sunny days; it's about holding hands " +
				"through the hard ones and coming out stronger on the other side. " +
				"I am so proud of everything we have overcome together.",
			Signature: "Love Always! Ash",
		},
		Palette: PaletteConfig{
			Background:    "#020617",
			Text:          "#fecdd3",
			Stem:          "#166534",
			RosePrimary:   "#e11d48",
			RoseSecondary: "#f43f5e",
			RoseSoft:      "#fb7185",
			Center:        "#fde047",
		},
		Hearts: 15,
	}
}

// Load reads a YAML greeting from filePath on top of the defaults.
func Load(filePath string) (*Greeting, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read greeting file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Greeting, error) {
	g := Default()
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("failed to parse greeting YAML: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid greeting config: %w", err)
	}
	return g, nil
}

func (g *Greeting) Validate() error {
	if g.Window.Width <= 0 || g.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", g.Window.Width, g.Window.Height)
	}
	if g.Audio.Volume < 0 || g.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %v", g.Audio.Volume)
	}
	if g.Hearts < 0 {
		return fmt.Errorf("hearts must be >= 0, got %d", g.Hearts)
	}
	if _, err := g.Palette.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors is the parsed form of PaletteConfig.
type Colors struct {
	Background color.Color
	Text       color.Color
	Bloom      bloom.Palette
}

func (p PaletteConfig) Colors() (Colors, error) {
	parse := func(name, hex string) (color.Color, error) {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", name, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	var (
		out  Colors
		errs []error
	)
	set := func(dst *color.Color, name, hex string) {
		c, err := parse(name, hex)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = c
	}

	out.Bloom = bloom.DefaultPalette()
	set(&out.Background, "background", p.Background)
	set(&out.Text, "text", p.Text)
	set(&out.Bloom.Stem, "stem", p.Stem)
	set(&out.Bloom.RosePrimary, "rosePrimary", p.RosePrimary)
	set(&out.Bloom.RoseSecondary, "roseSecondary", p.RoseSecondary)
	set(&out.Bloom.RoseSoft, "roseSoft", p.RoseSoft)
	set(&out.Bloom.Center, "center", p.Center)
	if err := errors.Join(errs...); err != nil {
		return Colors{}, err
	}
	return out, nil
}
