package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	g := Default()
	if err := g.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if g.Audio.Volume != 0.4 {
		t.Errorf("Audio.Volume: got %v, want 0.4", g.Audio.Volume)
	}
	if g.Hearts != 15 {
		t.Errorf("Hearts: got %d, want 15", g.Hearts)
	}
	if !g.Audio.Loop {
		t.Error("Audio.Loop: got false, want true")
	}
}

func TestParseLayersOverDefaults(t *testing.T) {
	data := []byte(`
audio:
  path: music/piano.mp3
message:
  title: Happy Anniversary!
palette:
  roseSoft: "#ffc0cb"
`)

	g, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if g.Audio.Path != "music/piano.mp3" {
		t.Errorf("Audio.Path: got %q", g.Audio.Path)
	}
	if g.Audio.Volume != 0.4 {
		t.Errorf("Audio.Volume lost its default: got %v", g.Audio.Volume)
	}
	if g.Message.Title != "Happy Anniversary!" {
		t.Errorf("Message.Title: got %q", g.Message.Title)
	}
	if g.Message.Signature != Default().Message.Signature {
		t.Errorf("Message.Signature lost its default: got %q", g.Message.Signature)
	}

	colors, err := g.Palette.Colors()
	if err != nil {
		t.Fatalf("Colors() error: %v", err)
	}
	want := color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}
	if colors.Bloom.RoseSoft != want {
		t.Errorf("RoseSoft: got %v, want %v", colors.Bloom.RoseSoft, want)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"volume too loud", "audio:\n  volume: 1.5\n", "audio.volume"},
		{"negative hearts", "hearts: -1\n", "hearts"},
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"bad color", "palette:\n  stem: green\n", "palette.stem"},
		{"malformed yaml", "audio: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.yaml")
	if err := os.WriteFile(path, []byte("hearts: 3\nseed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if g.Hearts != 3 || g.Seed != 7 {
		t.Errorf("got hearts=%d seed=%d, want 3 and 7", g.Hearts, g.Seed)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestColorsDefaultsMatchBloomPalette(t *testing.T) {
	colors, err := Default().Palette.Colors()
	if err != nil {
		t.Fatalf("Colors() error: %v", err)
	}
	if colors.Bloom.RosePrimary != (color.RGBA{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff}) {
		t.Errorf("RosePrimary: got %v", colors.Bloom.RosePrimary)
	}
	if colors.Bloom.Sparkle == nil || colors.Bloom.PetalOutline == nil {
		t.Error("colors without a config key must keep their defaults")
	}
}
