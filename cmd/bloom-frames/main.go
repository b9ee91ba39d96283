// Package main renders the bloom animation headlessly and writes its frames
// as PNG files, for previews and for checking the animation without a
// window.
//
// Usage:
//
//	go run ./cmd/bloom-frames [flags]
//
// Flags:
//
//	-out <dir>       Output directory (default "frames")
//	-width <px>      Surface width (default 1024)
//	-height <px>     Surface height (default 768)
//	-every <n>       Write every n-th frame (default 10; the last frame is always written)
//	-seed <n>        Random seed for sparkles (default 1)
//	-config <file>   Greeting YAML whose palette is used
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/iburimskiy/blossom-greeting/internal/bloom"
	"github.com/iburimskiy/blossom-greeting/internal/canvas"
	"github.com/iburimskiy/blossom-greeting/internal/config"
)

var (
	outFlag    = flag.String("out", "frames", "Output directory")
	widthFlag  = flag.Int("width", config.WindowWidth, "Surface width in pixels")
	heightFlag = flag.Int("height", config.WindowHeight, "Surface height in pixels")
	everyFlag  = flag.Int("every", 10, "Write every n-th frame")
	seedFlag   = flag.Int64("seed", 1, "Random seed for sparkles")
	configFlag = flag.String("config", "", "Greeting YAML file for the palette")
)

// fixedViewport never resizes.
type fixedViewport struct{ w, h int }

func (v fixedViewport) Size() (int, int)               { return v.w, v.h }
func (v fixedViewport) OnResize(func(w, h int)) func() { return func() {} }

func main() {
	flag.Parse()
	if *everyFlag < 1 {
		log.Fatalf("[Frames] -every must be >= 1, got %d", *everyFlag)
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("[Frames] %v", err)
		}
		cfg = loaded
	}
	colors, err := cfg.Palette.Colors()
	if err != nil {
		log.Fatalf("[Frames] %v", err)
	}

	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		log.Fatalf("[Frames] %v", err)
	}

	n, err := render(*outFlag, *widthFlag, *heightFlag, *everyFlag, *seedFlag, colors.Bloom)
	if err != nil {
		log.Fatalf("[Frames] %v", err)
	}
	log.Printf("[Frames] Wrote %d frames to %s", n, *outFlag)
}

// render runs one bloom to completion and writes every n-th frame plus the
// final one. It returns the number of files written.
func render(dir string, w, h, every int, seed int64, palette bloom.Palette) (int, error) {
	surface := canvas.NewSurface(w, h)
	sched := bloom.NewFrameScheduler()
	driver := bloom.NewDriver(surface, fixedViewport{w, h}, sched,
		bloom.WithRand(rand.New(rand.NewSource(seed))),
		bloom.WithPalette(palette),
		bloom.WithOnComplete(func() { log.Printf("[Frames] Bloom complete") }),
	)

	driver.Start()
	if !driver.Running() {
		return 0, fmt.Errorf("bloom did not start on a %dx%d surface", w, h)
	}

	written := 0
	frame := 1
	save := func() error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame))
		if err := surface.SavePNG(path); err != nil {
			return err
		}
		written++
		return nil
	}

	for {
		if frame%every == 0 {
			if err := save(); err != nil {
				return written, err
			}
		}
		if !sched.Fire() {
			break
		}
		frame++
	}
	if frame%every != 0 {
		if err := save(); err != nil {
			return written, err
		}
	}
	return written, nil
}
