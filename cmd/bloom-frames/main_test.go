package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/blossom-greeting/internal/bloom"
)

func TestRenderWritesFrames(t *testing.T) {
	dir := t.TempDir()

	n, err := render(dir, 160, 120, 50, 1, bloom.DefaultPalette())
	if err != nil {
		t.Fatalf("render() error: %v", err)
	}
	// A run lasts at least 200 ticks, so frames 50..200 are always written.
	if n < 4 {
		t.Errorf("wrote %d frames, want at least 4", n)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != n {
		t.Errorf("directory holds %d files, render reported %d", len(entries), n)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_0200.png")); err != nil {
		t.Errorf("frame 200 missing: %v", err)
	}
}

func TestRenderRejectsEmptySurface(t *testing.T) {
	if _, err := render(t.TempDir(), 0, 0, 1, 1, bloom.DefaultPalette()); err == nil {
		t.Error("render() on a 0x0 surface succeeded")
	}
}
