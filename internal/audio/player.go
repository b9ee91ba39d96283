// Package audio plays the ambient track behind the greeting.
package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/blossom-greeting/internal/config"
)

// ErrUnsupportedFormat is returned by Open for files that are not wav, mp3
// or flac.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// levelWindow is how many recent samples the loudness is measured over.
const levelWindow = 2048

// Player owns one decoded track and its playback chain:
// source -> loop -> volume -> tap -> ctrl.
type Player struct {
	gain float64
	loop bool

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	volume      *effects.Volume
	ctrl        *beep.Ctrl
	tap         *levelTap

	muted    bool
	playing  bool
	initDone bool
	level    float64
}

// NewPlayer creates a player with linear gain in [0,1].
func NewPlayer(gain float64, loop bool) *Player {
	return &Player{gain: gain, loop: loop}
}

// Open decodes the file at path, replacing any previously opened track.
func (p *Player) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	p.Close()
	p.currentFile = f
	p.streamer = streamer
	p.format = format
	log.Printf("[Audio] Loaded %s (%v)", filepath.Base(path), p.Duration().Round(time.Second))
	return nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Duration is the length of one pass through the track.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Loaded reports whether a track is ready to play.
func (p *Player) Loaded() bool {
	return p.streamer != nil
}

// Play starts the opened track. Calling it again while playing does nothing.
func (p *Player) Play() error {
	if p.streamer == nil {
		return errors.New("no track loaded")
	}
	if p.playing {
		return nil
	}

	if !p.initDone {
		bufferSize := p.format.SampleRate.N(time.Second / 20)
		if err := speaker.Init(p.format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	}

	var src beep.Streamer = p.streamer
	if p.loop {
		src = beep.Loop(-1, p.streamer)
	}
	vol, silent := volumeFor(p.gain)
	p.volume = &effects.Volume{
		Streamer: src,
		Base:     2,
		Volume:   vol,
		Silent:   silent || p.muted,
	}
	p.tap = newLevelTap(p.volume, config.VisualRingSize)
	p.ctrl = &beep.Ctrl{Streamer: p.tap}

	speaker.Play(p.ctrl)
	p.playing = true
	return nil
}

// volumeFor converts a linear gain into the base-2 exponent effects.Volume
// expects. A gain of zero or less is silence.
func volumeFor(gain float64) (float64, bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(math.Min(gain, 1)), false
}

func (p *Player) Muted() bool {
	return p.muted
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if p.volume == nil {
		return
	}
	_, silent := volumeFor(p.gain)
	speaker.Lock()
	p.volume.Silent = silent || muted
	speaker.Unlock()
}

// Gain is the linear volume in [0,1].
func (p *Player) Gain() float64 {
	return p.gain
}

// SetGain changes the linear volume, taking effect immediately when playing.
func (p *Player) SetGain(gain float64) {
	p.gain = math.Max(0, math.Min(gain, 1))
	if p.volume == nil {
		return
	}
	vol, silent := volumeFor(p.gain)
	speaker.Lock()
	p.volume.Volume = vol
	p.volume.Silent = silent || p.muted
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	p.SetMuted(!p.muted)
	return p.muted
}

// Level returns the smoothed loudness of recently played audio in [0,1].
// It is meant to be called once per frame.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return 0
	}
	// More aggressive compression for visual effect
	mag := math.Pow(p.tap.rms(levelWindow), 0.3)
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
	return math.Min(p.level, 1)
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	if p.playing {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		p.playing = false
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.volume = nil
	p.ctrl = nil
	p.tap = nil
	p.level = 0
}
