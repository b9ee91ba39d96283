// Package game hosts the greeting in an ebiten window: the landing button,
// the bloom animation, the background hearts and the message that fades in
// once the flower has opened.
package game

import (
	"fmt"
	"image"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/blossom-greeting/internal/audio"
	"github.com/iburimskiy/blossom-greeting/internal/bloom"
	"github.com/iburimskiy/blossom-greeting/internal/canvas"
	"github.com/iburimskiy/blossom-greeting/internal/config"
	"github.com/iburimskiy/blossom-greeting/internal/settings"
)

// Options are the collaborators a Game is built from. Player and Settings
// may be nil.
type Options struct {
	Config   *config.Greeting
	Player   *audio.Player
	Settings *settings.Store
}

const volumeStep = 0.1

type Game struct {
	cfg    *config.Greeting
	colors config.Colors
	fonts  *fonts

	// bloom
	driver     *bloom.Driver
	scheduler  *bloom.FrameScheduler
	surface    *canvas.Surface
	viewport   *viewport
	bloomLayer *ebiten.Image
	bloomDirty bool

	// audio
	player     *audio.Player
	prefs      *settings.Store
	audioLevel float64

	// scenery
	glow         *ebiten.Image
	heartSprite  *ebiten.Image
	hearts       []heart
	message      []messageBlock
	messageWidth int

	// input
	buttonHovered bool
	buttonPressed bool
	muteHovered   bool

	// state
	width, height int
	time          float64
	startedAt     float64
	completedAt   float64
	started       bool
	bloomComplete bool
	lastErr       error
}

func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	colors, err := cfg.Palette.Colors()
	if err != nil {
		return nil, err
	}
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:         cfg,
		colors:      colors,
		fonts:       f,
		scheduler:   bloom.NewFrameScheduler(),
		surface:     canvas.NewSurface(0, 0),
		viewport:    newViewport(cfg.Window.Width, cfg.Window.Height),
		player:      opts.Player,
		prefs:       opts.Settings,
		heartSprite: newHeartSprite(),
		hearts:      newHearts(cfg.Hearts, rng, colors.Bloom.RoseSoft, colors.Bloom.RosePrimary),
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
	}
	g.driver = bloom.NewDriver(g.surface, g.viewport, g.scheduler,
		bloom.WithRand(rng),
		bloom.WithPalette(colors.Bloom),
		bloom.WithOnComplete(g.onBloomComplete),
	)
	return g, nil
}

func (g *Game) Update() error {
	g.time += 1.0 / float64(ebiten.TPS())

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	clicked := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if !g.started {
		bx, by, bw, bh := g.buttonRect()
		g.buttonHovered = pointIn(x, y, bx, by, bw, bh)
		if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.buttonPressed = true
		}
		if clicked {
			if g.buttonPressed && g.buttonHovered {
				g.start()
			}
			g.buttonPressed = false
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.start()
		}
	} else {
		cx, cy := g.muteCenter()
		g.muteHovered = math.Hypot(x-cx, y-cy) <= config.MuteButtonRadius
		if (g.muteHovered && clicked) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.toggleMute()
		}
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
			g.changeVolume(volumeStep)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
			g.changeVolume(-volumeStep)
		}
		if g.bloomComplete && inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.replay()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.scheduler.Fire() {
		g.bloomDirty = true
	}
	if g.player != nil {
		g.audioLevel = g.player.Level()
	}
	return nil
}

// start raises the start signal: the bloom begins and the music plays.
func (g *Game) start() {
	if g.started {
		return
	}
	g.started = true
	g.startedAt = g.time
	log.Printf("[Game] Greeting opened")

	g.driver.SetStarted(true)
	g.bloomDirty = true

	if g.player == nil || !g.player.Loaded() {
		return
	}
	if g.prefs != nil {
		prefs := g.prefs.Preferences()
		g.player.SetMuted(prefs.Muted)
		if g.prefs.Saved() {
			g.player.SetGain(prefs.Volume)
		}
	}
	if err := g.player.Play(); err != nil {
		// The greeting goes on without music.
		log.Printf("[Game] Warning: audio playback failed: %v", err)
		g.lastErr = err
	}
}

func (g *Game) onBloomComplete() {
	g.bloomComplete = true
	g.completedAt = g.time
	log.Printf("[Game] Bloom complete")
}

func (g *Game) replay() {
	g.bloomComplete = false
	g.message = nil
	g.driver.Restart()
	g.bloomDirty = true
}

func (g *Game) muted() bool {
	if g.player != nil {
		return g.player.Muted()
	}
	return g.prefs != nil && g.prefs.Preferences().Muted
}

func (g *Game) toggleMute() {
	muted := !g.muted()
	if g.player != nil {
		g.player.SetMuted(muted)
	}
	if g.prefs == nil {
		return
	}
	g.prefs.SetMuted(muted)
	if g.player != nil {
		g.prefs.SetVolume(g.player.Gain())
	}
	if err := g.prefs.Save(); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

// changeVolume nudges the music volume and remembers it.
func (g *Game) changeVolume(delta float64) {
	if g.player == nil {
		return
	}
	g.player.SetGain(g.player.Gain() + delta)
	if g.prefs == nil {
		return
	}
	g.prefs.SetVolume(g.player.Gain())
	if err := g.prefs.Save(); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if !g.started {
		g.drawStartButton(screen)
		g.drawStatus(screen)
		return
	}

	g.drawHearts(screen)
	g.drawBloom(screen)
	if g.bloomComplete {
		g.drawMessage(screen)
	}
	g.drawMuteButton(screen)
	g.drawStatus(screen)
}

// drawBloom uploads the canvas when a tick redrew it and draws it full
// screen. After the run halts the last frame stays up.
func (g *Game) drawBloom(screen *ebiten.Image) {
	img, ok := g.surface.Image().(*image.RGBA)
	if !ok || img == nil {
		return
	}
	b := img.Bounds()
	if g.bloomLayer == nil || g.bloomLayer.Bounds().Size() != b.Size() {
		if g.bloomLayer != nil {
			g.bloomLayer.Deallocate()
		}
		g.bloomLayer = ebiten.NewImage(b.Dx(), b.Dy())
		g.bloomDirty = true
	}
	if g.bloomDirty {
		g.bloomLayer.WritePixels(img.Pix)
		g.bloomDirty = false
	}
	screen.DrawImage(g.bloomLayer, nil)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	if g.lastErr == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Error: %v", g.lastErr), 12, 12)
}

// Layout follows the window so the bloom can size itself responsively.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
		g.viewport.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// Close stops the bloom and the music.
func (g *Game) Close() {
	g.driver.Stop()
	if g.player != nil {
		g.player.Close()
	}
}
