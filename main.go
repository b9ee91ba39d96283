package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/blossom-greeting/internal/audio"
	"github.com/iburimskiy/blossom-greeting/internal/config"
	"github.com/iburimskiy/blossom-greeting/internal/game"
	"github.com/iburimskiy/blossom-greeting/internal/settings"
)

var (
	configFlag     = flag.String("config", "", "Greeting YAML file (defaults built in)")
	audioFlag      = flag.String("audio", "", "Ambient track (wav, mp3 or flac); overrides the config")
	pickAudioFlag  = flag.Bool("pick-audio", false, "Choose the ambient track with a file dialog")
	seedFlag       = flag.Int64("seed", 0, "Random seed for sparkles and hearts (0 = time based)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
	}
	if *audioFlag != "" {
		cfg.Audio.Path = *audioFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *fullscreenFlag {
		cfg.Window.Fullscreen = true
	}

	if *pickAudioFlag {
		path, err := pickAudioFile()
		if err != nil {
			log.Printf("[Main] Warning: %v", err)
		} else if path != "" {
			cfg.Audio.Path = path
		}
	}

	prefs := settings.Open()
	if !prefs.Persistent() {
		log.Printf("[Main] Mute and volume changes last for this session only")
	}
	player := audio.NewPlayer(cfg.Audio.Volume, cfg.Audio.Loop)
	if cfg.Audio.Path != "" {
		if err := player.Open(cfg.Audio.Path); err != nil {
			// The bloom still plays without music.
			log.Printf("[Main] Warning: %v", err)
		}
	}

	g, err := game.NewGame(game.Options{
		Config:   cfg,
		Player:   player,
		Settings: prefs,
	})
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("[Main] %v", err)
	}
}

// pickAudioFile asks for the ambient track. A cancelled dialog returns an
// empty path and no error.
func pickAudioFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose the Ambient Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	log.Printf("[Main] Selected track %s", filename)
	return filename, nil
}
