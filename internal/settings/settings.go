// Package settings persists the listener's audio preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name the preferences are stored under.
const AppName = "blossom-greeting"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Preferences are the settings that survive a restart.
type Preferences struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // linear gain 0.0 ~ 1.0
}

func DefaultPreferences() Preferences {
	return Preferences{Volume: 0.4}
}

// Store loads and saves Preferences. A nil gdata manager puts it in
// memory-only mode.
type Store struct {
	manager *gdata.Manager
	prefs   Preferences
	saved   bool
}

// Open opens the platform storage for AppName. If storage is unavailable
// the returned store works in memory only.
func Open() *Store {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (preferences will not persist)", err)
		manager = nil
	}
	return NewStore(manager)
}

// NewStore creates a store and loads any saved preferences. Load failures
// are logged and leave the defaults in place.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{
		manager: manager,
		prefs:   DefaultPreferences(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load preferences: %v (using defaults)", err)
	}
	return s
}

func (s *Store) Load() error {
	s.prefs = DefaultPreferences()
	s.saved = false
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	s.prefs = loaded
	s.saved = true
	return nil
}

// Save is a no-op in memory-only mode.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	s.saved = true
	return nil
}

func (s *Store) Preferences() Preferences {
	return s.prefs
}

// SetMuted updates the mute preference in memory; call Save to persist it.
func (s *Store) SetMuted(muted bool) {
	s.prefs.Muted = muted
}

func (s *Store) SetVolume(volume float64) {
	s.prefs.Volume = clampVolume(volume)
}

// Saved reports whether the preferences came from, or were written to,
// storage. Until then the greeting file's volume applies.
func (s *Store) Saved() bool {
	return s.saved
}

// Persistent reports whether preferences are written to disk.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
