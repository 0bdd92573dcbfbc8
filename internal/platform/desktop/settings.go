package desktop

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player's desktop preferences.
type Settings struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	Volume       float64 `yaml:"volume"` // 0..1
	WindowScale  float64 `yaml:"window_scale"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.6,
		WindowScale:  1,
	}
}

// normalize clamps values a hand-edited file may have broken.
func (s *Settings) normalize() {
	s.Volume = min(max(s.Volume, 0), 1)
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "desktop"
)

// SettingsStore persists Settings through gdata. A nil manager keeps
// settings in memory only.
type SettingsStore struct {
	m        *gdata.Manager
	settings Settings
}

// OpenSettings opens the per-user data directory of appName and loads
// the saved settings. When the directory cannot be opened the store
// still works in memory and the error is returned alongside it.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("desktop: open settings: %w", err)
	}
	s := NewSettingsStore(m)
	return s, s.Load()
}

// NewSettingsStore wraps m, starting from the defaults.
func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	return &SettingsStore{m: m, settings: DefaultSettings()}
}

// Load reads saved settings, keeping the defaults when none exist.
func (s *SettingsStore) Load() error {
	if s.m == nil || !s.m.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.m.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("desktop: load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("desktop: parse settings: %w", err)
	}
	loaded.normalize()
	s.settings = loaded
	return nil
}

// Save writes the current settings.
func (s *SettingsStore) Save() error {
	if s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("desktop: encode settings: %w", err)
	}
	if err := s.m.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("desktop: save settings: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() Settings {
	return s.settings
}

// Set replaces the current settings in memory. Call Save to persist.
func (s *SettingsStore) Set(v Settings) {
	v.normalize()
	s.settings = v
}

// ToggleSound flips SoundEnabled and returns the new value.
func (s *SettingsStore) ToggleSound() bool {
	s.settings.SoundEnabled = !s.settings.SoundEnabled
	return s.settings.SoundEnabled
}
