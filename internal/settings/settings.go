// Package settings persists per-user preferences (audio, frontend, pilot
// name) through gdata so they survive between runs.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Frontend names accepted by SetFrontend.
const (
	FrontendTUI    = "tui"
	FrontendWindow = "window"
)

const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// Settings are the stored preferences.
type Settings struct {
	Muted    bool    `yaml:"muted"`
	Volume   float64 `yaml:"volume"` // 0.0 ~ 1.0
	Frontend string  `yaml:"frontend"`
	Pilot    string  `yaml:"pilot"` // Empty means the OS user name
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		Volume:   0.8,
		Frontend: FrontendTUI,
	}
}

// Manager loads and saves Settings. A Manager without a gdata backend keeps
// settings in memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open creates a gdata backend for appName and loads stored settings.
// If the backend cannot be created the manager runs in memory-only mode.
func Open(appName string, logger *log.Logger) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings storage unavailable, using defaults", "err", err)
		store = nil
	}
	return NewManager(store, logger)
}

// NewManager wraps an existing gdata manager, which may be nil.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{
		store:    store,
		settings: Defaults(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Load reads stored settings. Missing settings leave the defaults in place.
func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	if !validFrontend(loaded.Frontend) {
		loaded.Frontend = FrontendTUI
	}
	m.settings = loaded
	m.logger.Debug("settings loaded", "frontend", loaded.Frontend, "muted", loaded.Muted)
	return nil
}

// Save writes the current settings. It is a no-op in memory-only mode.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Persistent reports whether settings are backed by storage.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

func (m *Manager) Muted() bool      { return m.settings.Muted }
func (m *Manager) Volume() float64  { return m.settings.Volume }
func (m *Manager) Frontend() string { return m.settings.Frontend }
func (m *Manager) Pilot() string    { return m.settings.Pilot }

// SetMuted changes the mute flag in memory; call Save to persist.
func (m *Manager) SetMuted(muted bool) {
	m.settings.Muted = muted
}

// SetVolume stores volume clamped to 0..1.
func (m *Manager) SetVolume(v float64) {
	m.settings.Volume = clampVolume(v)
}

// SetFrontend selects the default frontend.
func (m *Manager) SetFrontend(name string) error {
	if !validFrontend(name) {
		return fmt.Errorf("settings: unknown frontend %q (want %q or %q)", name, FrontendTUI, FrontendWindow)
	}
	m.settings.Frontend = name
	return nil
}

// SetPilot sets the name recorded on replays.
func (m *Manager) SetPilot(name string) {
	m.settings.Pilot = name
}

func validFrontend(name string) bool {
	return name == FrontendTUI || name == FrontendWindow
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
