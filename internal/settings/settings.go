// Package settings persists the small key-value settings document that
// lives next to the database. It is unrelated to workout state.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmartel/grind/internal/constants"
)

const fileName = "settings.json"

// Settings is the persisted application settings document.
type Settings struct {
	TimerSound string `json:"timer_sound"` // path to the timer sound file
}

// Store reads and writes the settings document in the config directory.
type Store struct {
	dir string
}

func NewStore(configDir string) *Store {
	return &Store{dir: configDir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the settings file, returning defaults when it is missing or
// unreadable. A corrupt settings file is not fatal.
func (s *Store) Load() Settings {
	defaults := Settings{TimerSound: constants.DefaultTimerSound}

	data, err := os.ReadFile(s.path())
	if err != nil {
		return defaults
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return defaults
	}
	if settings.TimerSound == "" {
		settings.TimerSound = defaults.TimerSound
	}
	return settings
}

// Save writes the settings atomically: a temp file in the same directory
// is renamed over the target so a crash never leaves a torn document.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path())
}
