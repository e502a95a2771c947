package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the preferences file, relative to the working directory.
const PrefsPath = "config/viewer.json"

// Prefs holds viewer-only preferences (debug overlays, grid). Persisted across
// runs, unlike Settings which are read-only.
type Prefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	GridVisible  bool `json:"grid_visible"`
}

// DefaultPrefs returns overlays off, grid on.
func DefaultPrefs() Prefs {
	return Prefs{GridVisible: true}
}

// LoadPrefs reads preferences from PrefsPath. If the file is missing or
// invalid, it returns DefaultPrefs and does not create a file.
func LoadPrefs() Prefs {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return DefaultPrefs()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs()
	}
	return p
}

// SavePrefs writes preferences to PrefsPath, creating the config directory if
// needed.
func SavePrefs(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(PrefsPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
