// Package config holds the viewer's static settings (YAML) and persisted
// preferences (JSON).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"solids-viewer/internal/catalog"
)

// SettingsPath is the settings file, relative to the working directory.
const SettingsPath = "config/viewer.yaml"

// Settings is the static configuration surface: canvas and camera layout,
// keyboard and animation increments, the default model transform, and the
// fade-in timing. Loaded once at startup; never written back.
type Settings struct {
	CanvasWidth  int32 `yaml:"canvas_width"`
	CanvasHeight int32 `yaml:"canvas_height"`
	SidebarWidth int32 `yaml:"sidebar_width"`

	CameraFOV      float32      `yaml:"camera_fov"`
	CameraPosition catalog.Vec3 `yaml:"camera_position"`

	RotationStep    float32 `yaml:"rotation_step"`
	ScaleStep       float32 `yaml:"scale_step"`
	TranslationStep float32 `yaml:"translation_step"`
	// AnimationStep is the per-frame spin applied to animated shapes whose
	// descriptor lists no spins of its own.
	AnimationStep float32 `yaml:"animation_step"`
	MinScale      float32 `yaml:"min_scale"`

	DefaultRotation catalog.Vec3 `yaml:"default_rotation"`
	DefaultScale    catalog.Vec3 `yaml:"default_scale"`
	DefaultPosition catalog.Vec3 `yaml:"default_position"`

	FadeIntervalMS int     `yaml:"fade_interval_ms"`
	FadeStep       float32 `yaml:"fade_step"`

	IDMin int `yaml:"id_min"`
	IDMax int `yaml:"id_max"`

	// ScenePath optionally points at a YAML catalog overlay.
	ScenePath string `yaml:"scene"`
}

// Default returns the shipped settings.
func Default() Settings {
	return Settings{
		CanvasWidth:     960,
		CanvasHeight:    640,
		SidebarWidth:    260,
		CameraFOV:       45,
		CameraPosition:  catalog.Vec3{X: 6, Y: 4.5, Z: 9},
		RotationStep:    0.1,
		ScaleStep:       0.05,
		TranslationStep: 0.2,
		AnimationStep:   0.01,
		MinScale:        0.1,
		DefaultScale:    catalog.Vec3{X: 1, Y: 1, Z: 1},
		FadeIntervalMS:  25,
		FadeStep:        0.05,
		IDMin:           0,
		IDMax:           50,
	}
}

// Load reads settings from path. A missing or invalid file yields Default()
// and no error; a file that parses overrides only the fields it sets.
func Load(path string) Settings {
	out := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return out
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Default()
	}
	return out
}
