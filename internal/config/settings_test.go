package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solids-viewer/internal/catalog"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, Default(), got)
}

func TestLoadInvalidFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_width: [not a number"), 0644))
	assert.Equal(t, Default(), Load(path))
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	doc := `
canvas_width: 1280
rotation_step: 0.25
camera_position: {x: 1, y: 2, z: 3}
scene: scenes/demo.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	got := Load(path)
	def := Default()

	assert.Equal(t, int32(1280), got.CanvasWidth)
	assert.Equal(t, float32(0.25), got.RotationStep)
	assert.Equal(t, catalog.Vec3{X: 1, Y: 2, Z: 3}, got.CameraPosition)
	assert.Equal(t, "scenes/demo.yaml", got.ScenePath)

	// Everything else keeps the shipped values.
	assert.Equal(t, def.CanvasHeight, got.CanvasHeight)
	assert.Equal(t, def.SidebarWidth, got.SidebarWidth)
	assert.Equal(t, def.ScaleStep, got.ScaleStep)
	assert.Equal(t, def.DefaultScale, got.DefaultScale)
	assert.Equal(t, def.IDMax, got.IDMax)
}

// chdir switches the working directory for the test, restoring it on
// cleanup. Equivalent of t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestPrefsRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Equal(t, DefaultPrefs(), LoadPrefs(), "no file yet")

	want := Prefs{ShowFPS: true, GridVisible: false}
	require.NoError(t, SavePrefs(want))
	assert.Equal(t, want, LoadPrefs())
}

func TestLoadPrefsInvalidFileYieldsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(PrefsPath), 0755))
	require.NoError(t, os.WriteFile(PrefsPath, []byte("{broken"), 0644))
	assert.Equal(t, DefaultPrefs(), LoadPrefs())
}
