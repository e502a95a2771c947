package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	c := Default()
	assert.Len(t, c.Shapes, 6)
	assert.Len(t, c.Lights, 5)
	assert.Len(t, c.Buttons, 4)
	require.NoError(t, c.validate())

	for _, l := range c.Lights {
		assert.GreaterOrEqual(t, l.Intensity, float32(0))
		assert.LessOrEqual(t, l.Intensity, float32(1))
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Shapes[0].Animated = !a.Shapes[0].Animated
	a.Shapes[0].Spins[0].Amount = 99
	a.Lights[0].Color = Color{R: 1, G: 2, B: 3}

	assert.NotEqual(t, a.Shapes[0].Animated, b.Shapes[0].Animated)
	assert.NotEqual(t, a.Shapes[0].Spins[0].Amount, b.Shapes[0].Spins[0].Amount)
	assert.NotEqual(t, a.Lights[0].Color, b.Lights[0].Color)
}

func TestCloneDropsAttachedHandles(t *testing.T) {
	c := Default()
	c.Shapes[0].Node = &Node{Rotation: Vec3{Y: 1}}
	clone := c.Clone()
	assert.Nil(t, clone.Shapes[0].Node)
	assert.Nil(t, clone.Shapes[0].Mesh)
	assert.Nil(t, clone.Lights[0].Handle)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#8e44cc")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x8e, G: 0x44, B: 0xcc}, c)
	assert.Equal(t, "#8e44cc", c.String())

	c, err = ParseColor("#f0a")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xff, G: 0x00, B: 0xaa}, c)

	_, err = ParseColor("ff0000")
	assert.Error(t, err)
	_, err = ParseColor("#zzz")
	assert.Error(t, err)
}

func TestLoadOverlayReplacesOnlyPresentTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := `
shapes:
  - name: Box
    animated: true
    geometry: cube
    params: [1, 1, 1]
    material: {kind: phong, color: "#112233", shininess: 50}
    spins: [{axis: y, amount: 0.02}]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c := Default()
	require.NoError(t, c.LoadOverlay(path))

	require.Len(t, c.Shapes, 1)
	s := c.Shapes[0]
	assert.Equal(t, "Box", s.Name)
	assert.Equal(t, GeometryCube, s.Geometry)
	assert.Equal(t, Color{R: 0x11, G: 0x22, B: 0x33}, s.Material.Color)
	require.NotNil(t, s.Material.Shininess)
	assert.Equal(t, float32(50), *s.Material.Shininess)
	assert.Nil(t, s.Material.Specular)
	require.Len(t, s.Spins, 1)
	assert.Equal(t, AxisY, s.Spins[0].Axis)

	// Tables absent from the file keep the defaults.
	assert.Len(t, c.Lights, 5)
	assert.Len(t, c.Buttons, 4)
}

func TestLoadOverlayMissingFileIsFine(t *testing.T) {
	c := Default()
	require.NoError(t, c.LoadOverlay(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Len(t, c.Shapes, 6)
}

func TestLoadOverlayRejectionLeavesCatalogUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `
shapes:
  - name: X
    geometry: cube
lights:
  - name: L
    intensity: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c := Default()
	require.Error(t, c.LoadOverlay(path))

	// The valid shapes table must not have been installed either: a rejected
	// overlay is rejected as a whole.
	assert.Len(t, c.Shapes, 6)
	assert.Len(t, c.Lights, 5)
	assert.Equal(t, Default().Shapes[0].Name, c.Shapes[0].Name)
	require.NoError(t, c.validate())
}

func TestLoadOverlayRejectsBadData(t *testing.T) {
	dir := t.TempDir()

	badGeometry := filepath.Join(dir, "geo.yaml")
	require.NoError(t, os.WriteFile(badGeometry, []byte("shapes:\n  - name: X\n    geometry: dodecahedron\n"), 0644))
	assert.Error(t, Default().LoadOverlay(badGeometry))

	badIntensity := filepath.Join(dir, "light.yaml")
	require.NoError(t, os.WriteFile(badIntensity, []byte("lights:\n  - name: L\n    intensity: 2\n"), 0644))
	assert.Error(t, Default().LoadOverlay(badIntensity))

	badAxis := filepath.Join(dir, "axis.yaml")
	require.NoError(t, os.WriteFile(badAxis, []byte("shapes:\n  - name: X\n    geometry: cube\n    spins: [{axis: w, amount: 0.1}]\n"), 0644))
	assert.Error(t, Default().LoadOverlay(badAxis))
}
