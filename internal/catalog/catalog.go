package catalog

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// Catalog holds the three descriptor tables. The tables are fixed for a
// session: no descriptor is ever added or removed after load, only the
// Animated flags and the attached renderer objects change.
type Catalog struct {
	Shapes  []*ShapeDescriptor  `yaml:"shapes"`
	Lights  []*LightDescriptor  `yaml:"lights"`
	Buttons []*ButtonDescriptor `yaml:"buttons"`
}

// Default returns a deep copy of the built-in catalog. Each call yields an
// independent set of descriptors, so sessions never mutate the package tables.
func Default() *Catalog {
	return builtin.Clone()
}

// Clone deep-copies the catalog, including descriptor records and nested
// specs. Attached renderer handles are not carried over; a clone is a fresh
// unassembled catalog.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		// The catalog is plain data; a copy failure is a programming error.
		panic(fmt.Sprintf("catalog: clone: %v", err))
	}
	for _, d := range out.Shapes {
		d.Mesh = nil
		d.Node = nil
	}
	for _, d := range out.Lights {
		d.Handle = nil
	}
	return out
}

// LoadOverlay reads a YAML scene file and replaces any table it defines.
// Tables absent from the file keep their current entries. A missing file is
// not an error; the built-in catalog is the normal case. A rejected overlay
// leaves the receiver untouched: the merge is validated before it is
// installed.
func (c *Catalog) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var over Catalog
	if err := yaml.Unmarshal(data, &over); err != nil {
		return fmt.Errorf("catalog: %s: %w", path, err)
	}
	merged := Catalog{Shapes: c.Shapes, Lights: c.Lights, Buttons: c.Buttons}
	if len(over.Shapes) > 0 {
		merged.Shapes = over.Shapes
	}
	if len(over.Lights) > 0 {
		merged.Lights = over.Lights
	}
	if len(over.Buttons) > 0 {
		merged.Buttons = over.Buttons
	}
	if err := merged.validate(); err != nil {
		return err
	}
	*c = merged
	return nil
}

func (c *Catalog) validate() error {
	for _, d := range c.Shapes {
		if d.Name == "" {
			return fmt.Errorf("catalog: shape with empty name")
		}
		switch d.Geometry {
		case GeometryCube, GeometrySphere, GeometryCylinder, GeometryCone, GeometryTorus, GeometryKnot:
		default:
			return fmt.Errorf("catalog: shape %q: unknown geometry %q", d.Name, d.Geometry)
		}
		for _, sp := range d.Spins {
			switch sp.Axis {
			case AxisX, AxisY, AxisZ:
			default:
				return fmt.Errorf("catalog: shape %q: unknown spin axis %q", d.Name, sp.Axis)
			}
		}
	}
	for _, d := range c.Lights {
		if d.Name == "" {
			return fmt.Errorf("catalog: light with empty name")
		}
		if d.Intensity < 0 || d.Intensity > 1 {
			return fmt.Errorf("catalog: light %q: intensity %v out of [0,1]", d.Name, d.Intensity)
		}
	}
	return nil
}
