// Package scene turns descriptor tables into live renderer objects and bound
// sidebar controls.
package scene

import "solids-viewer/internal/catalog"

// Geometry and Material are opaque renderer resources. The raylib
// implementation wraps its own mesh and material types; tests use stand-ins.
type Geometry interface{}
type Material interface{}

// Renderer is the assembler's view of the 3D backend: it builds geometry,
// materials, drawable meshes, and scene lights from descriptor data. MakeLight
// inserts the light into the scene as a side effect; the returned handle stays
// mutable for the recolor-on-toggle path.
type Renderer interface {
	MakeGeometry(kind catalog.GeometryKind, params []float32) (Geometry, error)
	MakeMaterial(spec catalog.MaterialSpec) (Material, error)
	MakeMesh(g Geometry, m Material) (catalog.MeshHandle, error)
	MakeLight(position catalog.Vec3, color catalog.Color, intensity float32) (catalog.LightHandle, error)
}
