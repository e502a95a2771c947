// Package render is the raylib implementation of the renderer collaborator:
// mesh generation, Phong-style materials, directional lights, the on-demand
// canvas repaint, and the sidebar drawing/hit-testing.
package render

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"solids-viewer/internal/catalog"
	"solids-viewer/internal/scene"
)

// Renderer builds raylib resources from descriptor data and owns the scene's
// light list. GPU resources are created during assembly, which runs after the
// window/GL context exists.
type Renderer struct {
	lights []*Light
	shader litShader
}

// NewRenderer returns a renderer with no lights and no shader loaded yet.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// geometry wraps a generated rl.Mesh so the assembler can stay backend-blind.
type geometry struct {
	mesh rl.Mesh
}

// material carries the raylib material plus the specular parameters applied
// per mesh at draw time.
type material struct {
	mtl          rl.Material
	specPower    float32
	specStrength float32
}

const (
	defaultSpecularPower    = 32.0
	defaultSpecularStrength = 0.3
)

// paramAt returns params[i], or fallback when the ordered list is short.
func paramAt(params []float32, i int, fallback float32) float32 {
	if i < len(params) {
		return params[i]
	}
	return fallback
}

// MakeGeometry generates the mesh for kind from its ordered params. Unknown
// kinds are an error: the catalog validates kinds, so reaching one here means
// a generator was removed without updating the catalog.
func (r *Renderer) MakeGeometry(kind catalog.GeometryKind, params []float32) (scene.Geometry, error) {
	var mesh rl.Mesh
	switch kind {
	case catalog.GeometryCube:
		mesh = rl.GenMeshCube(paramAt(params, 0, 1), paramAt(params, 1, 1), paramAt(params, 2, 1))
	case catalog.GeometrySphere:
		mesh = rl.GenMeshSphere(paramAt(params, 0, 0.5), int(paramAt(params, 1, 16)), int(paramAt(params, 2, 16)))
	case catalog.GeometryCylinder:
		mesh = rl.GenMeshCylinder(paramAt(params, 0, 0.5), paramAt(params, 1, 1), int(paramAt(params, 2, 16)))
	case catalog.GeometryCone:
		mesh = rl.GenMeshCone(paramAt(params, 0, 0.5), paramAt(params, 1, 1), int(paramAt(params, 2, 16)))
	case catalog.GeometryTorus:
		mesh = rl.GenMeshTorus(paramAt(params, 0, 0.5), paramAt(params, 1, 0.2), int(paramAt(params, 2, 16)), int(paramAt(params, 3, 24)))
	case catalog.GeometryKnot:
		mesh = rl.GenMeshKnot(paramAt(params, 0, 0.5), paramAt(params, 1, 0.2), int(paramAt(params, 2, 16)), int(paramAt(params, 3, 96)))
	default:
		return nil, fmt.Errorf("render: no generator for geometry %q", kind)
	}
	return &geometry{mesh: mesh}, nil
}

// MakeMaterial builds a default raylib material tinted with the spec color and
// the shared lit shader. Shininess and specular override the defaults only
// when the spec carries them; a diffuse-kind material shines nothing back.
func (r *Renderer) MakeMaterial(spec catalog.MaterialSpec) (scene.Material, error) {
	if err := r.shader.ensure(); err != nil {
		return nil, err
	}
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(spec.Color.R, spec.Color.G, spec.Color.B, 255)
	}
	mtl.Shader = r.shader.shader

	m := &material{mtl: mtl, specPower: defaultSpecularPower, specStrength: defaultSpecularStrength}
	if spec.Kind == catalog.MaterialDiffuse {
		m.specStrength = 0
	}
	if spec.Shininess != nil {
		m.specPower = *spec.Shininess
	}
	if spec.Specular != nil {
		m.specStrength = *spec.Specular
	}
	return m, nil
}

// Mesh is the drawable for one shape: generated mesh, material, and the static
// placement the assembler set from the descriptor.
type Mesh struct {
	mesh         rl.Mesh
	mtl          rl.Material
	specPower    float32
	specStrength float32
	position     catalog.Vec3
	rotation     catalog.Vec3
}

// SetPlacement stores the mesh's static position and rotation.
func (m *Mesh) SetPlacement(position, rotation catalog.Vec3) {
	m.position = position
	m.rotation = rotation
}

// MakeMesh pairs geometry and material into a drawable.
func (r *Renderer) MakeMesh(g scene.Geometry, m scene.Material) (catalog.MeshHandle, error) {
	geo, ok := g.(*geometry)
	if !ok {
		return nil, fmt.Errorf("render: foreign geometry %T", g)
	}
	mat, ok := m.(*material)
	if !ok {
		return nil, fmt.Errorf("render: foreign material %T", m)
	}
	return &Mesh{
		mesh:         geo.mesh,
		mtl:          mat.mtl,
		specPower:    mat.specPower,
		specStrength: mat.specStrength,
	}, nil
}

// Light is a directional light assumed to shine toward the origin from its
// position, like the sun. Color is mutable: black means "off" without removing
// the light from the scene.
type Light struct {
	Position  catalog.Vec3
	color     catalog.Color
	intensity float32
}

// SetColor recolors the light. The zero color disables its contribution.
func (l *Light) SetColor(c catalog.Color) {
	l.color = c
}

// MakeLight clamps intensity into [0,1], inserts the light into the scene, and
// returns the mutable handle.
func (r *Renderer) MakeLight(position catalog.Vec3, color catalog.Color, intensity float32) (catalog.LightHandle, error) {
	if len(r.lights) >= maxLights {
		return nil, fmt.Errorf("render: light limit %d reached", maxLights)
	}
	l := &Light{
		Position:  position,
		color:     color,
		intensity: math32.Max(0, math32.Min(1, intensity)),
	}
	r.lights = append(r.lights, l)
	return l, nil
}
