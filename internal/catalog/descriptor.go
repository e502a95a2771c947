package catalog

// Vec3 is a position, rotation (radians), or scale triple.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Color is an opaque 8-bit RGB color. In scene files it is written as "#RGB" or "#RRGGBB".
type Color struct {
	R, G, B uint8
}

// Black is the zero color. Recoloring a light to Black is how "light off" is
// implemented: the light keeps its slot in the scene but contributes nothing.
var Black = Color{}

// Axis names one of the three rotation axes in a Spin.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Spin is one rotation delta applied to a shape's node every animated frame.
type Spin struct {
	Axis   Axis    `yaml:"axis"`
	Amount float32 `yaml:"amount"`
}

// GeometryKind selects the mesh generator for a shape.
type GeometryKind string

const (
	GeometryCube     GeometryKind = "cube"
	GeometrySphere   GeometryKind = "sphere"
	GeometryCylinder GeometryKind = "cylinder"
	GeometryCone     GeometryKind = "cone"
	GeometryTorus    GeometryKind = "torus"
	GeometryKnot     GeometryKind = "knot"
)

// MaterialKind selects the shading model for a shape's surface.
// "phong" shades with diffuse + specular; "diffuse" has no specular term.
type MaterialKind string

const (
	MaterialPhong   MaterialKind = "phong"
	MaterialDiffuse MaterialKind = "diffuse"
)

// MaterialSpec describes a shape's surface. Shininess and Specular are only
// applied when non-nil; a nil value leaves the renderer's default in place.
type MaterialSpec struct {
	Kind      MaterialKind `yaml:"kind"`
	Color     Color        `yaml:"color"`
	Shininess *float32     `yaml:"shininess,omitempty"`
	Specular  *float32     `yaml:"specular,omitempty"`
}

// ActionKind names a sidebar button action. Actions are dispatched through a
// lookup table of function references resolved at assembly time.
type ActionKind string

const (
	ActionAbout ActionKind = "about"
	ActionStart ActionKind = "start"
	ActionStop  ActionKind = "stop"
	ActionReset ActionKind = "reset"
)

// MeshHandle is the drawable the renderer returned for a shape. The assembler
// places it once; afterwards only the shape's Node moves.
type MeshHandle interface {
	SetPlacement(position, rotation Vec3)
}

// LightHandle is a live light in the scene. Its color is mutable so a light can
// be "disabled" by recoloring to Black and re-enabled by restoring its color.
type LightHandle interface {
	SetColor(c Color)
}

// Node is the transform node a shape's mesh hangs from. It starts empty; the
// frame loop accumulates Spin rotations here, and the renderer composes the
// node rotation with the shared model transform at draw time.
type Node struct {
	Rotation Vec3
}

// Entry is the part of a shape or light descriptor the assembler and the
// toggle handler need: a display name and the animation flag. The flag and the
// checkbox bound to it are kept in sync by the toggle handler alone.
type Entry interface {
	Label() string
	IsAnimated() bool
	SetAnimated(on bool)
}

// ShapeDescriptor is the static record for one solid. Mesh and Node are nil
// until assembly attaches the renderer objects; everything else is fixed for
// the life of the session except the Animated flag.
type ShapeDescriptor struct {
	Name     string       `yaml:"name"`
	Animated bool         `yaml:"animated"`
	Material MaterialSpec `yaml:"material"`
	Geometry GeometryKind `yaml:"geometry"`
	// Params are the ordered numeric arguments for the geometry generator,
	// e.g. cube [w,h,l] or torus [radius,ring,segments,sides].
	Params   []float32 `yaml:"params"`
	Position *Vec3     `yaml:"position,omitempty"`
	Rotation *Vec3     `yaml:"rotation,omitempty"`
	Spins    []Spin    `yaml:"spins,omitempty"`

	Mesh MeshHandle `yaml:"-"`
	Node *Node      `yaml:"-"`
}

func (d *ShapeDescriptor) Label() string       { return d.Name }
func (d *ShapeDescriptor) IsAnimated() bool    { return d.Animated }
func (d *ShapeDescriptor) SetAnimated(on bool) { d.Animated = on }

// LightDescriptor is the static record for one directional light. Animated
// here means "contributing light"; toggling it off recolors the handle to
// Black rather than removing the light from the scene.
type LightDescriptor struct {
	Name      string  `yaml:"name"`
	Animated  bool    `yaml:"animated"`
	Position  Vec3    `yaml:"position"`
	Color     Color   `yaml:"color"`
	Intensity float32 `yaml:"intensity"`

	Handle LightHandle `yaml:"-"`
}

func (d *LightDescriptor) Label() string       { return d.Name }
func (d *LightDescriptor) IsAnimated() bool    { return d.Animated }
func (d *LightDescriptor) SetAnimated(on bool) { d.Animated = on }

// ButtonDescriptor is the static record for one sidebar button. It is used
// once, to wire a click handler, and never mutated.
type ButtonDescriptor struct {
	Label  string     `yaml:"label"`
	Action ActionKind `yaml:"action"`
	Args   []string   `yaml:"args,omitempty"`
}
