package catalog

func fptr(v float32) *float32 { return &v }

// builtin is the shipped scene: six solids on a loose grid around the origin
// and five directional lights. Geometry params follow the generator order
// documented on ShapeDescriptor.Params; spin amounts are radians per frame.
var builtin = &Catalog{
	Shapes: []*ShapeDescriptor{
		{
			Name:     "Cube",
			Animated: true,
			Material: MaterialSpec{Kind: MaterialPhong, Color: Color{R: 0x8e, G: 0x44, B: 0xcc}, Shininess: fptr(60), Specular: fptr(0.35)},
			Geometry: GeometryCube,
			Params:   []float32{1.2, 1.2, 1.2},
			Position: &Vec3{X: -3, Y: 0.6},
			Spins:    []Spin{{Axis: AxisY, Amount: 0.01}},
		},
		{
			Name:     "Sphere",
			Animated: true,
			Material: MaterialSpec{Kind: MaterialPhong, Color: Color{R: 0x2a, G: 0xb5, B: 0xa0}, Shininess: fptr(80), Specular: fptr(0.45)},
			Geometry: GeometrySphere,
			Params:   []float32{0.75, 24, 24},
			Position: &Vec3{X: -1, Y: 0.75},
			Spins:    []Spin{{Axis: AxisY, Amount: 0.008}, {Axis: AxisX, Amount: 0.004}},
		},
		{
			Name:     "Cylinder",
			Animated: false,
			Material: MaterialSpec{Kind: MaterialDiffuse, Color: Color{R: 0xe0, G: 0x7a, B: 0x1f}},
			Geometry: GeometryCylinder,
			Params:   []float32{0.5, 1.5, 18},
			Position: &Vec3{X: 1, Y: 0.75},
			Spins:    []Spin{{Axis: AxisX, Amount: 0.006}},
		},
		{
			Name:     "Cone",
			Animated: true,
			Material: MaterialSpec{Kind: MaterialPhong, Color: Color{R: 0xc0, G: 0x39, B: 0x2b}, Shininess: fptr(40), Specular: fptr(0.25)},
			Geometry: GeometryCone,
			Params:   []float32{0.6, 1.4, 18},
			Position: &Vec3{X: 3, Y: 0.7},
			Spins:    []Spin{{Axis: AxisZ, Amount: 0.005}},
		},
		{
			Name:     "Torus",
			Animated: true,
			Material: MaterialSpec{Kind: MaterialPhong, Color: Color{R: 0xd4, G: 0xaf, B: 0x37}, Shininess: fptr(90), Specular: fptr(0.5)},
			Geometry: GeometryTorus,
			Params:   []float32{0.8, 0.25, 16, 24},
			Position: &Vec3{X: -2, Y: 0.8, Z: -2.5},
			Rotation: &Vec3{X: 0.6},
			Spins:    []Spin{{Axis: AxisX, Amount: 0.004}, {Axis: AxisY, Amount: 0.01}},
		},
		{
			Name:     "Knot",
			Animated: false,
			Material: MaterialSpec{Kind: MaterialDiffuse, Color: Color{R: 0x34, G: 0x6b, B: 0xd9}},
			Geometry: GeometryKnot,
			Params:   []float32{0.6, 0.2, 16, 96},
			Position: &Vec3{X: 2, Y: 0.8, Z: -2.5},
			Spins:    []Spin{{Axis: AxisY, Amount: 0.012}},
		},
	},
	Lights: []*LightDescriptor{
		{Name: "Key light", Animated: true, Position: Vec3{X: 4, Y: 6, Z: 4}, Color: Color{R: 0xff, G: 0xfa, B: 0xf0}, Intensity: 0.9},
		{Name: "Fill light", Animated: true, Position: Vec3{X: -5, Y: 3, Z: 2}, Color: Color{R: 0x9f, G: 0xb8, B: 0xff}, Intensity: 0.4},
		{Name: "Back light", Animated: true, Position: Vec3{Y: 4, Z: -6}, Color: Color{R: 0xff, G: 0xd9, B: 0xa8}, Intensity: 0.5},
		{Name: "Bounce light", Animated: true, Position: Vec3{Y: -4, Z: 3}, Color: Color{R: 0xc8, G: 0xc8, B: 0xc8}, Intensity: 0.25},
		{Name: "Accent light", Animated: true, Position: Vec3{X: 6, Y: 1, Z: -3}, Color: Color{R: 0xe8, G: 0x5c, B: 0xc8}, Intensity: 0.3},
	},
	Buttons: []*ButtonDescriptor{
		{Label: "About", Action: ActionAbout, Args: []string{"Solids viewer", "Six solids, five lights.", "Toggle animation per element in the sidebar."}},
		{Label: "Start animation", Action: ActionStart},
		{Label: "Stop animation", Action: ActionStop},
		{Label: "Reset model", Action: ActionReset},
	},
}
