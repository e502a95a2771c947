package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solids-viewer/internal/catalog"
	"solids-viewer/internal/config"
	"solids-viewer/internal/session"
)

const (
	gridExtent     = 10
	gridMajorStep  = 5
	gridMinorAlpha = 45
	gridMajorAlpha = 110
)

var canvasBackground = rl.NewColor(22, 24, 30, 255)

// Viewport owns the camera and the off-screen canvas. The scene is only
// re-rendered into the texture when the session requests a repaint; idle
// frames just blit the cached image, which is what makes stopping the
// animation actually stop GPU work.
type Viewport struct {
	cfg   *config.Settings
	prefs *config.Prefs
	r     *Renderer

	cam      rl.Camera3D
	target   rl.RenderTexture2D
	targetOK bool
}

// NewViewport sets up a perspective camera looking at the origin from the
// configured position.
func NewViewport(cfg *config.Settings, prefs *config.Prefs, r *Renderer) *Viewport {
	v := &Viewport{cfg: cfg, prefs: prefs, r: r}
	v.cam.Position = rl.NewVector3(cfg.CameraPosition.X, cfg.CameraPosition.Y, cfg.CameraPosition.Z)
	v.cam.Target = rl.NewVector3(0, 0.5, 0)
	v.cam.Up = rl.NewVector3(0, 1, 0)
	v.cam.Fovy = cfg.CameraFOV
	v.cam.Projection = rl.CameraPerspective
	return v
}

// Repaint re-renders the scene into the canvas texture when the session is
// dirty. Call before BeginDrawing; texture rendering is its own GL pass.
func (v *Viewport) Repaint(s *session.Session) {
	if !s.ConsumeRepaint() && v.targetOK {
		return
	}
	if !v.targetOK {
		v.target = rl.LoadRenderTexture(v.cfg.CanvasWidth, v.cfg.CanvasHeight)
		v.targetOK = true
	}
	rl.BeginTextureMode(v.target)
	rl.ClearBackground(canvasBackground)
	rl.BeginMode3D(v.cam)
	if v.prefs.GridVisible {
		drawGrid()
	}
	v.r.shader.applyFrame(v.cam.Position, v.r.lights)
	model := s.Model
	for _, d := range s.Catalog().Shapes {
		m, ok := d.Mesh.(*Mesh)
		if !ok || d.Node == nil {
			continue
		}
		v.r.shader.applyMesh(m)
		rl.DrawMesh(m.mesh, m.mtl, composeTransform(m, d.Node.Rotation, model))
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}

// composeTransform chains mesh placement, the shape's animated node rotation,
// and the shared model transform. MatrixMultiply applies its first argument
// first.
func composeTransform(m *Mesh, nodeRot catalog.Vec3, model session.Transform) rl.Matrix {
	local := rl.MatrixMultiply(
		rl.MatrixRotateXYZ(rl.NewVector3(m.rotation.X, m.rotation.Y, m.rotation.Z)),
		rl.MatrixTranslate(m.position.X, m.position.Y, m.position.Z),
	)
	withNode := rl.MatrixMultiply(local, rl.MatrixRotateXYZ(rl.NewVector3(nodeRot.X, nodeRot.Y, nodeRot.Z)))
	shared := rl.MatrixMultiply(
		rl.MatrixMultiply(
			rl.MatrixScale(model.Scale.X, model.Scale.Y, model.Scale.Z),
			rl.MatrixRotateXYZ(rl.NewVector3(model.Rotation.X, model.Rotation.Y, model.Rotation.Z)),
		),
		rl.MatrixTranslate(model.Position.X, model.Position.Y, model.Position.Z),
	)
	return rl.MatrixMultiply(withNode, shared)
}

// Blit draws the cached canvas to the right of the sidebar. Render textures
// are stored bottom-up, hence the negative source height.
func (v *Viewport) Blit() {
	if !v.targetOK {
		return
	}
	src := rl.NewRectangle(0, 0, float32(v.cfg.CanvasWidth), -float32(v.cfg.CanvasHeight))
	rl.DrawTextureRec(v.target.Texture, src, rl.NewVector2(float32(v.cfg.SidebarWidth), 0), rl.White)
}

// drawGrid draws minor/major lines on the XZ plane under the solids.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x++ {
		c := minor
		if x%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z++ {
		c := minor
		if z%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
