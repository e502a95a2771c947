package scene

import (
	"fmt"
	"strings"

	"solids-viewer/internal/catalog"
	"solids-viewer/internal/config"
	"solids-viewer/internal/ident"
	"solids-viewer/internal/logger"
	"solids-viewer/internal/session"
	"solids-viewer/internal/ui"
)

// Assembler walks the descriptor tables and attaches a renderer object plus a
// bound sidebar control to every entry. Button actions are resolved through
// the session's dispatch table once, at construction.
type Assembler struct {
	r       Renderer
	pool    *ident.Pool
	panel   *ui.Node
	ses     *session.Session
	cfg     *config.Settings
	log     *logger.Logger
	actions map[catalog.ActionKind]func(args []string)
}

// New returns an assembler appending controls to panel. log may be nil.
func New(r Renderer, pool *ident.Pool, panel *ui.Node, ses *session.Session, cfg *config.Settings, log *logger.Logger) *Assembler {
	return &Assembler{
		r:       r,
		pool:    pool,
		panel:   panel,
		ses:     ses,
		cfg:     cfg,
		log:     log,
		actions: ses.Actions(),
	}
}

// AssembleShape builds material, geometry, and mesh for the descriptor,
// creates its empty aggregate node, places the mesh if the descriptor carries
// coordinates, and stores the renderer objects back on the descriptor. An
// animated shape without spins gets a single default yaw spin.
func (a *Assembler) AssembleShape(d *catalog.ShapeDescriptor) error {
	mat, err := a.r.MakeMaterial(d.Material)
	if err != nil {
		return fmt.Errorf("shape %q: %w", d.Name, err)
	}
	geo, err := a.r.MakeGeometry(d.Geometry, d.Params)
	if err != nil {
		return fmt.Errorf("shape %q: %w", d.Name, err)
	}
	mesh, err := a.r.MakeMesh(geo, mat)
	if err != nil {
		return fmt.Errorf("shape %q: %w", d.Name, err)
	}
	if d.Position != nil || d.Rotation != nil {
		var pos, rot catalog.Vec3
		if d.Position != nil {
			pos = *d.Position
		}
		if d.Rotation != nil {
			rot = *d.Rotation
		}
		mesh.SetPlacement(pos, rot)
	}
	if len(d.Spins) == 0 {
		d.Spins = []catalog.Spin{{Axis: catalog.AxisY, Amount: a.cfg.AnimationStep}}
	}
	d.Mesh = mesh
	d.Node = &catalog.Node{}
	return nil
}

// AssembleLight builds the directional light, inserts it into the scene, and
// stores the live handle on the descriptor. A light toggled off before
// assembly starts black.
func (a *Assembler) AssembleLight(d *catalog.LightDescriptor) error {
	h, err := a.r.MakeLight(d.Position, d.Color, d.Intensity)
	if err != nil {
		return fmt.Errorf("light %q: %w", d.Name, err)
	}
	if !d.Animated {
		h.SetColor(catalog.Black)
	}
	d.Handle = h
	return nil
}

// AssembleCheckbox allocates a control id, builds a labeled checkbox bound to
// the entry's animation flag, appends it to the panel, and wires the change
// listener to the session toggle. On id-pool exhaustion the entry keeps its
// renderer object but gets no control; the condition is reported, not retried.
func (a *Assembler) AssembleCheckbox(e catalog.Entry) error {
	n, err := a.pool.Allocate(a.cfg.IDMin, a.cfg.IDMax)
	if err != nil {
		return fmt.Errorf("control for %q: %w", e.Label(), err)
	}
	id := fmt.Sprintf("toggle%s%d", strings.ReplaceAll(e.Label(), " ", ""), n)
	row, err := ui.BuildList("label", map[string]string{"class": "toggle"},
		[]any{"input", map[string]string{"type": "checkbox", "id": id}},
		e.Label(),
	)
	if err != nil {
		return err
	}
	input := row.Find(id)
	input.Checked = e.IsAnimated()
	input.OnChange = func(bool) {
		a.ses.Toggle(e)
		input.Checked = e.IsAnimated()
	}
	a.panel.Append(row)
	return nil
}

// AssembleButton builds a sidebar button and wires its click to the resolved
// action with the descriptor's arguments.
func (a *Assembler) AssembleButton(d *catalog.ButtonDescriptor) error {
	act, ok := a.actions[d.Action]
	if !ok {
		return fmt.Errorf("button %q: unknown action %q", d.Label, d.Action)
	}
	btn, err := ui.BuildList("button", map[string]string{"class": "action"}, d.Label)
	if err != nil {
		return err
	}
	args := d.Args
	btn.OnClick = func() { act(args) }
	a.panel.Append(btn)
	return nil
}

// AssembleAll assembles every table in catalog order: shapes with their
// checkboxes, then lights with theirs, then buttons. Renderer failures abort;
// id-pool exhaustion is logged and the remaining entries continue without
// controls.
func (a *Assembler) AssembleAll() error {
	cat := a.ses.Catalog()
	if err := a.assembleTable(entries(cat.Shapes), func(e catalog.Entry) error {
		return a.AssembleShape(e.(*catalog.ShapeDescriptor))
	}); err != nil {
		return err
	}
	if err := a.assembleTable(entries(cat.Lights), func(e catalog.Entry) error {
		return a.AssembleLight(e.(*catalog.LightDescriptor))
	}); err != nil {
		return err
	}
	for _, b := range cat.Buttons {
		if err := a.AssembleButton(b); err != nil {
			return err
		}
	}
	return nil
}

// assembleTable builds the renderer object and then the checkbox for every
// entry, in table order.
func (a *Assembler) assembleTable(list []catalog.Entry, build func(catalog.Entry) error) error {
	for _, e := range list {
		if err := build(e); err != nil {
			return err
		}
		if err := a.AssembleCheckbox(e); err != nil {
			if a.log != nil {
				a.log.Log("warning: " + err.Error())
			}
		}
	}
	return nil
}

func entries[T catalog.Entry](list []T) []catalog.Entry {
	out := make([]catalog.Entry, len(list))
	for i, e := range list {
		out[i] = e
	}
	return out
}
