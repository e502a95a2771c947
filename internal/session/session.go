// Package session owns the viewer's mutable state: the shared model
// transform, the global animation flag, and the per-descriptor toggles. All
// mutation happens synchronously inside UI callbacks or the frame step, so the
// single-writer rule makes locking unnecessary.
package session

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"solids-viewer/internal/catalog"
	"solids-viewer/internal/config"
	"solids-viewer/internal/logger"
)

// Transform is the shared rotation/scale/position triple applied to the
// aggregate model node. There is exactly one per session; keyboard commands
// and Reset are its only writers.
type Transform struct {
	Rotation catalog.Vec3
	Scale    catalog.Vec3
	Position catalog.Vec3
}

// Notifier surfaces a user-visible, blocking notice (redundant commands, the
// About text). Nil is allowed and drops notices.
type Notifier func(msg string)

// Session binds the cloned catalog to the interaction state.
type Session struct {
	cat    *catalog.Catalog
	cfg    *config.Settings
	log    *logger.Logger
	notify Notifier

	Model    Transform
	animated bool
	dirty    bool
}

// New returns an idle session at the configured default transform, marked for
// an initial repaint.
func New(cat *catalog.Catalog, cfg *config.Settings, lg *logger.Logger, notify Notifier) *Session {
	s := &Session{cat: cat, cfg: cfg, log: lg, notify: notify}
	s.Model = s.defaultTransform()
	s.dirty = true
	return s
}

func (s *Session) defaultTransform() Transform {
	return Transform{
		Rotation: s.cfg.DefaultRotation,
		Scale:    s.cfg.DefaultScale,
		Position: s.cfg.DefaultPosition,
	}
}

// Catalog returns the session's descriptor tables.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Animated reports whether the scene-wide animation loop is running.
func (s *Session) Animated() bool {
	return s.animated
}

// Start switches the scene to animating. Starting an already-running scene is
// a no-op apart from a single user-visible notice.
func (s *Session) Start() {
	if s.animated {
		s.say("Animation is already running.")
		return
	}
	s.animated = true
	s.logf("animation started")
}

// Stop switches the scene to idle. The frame loop observes the flag on its
// next invocation; Stop itself does not request a repaint, so no final frame
// is drawn after the transition. Stopping an idle scene is a no-op apart from
// a single notice.
func (s *Session) Stop() {
	if !s.animated {
		s.say("Animation is not running.")
		return
	}
	s.animated = false
	s.logf("animation stopped")
}

// Reset restores the shared transform to the configured defaults, regardless
// of prior state, and repaints when the scene is idle.
func (s *Session) Reset() {
	s.Model = s.defaultTransform()
	if !s.animated {
		s.dirty = true
	}
	s.logf("model reset")
}

// Toggle flips one descriptor's animation flag, independent of the global
// state. For lights, "off" recolors the live handle to black and "on" restores
// the stored color; the light stays in the scene either way. This is the only
// place the flag changes, which keeps checkbox state and descriptor in sync.
func (s *Session) Toggle(e catalog.Entry) {
	e.SetAnimated(!e.IsAnimated())
	if l, ok := e.(*catalog.LightDescriptor); ok {
		if l.Handle != nil {
			if l.Animated {
				l.Handle.SetColor(l.Color)
			} else {
				l.Handle.SetColor(catalog.Black)
			}
		}
		if !s.animated {
			s.dirty = true
		}
	}
	s.logf("toggle %s -> %v", e.Label(), e.IsAnimated())
}

// Step advances one frame of per-shape animation: every animated shape's
// queued spins are applied to its node rotation. Callers invoke Step only
// while Animated; a stopped session steps nothing and requests no repaint.
func (s *Session) Step() {
	if !s.animated {
		return
	}
	for _, d := range s.cat.Shapes {
		if !d.Animated || d.Node == nil {
			continue
		}
		for _, sp := range d.Spins {
			switch sp.Axis {
			case catalog.AxisX:
				d.Node.Rotation.X = wrapAngle(d.Node.Rotation.X + sp.Amount)
			case catalog.AxisY:
				d.Node.Rotation.Y = wrapAngle(d.Node.Rotation.Y + sp.Amount)
			case catalog.AxisZ:
				d.Node.Rotation.Z = wrapAngle(d.Node.Rotation.Z + sp.Amount)
			}
		}
	}
	s.dirty = true
}

// ConsumeRepaint reports whether the scene must be redrawn this frame and
// clears the flag.
func (s *Session) ConsumeRepaint() bool {
	v := s.dirty
	s.dirty = false
	return v
}

// Actions returns the button dispatch table: every ActionKind resolved to a
// bound method reference. Resolved once at assembly time; unknown kinds are
// simply absent.
func (s *Session) Actions() map[catalog.ActionKind]func(args []string) {
	return map[catalog.ActionKind]func(args []string){
		catalog.ActionStart: func([]string) { s.Start() },
		catalog.ActionStop:  func([]string) { s.Stop() },
		catalog.ActionReset: func([]string) { s.Reset() },
		catalog.ActionAbout: func(args []string) { s.say(strings.Join(args, "\n")) },
	}
}

func (s *Session) say(msg string) {
	if s.notify != nil {
		s.notify(msg)
	}
	s.logf("notice: %s", strings.ReplaceAll(msg, "\n", " / "))
}

func (s *Session) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Log(fmt.Sprintf(format, args...))
	}
}

// wrapAngle keeps accumulated rotations in (-2π, 2π) so long sessions don't
// drift float precision.
func wrapAngle(r float32) float32 {
	return math32.Mod(r, 2*math32.Pi)
}
