package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solids-viewer/internal/catalog"
	"solids-viewer/internal/config"
)

type colorRecorder struct {
	colors []catalog.Color
}

func (r *colorRecorder) SetColor(c catalog.Color) {
	r.colors = append(r.colors, c)
}

func newTestSession(t *testing.T) (*Session, *[]string) {
	t.Helper()
	cfg := config.Default()
	var notices []string
	s := New(catalog.Default(), &cfg, nil, func(msg string) { notices = append(notices, msg) })
	// Sessions start dirty for the first paint; drain it so tests observe
	// only their own repaint requests.
	s.ConsumeRepaint()
	return s, &notices
}

func TestStartStopStateMachine(t *testing.T) {
	s, notices := newTestSession(t)

	assert.False(t, s.Animated())
	s.Start()
	assert.True(t, s.Animated())
	assert.Empty(t, *notices)

	s.Start()
	assert.True(t, s.Animated(), "redundant start must not change state")
	require.Len(t, *notices, 1)
	assert.Equal(t, "Animation is already running.", (*notices)[0])

	s.Stop()
	assert.False(t, s.Animated())
	assert.Len(t, *notices, 1)

	s.Stop()
	assert.False(t, s.Animated(), "redundant stop must not change state")
	require.Len(t, *notices, 2)
	assert.Equal(t, "Animation is not running.", (*notices)[1])
}

func TestTogglePairRestoresFlag(t *testing.T) {
	s, _ := newTestSession(t)
	d := s.Catalog().Shapes[0]
	orig := d.Animated

	for i := 0; i < 4; i++ {
		s.Toggle(d)
	}
	assert.Equal(t, orig, d.Animated)

	s.Toggle(d)
	assert.Equal(t, !orig, d.Animated)
}

func TestToggleLightRecolorsHandle(t *testing.T) {
	s, _ := newTestSession(t)
	l := s.Catalog().Lights[0]
	require.True(t, l.Animated)
	rec := &colorRecorder{}
	l.Handle = rec

	s.Toggle(l)
	require.Len(t, rec.colors, 1)
	assert.Equal(t, catalog.Black, rec.colors[0], "off recolors to black, not removal")
	assert.True(t, s.ConsumeRepaint(), "idle light toggle repaints")

	s.Toggle(l)
	require.Len(t, rec.colors, 2)
	assert.Equal(t, l.Color, rec.colors[1], "on restores the stored color")
}

func TestToggleShapeDoesNotRepaint(t *testing.T) {
	s, _ := newTestSession(t)
	s.Toggle(s.Catalog().Shapes[0])
	assert.False(t, s.ConsumeRepaint())
}

func TestStepAppliesSpinsToAnimatedShapesOnly(t *testing.T) {
	cfg := config.Default()
	cat := catalog.Default()
	cat.Shapes = cat.Shapes[:2]
	animated := cat.Shapes[0]
	animated.Animated = true
	animated.Spins = []catalog.Spin{{Axis: catalog.AxisY, Amount: 0.01}}
	animated.Node = &catalog.Node{}
	sibling := cat.Shapes[1]
	sibling.Animated = false
	sibling.Node = &catalog.Node{}

	s := New(cat, &cfg, nil, nil)
	s.ConsumeRepaint()

	s.Start()
	s.Step()
	assert.InDelta(t, 0.01, animated.Node.Rotation.Y, 1e-7)
	assert.Zero(t, animated.Node.Rotation.X)
	assert.Zero(t, sibling.Node.Rotation.Y, "unanimated sibling stays put")
	assert.True(t, s.ConsumeRepaint())

	s.Step()
	assert.InDelta(t, 0.02, animated.Node.Rotation.Y, 1e-7)
}

func TestStepIsNoopWhenIdle(t *testing.T) {
	s, _ := newTestSession(t)
	d := s.Catalog().Shapes[0]
	d.Node = &catalog.Node{}
	d.Animated = true

	s.Step()
	assert.Zero(t, d.Node.Rotation.Y)
	assert.False(t, s.ConsumeRepaint(), "no repaint after the stop transition")
}

func TestStopSkipsFinalRepaint(t *testing.T) {
	s, _ := newTestSession(t)
	d := s.Catalog().Shapes[0]
	d.Node = &catalog.Node{}
	d.Animated = true

	s.Start()
	s.Step()
	s.ConsumeRepaint()

	s.Stop()
	s.Step()
	assert.False(t, s.ConsumeRepaint(), "stopping must not draw one more frame")
}

func TestResetRestoresDefaultTriple(t *testing.T) {
	s, _ := newTestSession(t)
	cfg := config.Default()

	s.Apply(CmdYawRight)
	s.Apply(CmdMoveUp)
	s.Apply(CmdScaleUp)
	s.ConsumeRepaint()

	s.Reset()
	assert.Equal(t, cfg.DefaultRotation, s.Model.Rotation)
	assert.Equal(t, cfg.DefaultScale, s.Model.Scale)
	assert.Equal(t, cfg.DefaultPosition, s.Model.Position)
	assert.True(t, s.ConsumeRepaint(), "idle reset repaints")

	// Idempotent regardless of prior state.
	s.Reset()
	assert.Equal(t, cfg.DefaultScale, s.Model.Scale)
}

func TestApplyCommands(t *testing.T) {
	s, _ := newTestSession(t)
	cfg := config.Default()

	assert.True(t, s.Apply(CmdYawRight))
	assert.InDelta(t, cfg.RotationStep, s.Model.Rotation.Y, 1e-6)
	assert.True(t, s.ConsumeRepaint(), "idle keyboard input repaints immediately")

	assert.True(t, s.Apply(CmdMoveLeft))
	assert.InDelta(t, -cfg.TranslationStep, s.Model.Position.X, 1e-6)

	assert.True(t, s.Apply(CmdScaleDown))
	assert.InDelta(t, 1-cfg.ScaleStep, s.Model.Scale.X, 1e-6)

	assert.False(t, s.Apply(CmdNone))
}

func TestScaleClampsAtMinimum(t *testing.T) {
	s, _ := newTestSession(t)
	cfg := config.Default()
	for i := 0; i < 100; i++ {
		s.Apply(CmdScaleDown)
	}
	assert.InDelta(t, cfg.MinScale, s.Model.Scale.X, 1e-6)
	assert.InDelta(t, cfg.MinScale, s.Model.Scale.Y, 1e-6)
	assert.InDelta(t, cfg.MinScale, s.Model.Scale.Z, 1e-6)
}

func TestActionsTableDispatches(t *testing.T) {
	s, notices := newTestSession(t)
	actions := s.Actions()

	actions[catalog.ActionStart](nil)
	assert.True(t, s.Animated())
	actions[catalog.ActionStop](nil)
	assert.False(t, s.Animated())

	actions[catalog.ActionAbout]([]string{"line one", "line two"})
	require.NotEmpty(t, *notices)
	assert.Equal(t, "line one\nline two", (*notices)[len(*notices)-1])

	s.Apply(CmdMoveUp)
	actions[catalog.ActionReset](nil)
	assert.Zero(t, s.Model.Position.Y)
}
