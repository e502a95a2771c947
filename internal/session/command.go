package session

import "github.com/chewxy/math32"

// Command is one keyboard-driven mutation of the shared model transform. The
// render layer maps key codes to commands; the session applies them.
type Command int

const (
	CmdNone Command = iota

	CmdYawLeft
	CmdYawRight
	CmdPitchUp
	CmdPitchDown
	CmdRollLeft
	CmdRollRight

	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdMoveForward
	CmdMoveBack

	CmdScaleUp
	CmdScaleDown
)

// Apply mutates the shared transform by the configured increment for cmd and
// reports whether the command was recognized. Recognized commands request an
// immediate repaint when the scene is idle; animating scenes repaint once per
// frame regardless.
func (s *Session) Apply(cmd Command) bool {
	rot := s.cfg.RotationStep
	mov := s.cfg.TranslationStep
	scl := s.cfg.ScaleStep

	switch cmd {
	case CmdYawLeft:
		s.Model.Rotation.Y = wrapAngle(s.Model.Rotation.Y - rot)
	case CmdYawRight:
		s.Model.Rotation.Y = wrapAngle(s.Model.Rotation.Y + rot)
	case CmdPitchUp:
		s.Model.Rotation.X = wrapAngle(s.Model.Rotation.X - rot)
	case CmdPitchDown:
		s.Model.Rotation.X = wrapAngle(s.Model.Rotation.X + rot)
	case CmdRollLeft:
		s.Model.Rotation.Z = wrapAngle(s.Model.Rotation.Z - rot)
	case CmdRollRight:
		s.Model.Rotation.Z = wrapAngle(s.Model.Rotation.Z + rot)
	case CmdMoveLeft:
		s.Model.Position.X -= mov
	case CmdMoveRight:
		s.Model.Position.X += mov
	case CmdMoveUp:
		s.Model.Position.Y += mov
	case CmdMoveDown:
		s.Model.Position.Y -= mov
	case CmdMoveForward:
		s.Model.Position.Z -= mov
	case CmdMoveBack:
		s.Model.Position.Z += mov
	case CmdScaleUp:
		s.scaleBy(scl)
	case CmdScaleDown:
		s.scaleBy(-scl)
	default:
		return false
	}
	if !s.animated {
		s.dirty = true
	}
	return true
}

func (s *Session) scaleBy(delta float32) {
	min := s.cfg.MinScale
	s.Model.Scale.X = math32.Max(min, s.Model.Scale.X+delta)
	s.Model.Scale.Y = math32.Max(min, s.Model.Scale.Y+delta)
	s.Model.Scale.Z = math32.Max(min, s.Model.Scale.Z+delta)
}
