package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solids-viewer/internal/session"
)

// keyCommands is the fixed keyboard binding: arrows and PgUp/PgDn rotate the
// shared model, WASD plus Z/X translate it, E/R scale it. Ordered so
// simultaneous keys apply deterministically.
var keyCommands = []struct {
	key int32
	cmd session.Command
}{
	{rl.KeyLeft, session.CmdYawLeft},
	{rl.KeyRight, session.CmdYawRight},
	{rl.KeyUp, session.CmdPitchUp},
	{rl.KeyDown, session.CmdPitchDown},
	{rl.KeyPageUp, session.CmdRollLeft},
	{rl.KeyPageDown, session.CmdRollRight},
	{rl.KeyA, session.CmdMoveLeft},
	{rl.KeyD, session.CmdMoveRight},
	{rl.KeyW, session.CmdMoveUp},
	{rl.KeyS, session.CmdMoveDown},
	{rl.KeyZ, session.CmdMoveForward},
	{rl.KeyX, session.CmdMoveBack},
	{rl.KeyE, session.CmdScaleUp},
	{rl.KeyR, session.CmdScaleDown},
}

// PollCommands applies every bound key currently held to the session. Held
// keys repeat once per frame, matching continuous rotation/translation.
func PollCommands(s *session.Session) {
	for _, kc := range keyCommands {
		if rl.IsKeyDown(kc.key) {
			s.Apply(kc.cmd)
		}
	}
}
