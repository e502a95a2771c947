package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// background is the clear color behind sidebar and canvas.
var background = rl.NewColor(16, 16, 20, 255)

// Open creates the window. Call Ready afterwards; window creation can fail
// without panicking and the viewer degrades to a static error panel.
func Open(width, height int32, title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(60)
}

// Ready reports whether the window and GL context exist.
func Ready() bool {
	return rl.IsWindowReady()
}

// Close tears the window down.
func Close() {
	rl.CloseWindow()
}

// Loop runs the main loop until the window closes. Each frame it calls update
// (input, animation stepping, off-screen repaint), then clears the screen and
// calls draw. This keeps the window plumbing separate from viewer content.
func Loop(update, draw func()) {
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
