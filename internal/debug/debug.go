package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize = 20
	overlayPadding  = 12
	lineHeight      = overlayFontSize + 4
	// updateInterval: refresh overlay text every N frames to limit allocations.
	updateInterval = 30
)

// Debug draws optional runtime overlays (FPS, heap alloc) in the top-right
// corner. Both are off by default and driven by preferences.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays. Call last in the draw loop so the text
// sits on top of everything. Text is recomputed every updateInterval frames.
func (d *Debug) Draw(screenW int32) {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""

	y := int32(overlayPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, overlayFontSize)
	rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
}
