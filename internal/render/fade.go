package render

import (
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"solids-viewer/internal/config"
)

// Fade ramps the whole window in from black at startup. It runs whether
// initialization succeeded or ended in the static error panel.
type Fade struct {
	step     float32
	interval time.Duration
	opacity  float32
	last     time.Time
}

// NewFade starts fully opaque (black) at the configured step/interval.
func NewFade(cfg *config.Settings) *Fade {
	return &Fade{
		step:     cfg.FadeStep,
		interval: time.Duration(cfg.FadeIntervalMS) * time.Millisecond,
		last:     time.Now(),
	}
}

// Update advances the fade by one step whenever the interval has elapsed.
func (f *Fade) Update() {
	if f.opacity >= 1 {
		return
	}
	now := time.Now()
	if now.Sub(f.last) < f.interval {
		return
	}
	f.opacity = math32.Min(1, f.opacity+f.step)
	f.last = now
}

// Draw covers the window with the remaining black overlay.
func (f *Fade) Draw(screenW, screenH int32) {
	if f.opacity >= 1 {
		return
	}
	alpha := uint8((1 - f.opacity) * 255)
	rl.DrawRectangle(0, 0, screenW, screenH, rl.NewColor(0, 0, 0, alpha))
}
