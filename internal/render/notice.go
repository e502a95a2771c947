package render

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	noticeDim    = rl.NewColor(0, 0, 0, 140)
	noticeBg     = rl.NewColor(38, 38, 50, 255)
	noticeBorder = rl.NewColor(110, 110, 150, 255)
	noticeHint   = rl.NewColor(160, 160, 170, 255)
)

// NoticeBox queues user-visible notices and shows them one at a time as a
// modal panel. While a notice is visible the caller suppresses all other
// input, which is what makes the notice "blocking".
type NoticeBox struct {
	queue []string
}

// NewNoticeBox returns an empty queue.
func NewNoticeBox() *NoticeBox {
	return &NoticeBox{}
}

// Push enqueues a notice. Safe to call from any UI callback.
func (nb *NoticeBox) Push(msg string) {
	nb.queue = append(nb.queue, msg)
}

// Active reports whether a notice is currently shown.
func (nb *NoticeBox) Active() bool {
	return len(nb.queue) > 0
}

// Update dismisses the front notice on Enter, Space, or a mouse click. The
// caller must skip the rest of its frame whenever a notice was active at frame
// start, so the dismissing press is not seen by any control underneath.
func (nb *NoticeBox) Update() {
	if !nb.Active() {
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		nb.Dismiss()
	}
}

// Dismiss removes the front notice; the next queued one, if any, shows on the
// following frame.
func (nb *NoticeBox) Dismiss() {
	if nb.Active() {
		nb.queue = nb.queue[1:]
	}
}

// Draw renders the dimming layer and the front notice centered on screen.
func (nb *NoticeBox) Draw(screenW, screenH int32) {
	if !nb.Active() {
		return
	}
	rl.DrawRectangle(0, 0, screenW, screenH, noticeDim)

	lines := strings.Split(nb.queue[0], "\n")
	width := int32(0)
	for _, line := range lines {
		if w := rl.MeasureText(line, fontSize); w > width {
			width = w
		}
	}
	const pad = 24
	const lineHeight = fontSize + 6
	boxW := width + 2*pad
	boxH := int32(len(lines))*lineHeight + 2*pad + lineHeight
	x := (screenW - boxW) / 2
	y := (screenH - boxH) / 2

	box := rl.NewRectangle(float32(x), float32(y), float32(boxW), float32(boxH))
	rl.DrawRectangleRec(box, noticeBg)
	rl.DrawRectangleLinesEx(box, 1, noticeBorder)
	for i, line := range lines {
		rl.DrawText(line, x+pad, y+pad+int32(i)*lineHeight, fontSize, rl.White)
	}
	hint := "press Enter"
	hw := rl.MeasureText(hint, fontSize-4)
	rl.DrawText(hint, x+boxW-pad-hw, y+boxH-pad-fontSize+4, fontSize-4, noticeHint)
}
