package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solids-viewer/internal/config"
	"solids-viewer/internal/ui"
)

// defaultCSS styles the sidebar controls. Selectors match the classes and ids
// the assembler puts on its nodes.
const defaultCSS = `
.sidebar { background: #1b1b22; }
.heading { color: #ffffff; }
.toggle  { color: #d8d8d8; padding: 6; }
.action  { background: #33334d; color: #ffffff; border: #55557a; padding: 8; height: 32; }
#error   { color: #ff6666; padding: 10; }
`

const (
	sidebarPad    = 12
	headingHeight = 40
	toggleHeight  = 26
	buttonHeight  = 36
	checkboxSize  = 16
	fontSize      = 18
	headingSize   = 24
)

// row is one laid-out sidebar child with its screen rectangle.
type row struct {
	node  *ui.Node
	rect  rl.Rectangle
	style ui.ComputedStyle
}

// Sidebar lays out the control panel's children top to bottom, draws them,
// and routes mouse clicks to the node handlers.
type Sidebar struct {
	cfg   *config.Settings
	panel *ui.Node
	sheet *ui.Stylesheet
	rows  []row
}

// NewSidebar wraps the panel node with the built-in stylesheet.
func NewSidebar(cfg *config.Settings, panel *ui.Node) *Sidebar {
	return &Sidebar{cfg: cfg, panel: panel, sheet: ui.ParseCSS(defaultCSS)}
}

// layout recomputes row rectangles from the current children. Cheap enough to
// run every frame, and it keeps layout correct when the panel is rebuilt on
// init failure.
func (sb *Sidebar) layout() {
	sb.rows = sb.rows[:0]
	y := float32(sidebarPad)
	width := float32(sb.cfg.SidebarWidth) - 2*sidebarPad
	for _, n := range sb.panel.Children {
		style := sb.sheet.Resolve(n)
		h := float32(rowHeight(n))
		if style.Height > 0 {
			h = float32(style.Height)
		}
		sb.rows = append(sb.rows, row{
			node:  n,
			rect:  rl.NewRectangle(sidebarPad, y, width, h),
			style: style,
		})
		y += h + 6
	}
}

func rowHeight(n *ui.Node) int {
	switch {
	case n.Tag == "h1":
		return headingHeight
	case n.Tag == "button":
		return buttonHeight
	case n.Tag == "p":
		return 48
	default:
		return toggleHeight
	}
}

// Update handles one frame of mouse input over the sidebar.
func (sb *Sidebar) Update() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	sb.layout()
	mouse := rl.GetMousePosition()
	for _, r := range sb.rows {
		if !rl.CheckCollisionPointRec(mouse, r.rect) {
			continue
		}
		switch r.node.Tag {
		case "button":
			if r.node.OnClick != nil {
				r.node.OnClick()
			}
		case "label":
			if input := findInput(r.node); input != nil {
				input.Checked = !input.Checked
				if input.OnChange != nil {
					input.OnChange(input.Checked)
				}
			}
		}
		return
	}
}

func findInput(n *ui.Node) *ui.Node {
	for _, c := range n.Children {
		if c.Tag == "input" {
			return c
		}
	}
	return nil
}

// Draw renders the sidebar background and every row.
func (sb *Sidebar) Draw() {
	sb.layout()
	panelStyle := sb.sheet.Resolve(sb.panel)
	rl.DrawRectangle(0, 0, sb.cfg.SidebarWidth, sb.cfg.CanvasHeight, toRL(panelStyle.Background))
	for _, r := range sb.rows {
		drawRow(r)
	}
}

func drawRow(r row) {
	x := int32(r.rect.X)
	y := int32(r.rect.Y)
	switch r.node.Tag {
	case "h1":
		rl.DrawText(r.node.TextContent(), x, y, headingSize, toRL(r.style.Color))
	case "p":
		rl.DrawText(r.node.TextContent(), x, y+int32(r.style.Padding), fontSize, toRL(r.style.Color))
	case "button":
		bg := toRL(r.style.Background)
		rl.DrawRectangleRec(r.rect, bg)
		if r.style.HasBorder {
			rl.DrawRectangleLinesEx(r.rect, 1, toRL(r.style.Border))
		}
		text := r.node.TextContent()
		tw := rl.MeasureText(text, fontSize)
		tx := x + (int32(r.rect.Width)-tw)/2
		ty := y + (int32(r.rect.Height)-fontSize)/2
		rl.DrawText(text, tx, ty, fontSize, toRL(r.style.Color))
	case "label":
		boxY := y + (int32(r.rect.Height)-checkboxSize)/2
		box := rl.NewRectangle(float32(x), float32(boxY), checkboxSize, checkboxSize)
		rl.DrawRectangleLinesEx(box, 1, toRL(r.style.Color))
		if input := findInput(r.node); input != nil && input.Checked {
			inner := rl.NewRectangle(box.X+3, box.Y+3, checkboxSize-6, checkboxSize-6)
			rl.DrawRectangleRec(inner, toRL(r.style.Color))
		}
		textY := y + (int32(r.rect.Height)-fontSize)/2
		rl.DrawText(r.node.TextContent(), x+checkboxSize+8, textY, fontSize, toRL(r.style.Color))
	}
}

func toRL(c ui.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
