package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/ui/css"
)

//go:embed showroom.css
var defaultCSS string

// DefaultStylesheet returns the built-in stylesheet.
func DefaultStylesheet() *css.Stylesheet {
	sheet, err := css.Parse(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: built-in stylesheet: %v", err))
	}
	return sheet
}

// Engine holds the current stylesheet and nodes, lays them out and draws them with raylib.
// Draw order is node order, so a parent must come before its children.
// Resolved styles are cached and only recomputed when the sheet or the node list changes.
type Engine struct {
	sheet        *css.Stylesheet
	nodes        []*Node
	cachedStyles []css.Style
	cacheValid   bool
	screenW      float32
	screenH      float32
}

// New creates an engine with the built-in stylesheet and no nodes.
func New() *Engine {
	return &Engine{sheet: DefaultStylesheet()}
}

// LoadCSS loads and parses a CSS file from path. On error the current stylesheet is kept.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *css.Stylesheet {
	return e.sheet
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Nodes returns the nodes in draw order.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// Invalidate drops cached styles; call after changing a node's Class or ID.
func (e *Engine) Invalidate() {
	e.cacheValid = false
}

// Style returns the resolved style of n, or the default style if n is not one of the engine's nodes.
func (e *Engine) Style(n *Node) css.Style {
	e.resolve()
	for i, m := range e.nodes {
		if m == n {
			return e.cachedStyles[i]
		}
	}
	return css.DefaultStyle()
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]css.Style, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = css.Resolve(e.sheet.Match(n.Class, n.ID))
	}
	e.cacheValid = true
}

// Layout sets every node's Bounds for a screen of the given size. Pixel positions are offsets inside
// the parent; percentages place the node inside the parent's free space, so 50% centres it.
func (e *Engine) Layout(screenW, screenH float32) {
	e.resolve()
	e.screenW, e.screenH = screenW, screenH
	for i, n := range e.nodes {
		st := e.cachedStyles[i]
		px, py, pw, ph := float32(0), float32(0), screenW, screenH
		if n.Parent != nil {
			b := n.Parent.Bounds
			px, py, pw, ph = b.X, b.Y, b.Width, b.Height
		}
		w := float32(st.Width)
		if st.WidthPct >= 0 {
			w = pw * float32(st.WidthPct) / 100
		}
		h := float32(st.Height)
		if st.HeightPct >= 0 {
			h = ph * float32(st.HeightPct) / 100
		}
		h = max(h, n.MinHeight)
		x := px + float32(st.Left)
		if st.LeftPct >= 0 {
			x = px + (pw-w)*float32(st.LeftPct)/100
		}
		y := py + float32(st.Top)
		if st.TopPct >= 0 {
			y = py + (ph-h)*float32(st.TopPct)/100
		}
		n.Bounds = rl.Rectangle{X: x + n.Offset.X, Y: y + n.Offset.Y, Width: w, Height: h}
	}
}

// scaled returns n's bounds after its Scale about the screen centre.
func (e *Engine) scaled(n *Node) (rl.Rectangle, float32) {
	s := n.Scale
	if s == 0 {
		s = 1
	}
	cx, cy := e.screenW/2, e.screenH/2
	b := n.Bounds
	return rl.Rectangle{
		X:      cx + (b.X-cx)*s,
		Y:      cy + (b.Y-cy)*s,
		Width:  b.Width * s,
		Height: b.Height * s,
	}, s
}

// NodeAt returns the topmost clickable node under (x, y), or nil. Uses the bounds of the last Layout.
func (e *Engine) NodeAt(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if !n.Clickable() {
			continue
		}
		if b, _ := e.scaled(n); x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height {
			return n
		}
	}
	return nil
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	c.A = uint8(float32(c.A) * min(max(alpha, 0), 1))
	return c
}

// Draw draws every visible node: background, 1px border, then text.
func (e *Engine) Draw() {
	e.resolve()
	for i, n := range e.nodes {
		if !n.visible() {
			continue
		}
		st := e.cachedStyles[i]
		alpha := st.Opacity * n.Opacity
		if alpha <= 0 {
			continue
		}
		b, s := e.scaled(n)
		x, y, w, h := int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height)
		if st.Background.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, fade(st.Background, alpha))
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, fade(st.Border, alpha))
		}
		if n.Text == "" {
			continue
		}
		fs := max(int32(float32(st.FontSize)*s), 1)
		tx, ty := x+int32(float32(st.Padding)*s), y+int32(float32(st.Padding)*s)
		if st.Center {
			tx = x + (w-rl.MeasureText(n.Text, fs))/2
			ty = y + (h-fs)/2
		}
		rl.DrawText(n.Text, tx, ty, fs, fade(st.Color, alpha))
	}
}
