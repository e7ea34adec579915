package css

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds resolved values used for drawing.
// LeftPct/TopPct are 0–100 for percentage positioning; -1 means Left/Top are pixels.
// WidthPct/HeightPct size a node relative to its parent the same way.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	WidthPct   int32
	HeightPct  int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32   // text offset from the node's top-left corner
	FontSize   int32
	Opacity    float32 // multiplies every alpha, 0–1
	Center     bool    // text-align: center
}

// DefaultStyle is a transparent, borderless node with white 20px text.
func DefaultStyle() Style {
	return Style{
		Color:     color.RGBA{255, 255, 255, 255},
		Border:    color.RGBA{0, 0, 0, 255},
		WidthPct:  -1,
		HeightPct: -1,
		LeftPct:   -1,
		TopPct:    -1,
		Padding:   4,
		FontSize:  20,
		Opacity:   1,
	}
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, true
}

// ParsePx parses a number with an optional "px" suffix. Unitless values are pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0–100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Style from merged properties (see Stylesheet.Match). Unparseable values are ignored.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if pct, ok := ParsePct(v); ok {
				out.WidthPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if pct, ok := ParsePct(v); ok {
				out.HeightPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "opacity":
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 32); err == nil {
				out.Opacity = float32(min(max(f, 0), 1))
			}
		case "text-align":
			out.Center = strings.TrimSpace(v) == "center"
		}
	}
	return out
}
