package texture

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Hues returns n fully opaque colors with evenly spaced hues at the given saturation and value.
func Hues(n int, saturation, value float64) []color.RGBA {
	out := make([]color.RGBA, 0, max(n, 0))
	for i := 0; i < n; i++ {
		c := colorful.Hsv(float64(i)*360/float64(n), saturation, value).Clamped()
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

// WoodTones are the picture frame colors, cycled around the room.
var WoodTones = []string{"#8B4513", "#A0522D", "#CD853F", "#D2691E", "#B8860B", "#DAA520"}

// Tone returns WoodTones[i] (cycling) as a color.
func Tone(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return hexColor(WoodTones[i%len(WoodTones)])
}
