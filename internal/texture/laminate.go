// Package texture generates the showroom's procedural textures as plain images. Uploading them to the GPU
// is left to the caller so this package runs without a window.
package texture

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/noise"
	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"
)

// Laminate describes a square board pattern: a base fill, a grid of seams and a streaked wood grain.
type Laminate struct {
	Size      int     // width and height in pixels
	Plank     int     // seam spacing in pixels
	SeamWidth int     // seam thickness in pixels
	Base      string  // fill, CSS hex
	Seam      string  // seam color, CSS hex
	Grain     float64 // grain opacity in [0, 1]; 0 disables grain
}

// DefaultLaminate is the room floor: brown boards with lighter seams every 64px.
func DefaultLaminate() Laminate {
	return Laminate{
		Size:      512,
		Plank:     64,
		SeamWidth: 2,
		Base:      "#8B4513",
		Seam:      "#A0522D",
		Grain:     0.12,
	}
}

// Generate renders the laminate. Invalid colors fall back to black; sizes below one pixel are raised to one.
func (l Laminate) Generate() *image.RGBA {
	size := max(l.Size, 1)
	plank := max(l.Plank, 1)
	seamW := max(l.SeamWidth, 1)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: hexColor(l.Base)}, image.Point{}, draw.Src)

	seam := &image.Uniform{C: hexColor(l.Seam)}
	for p := 0; p < size; p += plank {
		draw.Draw(img, image.Rect(p, 0, p+seamW, size), seam, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, p, size, p+seamW), seam, image.Point{}, draw.Src)
	}

	if l.Grain <= 0 {
		return img
	}
	// A short noise strip stretched vertically gives long streaks along the boards.
	strip := noise.Generate(size, max(size/16, 1), &noise.Options{Monochrome: true, NoiseFn: noise.Uniform})
	grain := transform.Resize(strip, size, size, transform.Linear)
	return blend.Opacity(img, grain, min(l.Grain, 1))
}

func hexColor(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
