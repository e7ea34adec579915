package texture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaminateWithoutGrain(t *testing.T) {
	l := DefaultLaminate()
	l.Grain = 0
	img := l.Generate()
	require.Equal(t, 512, img.Bounds().Dx())
	require.Equal(t, 512, img.Bounds().Dy())

	base := color.RGBA{0x8B, 0x45, 0x13, 255}
	seam := color.RGBA{0xA0, 0x52, 0x2D, 255}
	assert.Equal(t, seam, img.RGBAAt(0, 10), "seam on the left edge")
	assert.Equal(t, seam, img.RGBAAt(64, 100))
	assert.Equal(t, seam, img.RGBAAt(100, 65))
	assert.Equal(t, base, img.RGBAAt(10, 10))
	assert.Equal(t, base, img.RGBAAt(100, 100))
}

func TestLaminateGrainStaysNearBase(t *testing.T) {
	l := DefaultLaminate()
	l.Size = 128
	img := l.Generate()
	require.Equal(t, 128, img.Bounds().Dx())
	c := img.RGBAAt(10, 10)
	// 12% grain cannot move a channel by more than ~31 levels.
	assert.InDelta(t, 0x8B, int(c.R), 32)
	assert.InDelta(t, 0x45, int(c.G), 32)
	assert.GreaterOrEqual(t, c.A, uint8(250))
}

func TestLaminateClampsSizes(t *testing.T) {
	img := Laminate{Size: 0, Plank: 0, Base: "not a color"}.Generate()
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestHues(t *testing.T) {
	hs := Hues(6, 0.6, 0.9)
	require.Len(t, hs, 6)
	assert.Equal(t, color.RGBA{230, 92, 92, 255}, hs[0], "hue 0 is red")
	for i := 1; i < len(hs); i++ {
		assert.NotEqual(t, hs[i-1], hs[i])
	}
	assert.Empty(t, Hues(0, 1, 1))
}

func TestTone(t *testing.T) {
	assert.Equal(t, color.RGBA{0x8B, 0x45, 0x13, 255}, Tone(0))
	assert.Equal(t, Tone(0), Tone(len(WoodTones)))
	assert.Equal(t, color.RGBA{0xDA, 0xA5, 0x20, 255}, Tone(5))
}
