package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEase(t *testing.T) {
	assert.Equal(t, float32(0.5), Ease(0, 1, 0.5))
	assert.Equal(t, float32(1), Ease(1, 1, 0.03))
	assert.InDelta(t, -0.03, Ease(0, -1, 0.03), 1e-7)
}

func TestFrameDamping(t *testing.T) {
	tests := []struct {
		name       string
		k, dt, fps float32
		want       float32
	}{
		{"no reference rate", 0.03, 1.0 / 30, 0, 0.03},
		{"zero dt", 0.03, 0, 60, 0.03},
		{"one reference frame", 0.03, 1.0 / 60, 60, 0.03},
		{"two reference frames", 0.5, 1.0 / 30, 60, 0.75},
		{"half a reference frame", 0.75, 1.0 / 120, 60, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FrameDamping(tt.k, tt.dt, tt.fps), 1e-5)
		})
	}
}

func TestFrameDampingIsRateIndependent(t *testing.T) {
	// One second at 30 fps and at 144 fps close the same share of the gap.
	run := func(fps int) float32 {
		v := float32(0)
		k := FrameDamping(0.08, 1/float32(fps), 60)
		for i := 0; i < fps; i++ {
			v = Ease(v, 1, k)
		}
		return v
	}
	assert.InDelta(t, run(30), run(144), 1e-3)
}

func TestMenuStateString(t *testing.T) {
	assert.Equal(t, "open", MenuOpen.String())
	assert.Equal(t, "closed", MenuClosed.String())
	assert.Equal(t, MenuOpen, MenuOpen.Toggle().Toggle())
	assert.Equal(t, "grabbing", CursorGrabbing.String())
}
