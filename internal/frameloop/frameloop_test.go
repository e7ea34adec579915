package frameloop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	closeAfter int
	presented  int
	dt         float32
}

func (h *fakeHost) ShouldClose() bool {
	return h.closeAfter >= 0 && h.presented >= h.closeAfter
}

func (h *fakeHost) FrameTime() float32 { return h.dt }

func (h *fakeHost) Present(draw func()) {
	draw()
	h.presented++
}

func TestRunUntilHostCloses(t *testing.T) {
	host := &fakeHost{closeAfter: 5, dt: 0.016}
	var l Loop
	var dts []float32
	draws := 0
	err := l.Run(context.Background(), host, func(dt float32) { dts = append(dts, dt) }, func() { draws++ })
	require.NoError(t, err)
	assert.Len(t, dts, 5)
	assert.Equal(t, float32(0.016), dts[0])
	assert.Equal(t, 5, draws)
	assert.Equal(t, uint64(5), l.Frames())
}

func TestStop(t *testing.T) {
	host := &fakeHost{closeAfter: -1}
	var l Loop
	updates := 0
	err := l.Run(context.Background(), host, func(float32) {
		updates++
		if updates == 3 {
			l.Stop()
		}
	}, func() {})
	require.NoError(t, err)
	assert.Equal(t, 3, updates)

	// A stopped loop can run again.
	host.closeAfter = host.presented + 2
	require.NoError(t, l.Run(context.Background(), host, func(float32) {}, func() {}))
	assert.Equal(t, uint64(5), l.Frames())
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	host := &fakeHost{closeAfter: -1}
	var l Loop
	err := l.Run(ctx, host, func(float32) {
		if host.presented == 1 {
			cancel()
		}
	}, func() {})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, host.presented)
}

func TestPanicBecomesError(t *testing.T) {
	host := &fakeHost{closeAfter: -1}
	var l Loop
	err := l.Run(context.Background(), host, func(float32) {}, func() {
		if host.presented == 2 {
			panic("boom")
		}
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 3")
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, uint64(2), l.Frames())
}
