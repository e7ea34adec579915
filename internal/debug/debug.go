package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// refreshEvery: the text is rebuilt every N frames, not every frame.
	refreshEvery = 30
)

// Stats is one sample of what the overlay can show.
type Stats struct {
	FPS   int32
	Alloc uint64 // heap bytes
	Yaw   float32
	Light float32
}

// Overlay draws FPS, heap and interaction readouts in the top-right corner. Everything is off by default.
type Overlay struct {
	ShowFPS   bool
	ShowMem   bool
	ShowState bool

	frame uint32
	lines []string
	mem   runtime.MemStats
	yaw   float32
	light float32
}

// New returns an overlay with the given readouts enabled.
func New(showFPS, showMem bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowMem: showMem}
}

// Enabled reports whether anything is drawn.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMem || o.ShowState
}

// Observe records the eased yaw and light of the current frame.
func (o *Overlay) Observe(yaw, light float32) {
	o.yaw, o.light = yaw, light
}

// Lines formats s for the enabled readouts, top to bottom.
func (o *Overlay) Lines(s Stats) []string {
	var out []string
	if o.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", s.FPS))
	}
	if o.ShowMem {
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(s.Alloc)/(1024*1024)))
	}
	if o.ShowState {
		out = append(out, fmt.Sprintf("Yaw: %.2f  Light: %.2f", s.Yaw, s.Light))
	}
	return out
}

// Draw renders the enabled readouts. Call last, after the scene and the UI.
func (o *Overlay) Draw() {
	if !o.Enabled() {
		return
	}
	o.frame++
	if o.lines == nil || o.frame%refreshEvery == 0 {
		s := Stats{FPS: rl.GetFPS(), Yaw: o.yaw, Light: o.light}
		if o.ShowMem {
			runtime.ReadMemStats(&o.mem)
			s.Alloc = o.mem.Alloc
		}
		o.lines = o.Lines(s)
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.lines {
		x := screenW - rl.MeasureText(text, fontSize) - padding
		rl.DrawText(text, x, y, fontSize, rl.Green)
		y += lineHeight
	}
}
