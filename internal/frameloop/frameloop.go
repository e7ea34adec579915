// Package frameloop drives an update/draw pair once per frame until the host closes, the context is
// cancelled, or Stop is called.
package frameloop

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Host is the window the loop runs against. All methods are called from the goroutine running Run.
type Host interface {
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// FrameTime returns the duration of the previous frame in seconds.
	FrameTime() float32
	// Present clears the back buffer, calls draw and swaps buffers. It blocks for vsync or the target FPS.
	Present(draw func())
}

// Loop runs frames. The zero value is ready to use; a stopped Loop can be run again.
type Loop struct {
	stop   atomic.Bool
	frames atomic.Uint64
}

// Stop asks the loop to return after the current frame. Safe to call from any goroutine.
func (l *Loop) Stop() {
	l.stop.Store(true)
}

// Frames returns how many frames have completed.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Run calls update(dt) then presents draw once per frame. It returns nil when the host closes or Stop is
// called, ctx.Err() when the context ends, and an error naming the frame if update or draw panics.
func (l *Loop) Run(ctx context.Context, host Host, update func(dt float32), draw func()) error {
	l.stop.Store(false)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.stop.Load() || host.ShouldClose() {
			return nil
		}
		if err := l.frame(host, update, draw); err != nil {
			return err
		}
	}
}

func (l *Loop) frame(host Host, update func(dt float32), draw func()) (err error) {
	n := l.frames.Load() + 1
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame %d: %v", n, r)
		}
	}()
	update(host.FrameTime())
	host.Present(draw)
	l.frames.Store(n)
	return nil
}
