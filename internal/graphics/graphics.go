package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/config"
	"showroom/internal/interaction"
)

var background = rl.NewColor(0x22, 0x22, 0x22, 255)

// Window is the raylib window. It implements frameloop.Host; all methods must be called from the
// goroutine that called Open.
type Window struct {
	width, height int32
	resized       bool
	cursor        interaction.Cursor
}

// Open creates the window described by cfg. ESC does not close it; it dismisses notifications instead.
func Open(cfg config.WindowConfig) *Window {
	flags := uint32(rl.FlagWindowResizable)
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, cfg.Title)
	rl.SetExitKey(rl.KeyNull)
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(cfg.TargetFPS)
	}
	win := &Window{cursor: interaction.CursorDefault}
	win.width, win.height = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	return win
}

// Ready reports whether the window and its GL context were created.
func (w *Window) Ready() bool {
	return rl.IsWindowReady()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) FrameTime() float32 {
	return rl.GetFrameTime()
}

// Present clears to the background colour, calls draw and swaps buffers.
func (w *Window) Present(draw func()) {
	rl.BeginDrawing()
	rl.ClearBackground(background)
	draw()
	rl.EndDrawing()
}

// Size polls the drawable size. resized is true once per change, so callers can update cameras and layout.
func (w *Window) Size() (width, height float32, resized bool) {
	cw, ch := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if cw != w.width || ch != w.height {
		w.width, w.height = cw, ch
		w.resized = true
	}
	resized, w.resized = w.resized, false
	return float32(w.width), float32(w.height), resized
}

// SetCursor changes the mouse cursor shape; repeated calls with the same cursor are free.
func (w *Window) SetCursor(c interaction.Cursor) {
	if c == w.cursor {
		return
	}
	w.cursor = c
	rl.SetMouseCursor(mouseCursor(c))
}

func mouseCursor(c interaction.Cursor) int32 {
	switch c {
	case interaction.CursorGrab:
		return rl.MouseCursorPointingHand
	case interaction.CursorGrabbing:
		return rl.MouseCursorResizeEW
	default:
		return rl.MouseCursorDefault
	}
}

// Close destroys the window and its GL context.
func (w *Window) Close() {
	rl.CloseWindow()
}
