package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/interaction"
)

// Input polls raylib's mouse, touch and keyboard state for the current frame.
type Input struct{}

func (Input) MousePosition() interaction.Point {
	p := rl.GetMousePosition()
	return interaction.Point{X: p.X, Y: p.Y}
}

func (Input) MousePressed() bool { return rl.IsMouseButtonPressed(rl.MouseButtonLeft) }
func (Input) MouseReleased() bool { return rl.IsMouseButtonReleased(rl.MouseButtonLeft) }
func (Input) CursorOnScreen() bool { return rl.IsCursorOnScreen() }
func (Input) Wheel() float32 { return rl.GetMouseWheelMove() }

// Touches returns the active touch points; empty when nothing touches the screen.
func (Input) Touches() []interaction.Point {
	n := rl.GetTouchPointCount()
	if n <= 0 {
		return nil
	}
	out := make([]interaction.Point, 0, n)
	for i := int32(0); i < n; i++ {
		p := rl.GetTouchPosition(i)
		out = append(out, interaction.Point{X: p.X, Y: p.Y})
	}
	return out
}

func (Input) KeyPressed(key int32) bool {
	return rl.IsKeyPressed(key)
}
