package graphics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"showroom/internal/frameloop"
	"showroom/internal/interaction"
)

var _ frameloop.Host = (*Window)(nil)

func TestMouseCursor(t *testing.T) {
	assert.Equal(t, int32(rl.MouseCursorDefault), mouseCursor(interaction.CursorDefault))
	assert.Equal(t, int32(rl.MouseCursorPointingHand), mouseCursor(interaction.CursorGrab))
	assert.Equal(t, int32(rl.MouseCursorResizeEW), mouseCursor(interaction.CursorGrabbing))
}
