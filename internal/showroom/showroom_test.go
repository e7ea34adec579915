package showroom

import (
	"errors"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/config"
	"showroom/internal/interaction"
	"showroom/internal/logger"
)

const dt = float32(1) / 60

// fakeInput is one frame of input. Edge-triggered fields are cleared by step.
type fakeInput struct {
	pos      interaction.Point
	pressed  bool
	released bool
	offBoard bool
	wheel    float32
	touches  []interaction.Point
	keys     map[int32]bool
}

func (f *fakeInput) MousePosition() interaction.Point { return f.pos }
func (f *fakeInput) MousePressed() bool { return f.pressed }
func (f *fakeInput) MouseReleased() bool { return f.released }
func (f *fakeInput) CursorOnScreen() bool { return !f.offBoard }
func (f *fakeInput) Wheel() float32 { return f.wheel }
func (f *fakeInput) Touches() []interaction.Point { return f.touches }
func (f *fakeInput) KeyPressed(key int32) bool { return f.keys[key] }

func step(s *Showroom, in *fakeInput) {
	s.Update(in, dt)
	in.pressed, in.released, in.wheel, in.keys = false, false, 0, nil
}

func press(s *Showroom, in *fakeInput, p interaction.Point) {
	in.pos, in.pressed = p, true
	step(s, in)
}

func key(s *Showroom, in *fakeInput, k int32) {
	in.keys = map[int32]bool{k: true}
	step(s, in)
}

func newShowroom(t *testing.T, mutate func(*config.Config)) (*Showroom, *logger.Logger) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	log := logger.New(filepath.Join(t.TempDir(), "showroom.txt"))
	return New(cfg, log), log
}

func itemCentre(s *Showroom, i int) interaction.Point {
	var items []interaction.Point
	for _, n := range s.ui.Nodes() {
		if n.Class == "menu-item" {
			b := n.Bounds
			items = append(items, interaction.Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2})
		}
	}
	return items[i]
}

var toggleButton = interaction.Point{X: 640, Y: 660}

func TestCategoryClickNotifies(t *testing.T) {
	s, log := newShowroom(t, nil)
	in := &fakeInput{}

	press(s, in, itemCentre(s, 0))
	msg, open := s.Menu().Notice()
	require.True(t, open)
	assert.Equal(t, "Showing products for category: furniture", msg)
	assert.Contains(t, log.Last(), "showing products for category: furniture")

	key(s, in, rl.KeyM)
	assert.True(t, s.Controller().State().IsMenuVisible(), "notification swallows the toggle key")

	key(s, in, rl.KeyEscape)
	_, open = s.Menu().Notice()
	assert.False(t, open)
}

func TestNotificationDismissedByClick(t *testing.T) {
	s, _ := newShowroom(t, nil)
	in := &fakeInput{}
	press(s, in, itemCentre(s, 2))
	_, open := s.Menu().Notice()
	require.True(t, open)

	press(s, in, interaction.Point{X: 5, Y: 5})
	_, open = s.Menu().Notice()
	assert.False(t, open)
	assert.True(t, s.Controller().State().IsMenuVisible())
}

func TestToggleThenDrag(t *testing.T) {
	s, log := newShowroom(t, nil)
	in := &fakeInput{}

	press(s, in, interaction.Point{X: 200, Y: 360})
	assert.False(t, s.Controller().State().IsDragging, "no drag while the menu is open")
	in.released = true
	step(s, in)

	press(s, in, toggleButton)
	st := s.Controller().State()
	require.False(t, st.IsMenuVisible())
	assert.Equal(t, float32(0.3), st.TargetLightIntensity)
	assert.False(t, s.Menu().Open())
	assert.Contains(t, log.Last(), "menu closed")
	in.released = true
	step(s, in)

	press(s, in, interaction.Point{X: 200, Y: 360})
	require.True(t, s.Controller().State().IsDragging)
	assert.Equal(t, interaction.CursorGrabbing, s.Cursor())

	in.pos = interaction.Point{X: 300, Y: 360}
	step(s, in)
	assert.InDelta(t, 0.3, s.Controller().State().TargetRotation, 1e-5)
	assert.Greater(t, s.Scene().Yaw(), float32(0))

	in.released = true
	step(s, in)
	assert.False(t, s.Controller().State().IsDragging)
	assert.Equal(t, interaction.CursorGrab, s.Cursor())

	in.pos = toggleButton
	step(s, in)
	assert.Equal(t, interaction.CursorDefault, s.Cursor(), "default arrow over the toggle button")
}

func TestLeavingWindowEndsDrag(t *testing.T) {
	s, _ := newShowroom(t, nil)
	in := &fakeInput{}
	key(s, in, rl.KeyM)
	press(s, in, interaction.Point{X: 200, Y: 360})
	require.True(t, s.Controller().State().IsDragging)

	in.offBoard = true
	step(s, in)
	assert.False(t, s.Controller().State().IsDragging)
	assert.Equal(t, interaction.CursorDefault, s.Cursor())
}

func TestGalleryWheelZoom(t *testing.T) {
	s, _ := newShowroom(t, func(c *config.Config) { c.Variant = config.VariantGallery })
	in := &fakeInput{pos: interaction.Point{X: 10, Y: 10}}

	in.wheel = 2
	step(s, in)
	assert.Equal(t, float32(10), s.Scene().Camera.Position.Z, "menu open: wheel ignored")

	key(s, in, rl.KeyM)
	in.wheel = 2
	step(s, in)
	assert.Equal(t, float32(9), s.Scene().Camera.Position.Z)

	for i := 0; i < 40; i++ {
		in.wheel = 1
		step(s, in)
	}
	assert.Equal(t, float32(3), s.Scene().Camera.Position.Z)
}

func TestTouchDrag(t *testing.T) {
	s, _ := newShowroom(t, func(c *config.Config) { c.Input.Device = config.DeviceTouch })
	in := &fakeInput{}
	key(s, in, rl.KeyM)

	in.touches = []interaction.Point{{X: 200, Y: 360}}
	step(s, in)
	require.True(t, s.Controller().State().IsDragging)
	in.touches = []interaction.Point{{X: 250, Y: 360}}
	step(s, in)
	assert.InDelta(t, 0.1, s.Controller().State().TargetRotation, 1e-5)

	in.touches = nil
	step(s, in)
	assert.False(t, s.Controller().State().IsDragging)

	in.touches = []interaction.Point{{X: 200, Y: 360}, {X: 400, Y: 360}}
	step(s, in)
	assert.False(t, s.Controller().State().IsDragging, "two fingers do not drag")
}

func TestTouchTapSelectsCategory(t *testing.T) {
	s, _ := newShowroom(t, func(c *config.Config) { c.Input.Device = config.DeviceTouch })
	in := &fakeInput{}
	in.touches = []interaction.Point{itemCentre(s, 1)}
	step(s, in)
	msg, open := s.Menu().Notice()
	require.True(t, open)
	assert.Equal(t, "Showing products for category: lighting", msg)

	// Still the same touch: no dismissal until a new one starts.
	step(s, in)
	_, open = s.Menu().Notice()
	assert.True(t, open)

	in.touches = nil
	step(s, in)
	in.touches = []interaction.Point{{X: 5, Y: 5}}
	step(s, in)
	_, open = s.Menu().Notice()
	assert.False(t, open)
}

func TestInitFailureShowsStatus(t *testing.T) {
	s, log := newShowroom(t, nil)
	err := s.fail(errors.New("load scene: boom"))
	assert.EqualError(t, err, "load scene: boom")
	assert.Equal(t, "Loading error: load scene: boom", s.Menu().Status())
	assert.Contains(t, log.Last(), "init failed: load scene: boom")
	assert.False(t, s.Ready())
}

func TestLightEasesAfterToggle(t *testing.T) {
	s, _ := newShowroom(t, nil)
	in := &fakeInput{}
	key(s, in, rl.KeyM)
	prev := s.Scene().Lights().Ambient
	for i := 0; i < 30; i++ {
		step(s, in)
		cur := s.Scene().Lights().Ambient
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Less(t, prev, float32(1))
	assert.Greater(t, prev, float32(0.3))
	assert.InDelta(t, prev*0.6, s.Scene().Lights().PointIntensity, 1e-5)
}
