// Package interaction maps pointer, touch, wheel and menu input onto the showroom's rotation, light and
// camera targets, and eases the applied values toward those targets once per frame.
// Everything here is plain state; the caller polls the window and feeds events in.
package interaction

// Point is a pointer position in viewport pixels.
type Point struct {
	X, Y float32
}

// HitTester reports whether a pointer position is over the drag surface.
type HitTester interface {
	Hit(p Point) bool
}

// HitFunc adapts a function to HitTester.
type HitFunc func(p Point) bool

func (f HitFunc) Hit(p Point) bool { return f(p) }

// Tuning holds the constants that shape the feel of the interaction.
type Tuning struct {
	MouseSensitivity float32 // radians per pixel of mouse drag
	TouchSensitivity float32 // radians per pixel of touch drag
	RotationDamping  float32 // share of the rotation gap closed per reference frame
	LightDamping     float32 // share of the light gap closed per reference frame
	ReferenceFPS     float32 // frame rate the damping factors are tuned for; 0 = per tick
	OpenIntensity    float32 // light target while the menu is open
	ClosedIntensity  float32 // light target while the menu is closed
	SecondaryFactor  float32 // secondary light = ambient * SecondaryFactor

	Zoom      bool    // wheel moves the camera (gallery)
	ZoomMin   float32
	ZoomMax   float32
	ZoomSpeed float32 // distance per wheel unit
	ZoomStart float32
}

// DefaultTuning returns the values the showroom ships with.
func DefaultTuning() Tuning {
	return Tuning{
		MouseSensitivity: 0.003,
		TouchSensitivity: 0.002,
		RotationDamping:  0.03,
		LightDamping:     0.08,
		ReferenceFPS:     60,
		OpenIntensity:    1.0,
		ClosedIntensity:  0.3,
		SecondaryFactor:  0.6,
		ZoomMin:          3,
		ZoomMax:          20,
		ZoomSpeed:        0.5,
		ZoomStart:        10,
	}
}

// State is the single mutable interaction state of a showroom.
type State struct {
	IsDragging            bool
	Menu                  MenuState
	PointerX              float32
	PointerY              float32
	CurrentRotation       float32
	TargetRotation        float32
	CurrentLightIntensity float32
	TargetLightIntensity  float32
	CameraDistance        float32
}

// IsMenuVisible reports whether the menu is open.
func (s State) IsMenuVisible() bool {
	return s.Menu == MenuOpen
}

// Frame is the eased output of one tick, ready to be written into the scene.
type Frame struct {
	Yaw            float32
	Ambient        float32
	Secondary      float32
	CameraDistance float32
}

// Controller owns the State and applies input events and ticks to it.
// It is not safe for concurrent use; all calls come from the frame loop.
type Controller struct {
	state  State
	tuning Tuning
	hit    HitTester
	cursor Cursor

	// OnCategory is called with the category identifier when a menu item is selected while the menu is open.
	OnCategory func(category string)
	// OnMenu is called after every toggle with the new state.
	OnMenu func(MenuState)
}

// NewController returns a controller with the menu open and the light at the open intensity.
// hit may be nil, in which case nothing counts as the drag surface.
func NewController(t Tuning, hit HitTester) *Controller {
	c := &Controller{tuning: t, hit: hit}
	c.state.Menu = MenuOpen
	c.state.CurrentLightIntensity = t.OpenIntensity
	c.state.TargetLightIntensity = t.OpenIntensity
	c.state.CameraDistance = clamp(t.ZoomStart, t.ZoomMin, t.ZoomMax)
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Tuning returns the controller's tuning.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Cursor returns the current cursor hint.
func (c *Controller) Cursor() Cursor {
	return c.cursor
}

func (c *Controller) overSurface(p Point) bool {
	return c.hit != nil && c.hit.Hit(p)
}

func (c *Controller) hoverCursor() Cursor {
	if c.state.Menu == MenuClosed && c.overSurface(Point{c.state.PointerX, c.state.PointerY}) {
		return CursorGrab
	}
	return CursorDefault
}

// PointerDown starts a drag when the menu is closed and p is over the surface.
// It reports whether dragging started.
func (c *Controller) PointerDown(p Point) bool {
	c.state.PointerX, c.state.PointerY = p.X, p.Y
	if c.state.Menu == MenuOpen || !c.overSurface(p) {
		return false
	}
	c.state.IsDragging = true
	c.cursor = CursorGrabbing
	return true
}

// PointerMove rotates the target by the horizontal motion while dragging, or updates the hover hint otherwise.
func (c *Controller) PointerMove(p Point) {
	lastX := c.state.PointerX
	c.state.PointerX, c.state.PointerY = p.X, p.Y
	if c.state.Menu == MenuOpen {
		c.cursor = CursorDefault
		return
	}
	if !c.state.IsDragging {
		c.cursor = c.hoverCursor()
		return
	}
	c.state.TargetRotation += (p.X - lastX) * c.tuning.MouseSensitivity
	c.cursor = CursorGrabbing
}

// PointerUp ends any drag and re-evaluates the hover hint at the last pointer position.
func (c *Controller) PointerUp() {
	c.state.IsDragging = false
	c.cursor = c.hoverCursor()
}

// PointerLeave ends any drag when the pointer leaves the view.
func (c *Controller) PointerLeave() {
	c.state.IsDragging = false
	c.cursor = CursorDefault
}

// TouchStart starts a drag for a single touch over the surface while the menu is closed.
func (c *Controller) TouchStart(touches []Point) bool {
	if c.state.Menu == MenuOpen || len(touches) != 1 {
		return false
	}
	p := touches[0]
	c.state.PointerX, c.state.PointerY = p.X, p.Y
	if !c.overSurface(p) {
		return false
	}
	c.state.IsDragging = true
	c.cursor = CursorGrabbing
	return true
}

// TouchMove rotates the target by the horizontal motion of a single touch.
func (c *Controller) TouchMove(touches []Point) {
	if !c.state.IsDragging || c.state.Menu == MenuOpen || len(touches) != 1 {
		return
	}
	p := touches[0]
	c.state.TargetRotation += (p.X - c.state.PointerX) * c.tuning.TouchSensitivity
	c.state.PointerX, c.state.PointerY = p.X, p.Y
}

// TouchEnd ends any drag.
func (c *Controller) TouchEnd() {
	c.state.IsDragging = false
	c.cursor = CursorDefault
}

// Wheel moves the camera by delta wheel units (positive = away) and clamps the distance to the zoom range.
// It does nothing unless zoom is enabled and the menu is closed.
func (c *Controller) Wheel(delta float32) {
	if !c.tuning.Zoom || c.state.Menu == MenuOpen {
		return
	}
	d := c.state.CameraDistance + delta*c.tuning.ZoomSpeed
	c.state.CameraDistance = clamp(d, c.tuning.ZoomMin, c.tuning.ZoomMax)
}

// ToggleMenu flips the menu and retargets the light.
// Opening the menu ends any drag and resets the cursor; closing it re-evaluates hover at the last pointer position.
func (c *Controller) ToggleMenu() MenuState {
	c.state.Menu = c.state.Menu.Toggle()
	switch c.state.Menu {
	case MenuClosed:
		c.state.TargetLightIntensity = c.tuning.ClosedIntensity
		c.cursor = c.hoverCursor()
	case MenuOpen:
		c.state.TargetLightIntensity = c.tuning.OpenIntensity
		c.state.IsDragging = false
		c.cursor = CursorDefault
	}
	if c.OnMenu != nil {
		c.OnMenu(c.state.Menu)
	}
	return c.state.Menu
}

// SelectCategory fires OnCategory when the menu is open. Clicks on a closed menu are swallowed.
func (c *Controller) SelectCategory(category string) bool {
	if c.state.Menu != MenuOpen {
		return false
	}
	if c.OnCategory != nil {
		c.OnCategory(category)
	}
	return true
}

// Tick eases rotation and light toward their targets for a frame of dt seconds and returns the values to apply.
func (c *Controller) Tick(dt float32) Frame {
	t := c.tuning
	kLight := FrameDamping(t.LightDamping, dt, t.ReferenceFPS)
	kRot := FrameDamping(t.RotationDamping, dt, t.ReferenceFPS)
	c.state.CurrentLightIntensity = Ease(c.state.CurrentLightIntensity, c.state.TargetLightIntensity, kLight)
	c.state.CurrentRotation = Ease(c.state.CurrentRotation, c.state.TargetRotation, kRot)
	return Frame{
		Yaw:            c.state.CurrentRotation,
		Ambient:        c.state.CurrentLightIntensity,
		Secondary:      c.state.CurrentLightIntensity * t.SecondaryFactor,
		CameraDistance: c.state.CameraDistance,
	}
}
