// Package showroom ties the pieces together for one window: it owns the interaction state, the scene
// and the overlay, feeds them the frame's input, and draws them.
package showroom

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/config"
	"showroom/internal/debug"
	"showroom/internal/interaction"
	"showroom/internal/logger"
	"showroom/internal/scene"
	"showroom/internal/ui"
	"showroom/internal/watch"
)

// Input is what the showroom reads from the window each frame.
type Input interface {
	MousePosition() interaction.Point
	MousePressed() bool
	MouseReleased() bool
	CursorOnScreen() bool
	Wheel() float32
	Touches() []interaction.Point
	KeyPressed(key int32) bool
}

// Showroom is the state of one running showroom. Create it with New, call Init once the window exists,
// then Update and Draw once per frame, and Close at the end.
type Showroom struct {
	cfg     config.Config
	log     *logger.Logger
	ctrl    *interaction.Controller
	scene   *scene.Scene
	ui      *ui.Engine
	menu    *ui.Menu
	overlay *debug.Overlay
	watcher *watch.File

	width, height float32
	pointer       interaction.Point
	onScreen      bool
	touches       int
	ready         bool
}

// New builds the showroom for cfg. Nothing here needs a GL context.
func New(cfg config.Config, log *logger.Logger) *Showroom {
	cfg = cfg.Clone()
	s := &Showroom{cfg: cfg, log: log}
	s.scene = scene.New(cfg.Variant, cfg.Lighting.DirectionalIntensity)
	s.ctrl = interaction.NewController(cfg.Tuning(), s.scene)
	s.ctrl.OnCategory = s.showProducts
	s.ctrl.OnMenu = s.menuChanged

	items := make([]ui.Item, 0, len(cfg.UI.Categories))
	for _, c := range cfg.UI.Categories {
		items = append(items, ui.Item{ID: c.ID, Label: c.Label})
	}
	s.menu = ui.NewMenu(items)
	s.ui = ui.New()
	s.ui.SetNodes(s.menu.Nodes())

	s.overlay = debug.New(cfg.UI.ShowFPS, cfg.UI.ShowMem)
	s.overlay.ShowState = cfg.UI.ShowState
	s.Resize(float32(cfg.Window.Width), float32(cfg.Window.Height))
	return s
}

// Init uploads the scene and loads the configured stylesheet. It is one attempt: on failure the error is
// logged and shown in the status label, and the window stays up without the 3D scene.
func (s *Showroom) Init() error {
	s.log.Logf("initializing %s showroom", s.cfg.Variant)
	if err := s.scene.Load(); err != nil {
		return s.fail(fmt.Errorf("load scene: %w", err))
	}
	if path := s.cfg.UI.Stylesheet; path != "" {
		if err := s.ui.LoadCSS(path); err != nil {
			return s.fail(fmt.Errorf("load stylesheet: %w", err))
		}
		if s.cfg.UI.Watch {
			w, err := watch.New(path)
			if err != nil {
				return s.fail(err)
			}
			w.OnError = func(err error) { s.log.Logf("stylesheet watcher: %v", err) }
			s.watcher = w
		}
	}
	s.ready = true
	s.log.Log("showroom ready")
	return nil
}

func (s *Showroom) fail(err error) error {
	s.log.Logf("init failed: %v", err)
	s.menu.SetStatus("Loading error: " + err.Error())
	return err
}

// Ready reports whether Init succeeded.
func (s *Showroom) Ready() bool {
	return s.ready
}

// Controller exposes the interaction state.
func (s *Showroom) Controller() *interaction.Controller {
	return s.ctrl
}

// Menu exposes the overlay.
func (s *Showroom) Menu() *ui.Menu {
	return s.menu
}

// Scene exposes the 3D scene.
func (s *Showroom) Scene() *scene.Scene {
	return s.scene
}

// Resize updates the camera viewport and the overlay layout. Calling it with an unchanged size is harmless.
func (s *Showroom) Resize(width, height float32) {
	s.width, s.height = width, height
	s.scene.SetViewport(width, height)
	s.ui.Layout(width, height)
}

func (s *Showroom) showProducts(category string) {
	s.log.Logf("showing products for category: %s", category)
	s.menu.Notify(ui.ProductMessage(category))
}

func (s *Showroom) menuChanged(m interaction.MenuState) {
	s.menu.SetOpen(m == interaction.MenuOpen)
	s.log.Logf("menu %s", m)
}

// Update applies the frame's input, eases the interaction state by dt seconds and writes it into the scene.
func (s *Showroom) Update(in Input, dt float32) {
	s.ui.Layout(s.width, s.height)
	if _, open := s.menu.Notice(); open {
		s.updateNotice(in)
	} else {
		s.updateKeys(in)
		if s.cfg.Input.Device == config.DeviceTouch {
			s.updateTouch(in)
		} else {
			s.updateMouse(in)
		}
	}

	f := s.ctrl.Tick(dt)
	s.scene.Apply(f)
	s.overlay.Observe(f.Yaw, f.Ambient)
	s.menu.Update(dt)
	s.reloadStylesheet()
}

// updateNotice lets only the dismissal through while a notification is open.
func (s *Showroom) updateNotice(in Input) {
	dismiss := in.KeyPressed(rl.KeyEnter) || in.KeyPressed(rl.KeyKpEnter) || in.KeyPressed(rl.KeyEscape)
	if s.cfg.Input.Device == config.DeviceTouch {
		ts := in.Touches()
		dismiss = dismiss || (len(ts) > 0 && s.touches == 0)
		s.touches = len(ts)
	} else {
		s.pointer = in.MousePosition()
		dismiss = dismiss || in.MousePressed()
	}
	if dismiss {
		s.menu.Dismiss()
	}
}

func (s *Showroom) updateKeys(in Input) {
	if in.KeyPressed(rl.KeyM) {
		s.ctrl.ToggleMenu()
	}
}

// click sends a press at p to the overlay and reports whether the overlay took it.
func (s *Showroom) click(p interaction.Point) bool {
	act, category := s.menu.Action(s.ui.NodeAt(p.X, p.Y))
	switch act {
	case ui.ActionToggle:
		s.ctrl.ToggleMenu()
	case ui.ActionCategory:
		s.ctrl.SelectCategory(category)
	case ui.ActionDismiss:
		s.menu.Dismiss()
	default:
		return false
	}
	return true
}

func (s *Showroom) updateMouse(in Input) {
	onScreen := in.CursorOnScreen()
	if s.onScreen && !onScreen {
		s.ctrl.PointerLeave()
	}
	s.onScreen = onScreen
	if !onScreen {
		return
	}
	if p := in.MousePosition(); p != s.pointer {
		s.pointer = p
		s.ctrl.PointerMove(p)
	}
	if in.MousePressed() && !s.click(s.pointer) {
		s.ctrl.PointerDown(s.pointer)
	}
	if in.MouseReleased() {
		s.ctrl.PointerUp()
	}
	if w := in.Wheel(); w != 0 {
		// raylib reports wheel-up as positive; wheel-up moves the camera closer.
		s.ctrl.Wheel(-w)
	}
}

func (s *Showroom) updateTouch(in Input) {
	ts := in.Touches()
	switch {
	case len(ts) > 0 && s.touches == 0:
		s.pointer = ts[0]
		if len(ts) != 1 || !s.click(ts[0]) {
			s.ctrl.TouchStart(ts)
		}
	case len(ts) > 0:
		s.ctrl.TouchMove(ts)
	case s.touches > 0:
		s.ctrl.TouchEnd()
	}
	s.touches = len(ts)
}

func (s *Showroom) reloadStylesheet() {
	if s.watcher == nil || !s.watcher.Changed() {
		return
	}
	if err := s.ui.LoadCSS(s.watcher.Path()); err != nil {
		s.log.Logf("stylesheet reload failed: %v", err)
		return
	}
	s.ui.Layout(s.width, s.height)
	s.log.Logf("stylesheet reloaded: %s", s.watcher.Path())
}

// Cursor returns the cursor the window should show. Hovering an overlay button keeps the default arrow.
func (s *Showroom) Cursor() interaction.Cursor {
	if _, open := s.menu.Notice(); open {
		return interaction.CursorDefault
	}
	if !s.ctrl.State().IsDragging && s.ui.NodeAt(s.pointer.X, s.pointer.Y) != nil {
		return interaction.CursorDefault
	}
	return s.ctrl.Cursor()
}

// Draw renders the scene, the overlay and the debug readouts. Call inside the host's Present.
func (s *Showroom) Draw() {
	if s.ready {
		s.scene.Draw()
	}
	s.ui.Draw()
	s.overlay.Draw()
}

// Close stops the stylesheet watcher and frees GPU resources.
func (s *Showroom) Close() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.log.Logf("stylesheet watcher: %v", err)
		}
		s.watcher = nil
	}
	s.scene.Unload()
	s.log.Log("showroom closed")
}
