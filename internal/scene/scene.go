package scene

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/config"
	"showroom/internal/interaction"
	"showroom/internal/primitives"
	"showroom/internal/raycast"
	"showroom/internal/texture"
)

// Room dimensions. The wall is centred on the origin, so the floor sits at -roomHeight/2.
const (
	roomRadius   = 12
	roomHeight   = 8
	frameRadius  = 11.9
	frameY       = 0.5
	frameCount   = 8
	floorSize    = 30
	floorUVScale = 8
	fixtureY     = 3.8
)

// Gallery layout.
const (
	ringRadius   = 5
	ringHeight   = 3
	cubeCount    = 8
	cubeSize     = 1
	galleryFloor = -1
)

var (
	wallColor    = color.RGBA{0xF5, 0xF5, 0xDC, 255}
	ceilingColor = color.RGBA{0xE8, 0xE8, 0xE8, 255}
	fixtureColor = color.RGBA{0xCC, 0xCC, 0xCC, 255}
	canvasColor  = color.RGBA{0xF8, 0xF8, 0xF8, 255}
	ringColor    = color.RGBA{255, 255, 255, 90}
	slateColor   = color.RGBA{0x33, 0x33, 0x33, 255}

	dirLightPos   = [3]float32{5, 10, 7}
	pointLightPos = [3]float32{0, 3, 0}
)

// Scene is the 3D world of one variant: the rotating group, its lights and the surface that can be dragged.
// Meshes and textures are uploaded on Load, which needs the window's GL context.
type Scene struct {
	Variant string
	Camera  rl.Camera3D
	Surface raycast.Cylinder

	reg          *primitives.Registry
	floor        rl.Texture2D
	yaw          float32
	dirIntensity float32
	viewport     raycast.Viewport
	cubeColors   []color.RGBA
	frameTones   []color.RGBA
}

// New returns the scene for a config variant. dirIntensity is the fixed directional light.
func New(variant string, dirIntensity float32) *Scene {
	s := &Scene{
		Variant:      variant,
		reg:          primitives.NewRegistry(),
		dirIntensity: dirIntensity,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Projection = rl.CameraPerspective
	if variant == config.VariantGallery {
		s.Camera.Position = rl.NewVector3(0, 1.5, 10)
		s.Camera.Target = rl.NewVector3(0, 0, 0)
		s.Camera.Fovy = 75
		s.Surface = raycast.Cylinder{Radius: ringRadius, Height: ringHeight}
		s.cubeColors = texture.Hues(cubeCount, 0.6, 0.9)
	} else {
		s.Camera.Position = rl.NewVector3(0, 1.5, 0)
		s.Camera.Target = rl.NewVector3(0, 1.5, -1)
		s.Camera.Fovy = 75
		s.Surface = raycast.Cylinder{Radius: roomRadius, Height: roomHeight}
		for i := 0; i < frameCount; i++ {
			s.frameTones = append(s.frameTones, texture.Tone(i))
		}
	}
	s.define()
	s.reg.SetLights(primitives.Lights{
		DirToLight:     dirLightPos,
		DirIntensity:   dirIntensity,
		PointPos:       pointLightPos,
		Ambient:        1,
		PointIntensity: 0.6,
	})
	return s
}

func (s *Scene) define() {
	s.reg.Define("cube", func() rl.Mesh { return rl.GenMeshCube(1, 1, 1) })
	s.reg.Define("floor", func() rl.Mesh { return rl.GenMeshPlane(floorSize, floorSize, 1, 1) })
	// Slightly taller than the room so the generated caps sit behind the floor and ceiling.
	s.reg.Define("wall", func() rl.Mesh { return rl.GenMeshCylinder(roomRadius, roomHeight+0.02, 36) })
	s.reg.Define("ceiling", func() rl.Mesh { return rl.GenMeshPoly(32, roomRadius) })
	s.reg.Define("fixture", func() rl.Mesh { return rl.GenMeshCone(0.8, 0.2, 16) })
}

// Load uploads the shader and, for the room, the procedural floor texture.
func (s *Scene) Load() error {
	if err := s.reg.Load(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if s.Variant == config.VariantGallery {
		return nil
	}
	img := rl.NewImageFromImage(texture.DefaultLaminate().Generate())
	s.floor = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(s.floor) {
		return fmt.Errorf("scene: floor texture upload failed")
	}
	rl.SetTextureWrap(s.floor, rl.WrapRepeat)
	rl.SetTextureFilter(s.floor, rl.FilterBilinear)
	return nil
}

// SetViewport records the drawable size used by Hit. Call whenever the window is resized.
func (s *Scene) SetViewport(width, height float32) {
	s.viewport = raycast.Viewport{Width: width, Height: height}
}

func (s *Scene) rayCamera() raycast.Camera {
	v := func(x rl.Vector3) raycast.Vec3 { return raycast.V3(x.X, x.Y, x.Z) }
	return raycast.Camera{
		Position: v(s.Camera.Position),
		Target:   v(s.Camera.Target),
		Up:       v(s.Camera.Up),
		FovY:     s.Camera.Fovy,
	}
}

// Hit reports whether p is over the drag surface. The surface is centred on the rotation axis,
// so the group's yaw does not change the answer.
func (s *Scene) Hit(p interaction.Point) bool {
	return raycast.Hits(p.X, p.Y, s.rayCamera(), s.viewport, s.Surface)
}

// Apply writes one eased frame into the scene.
func (s *Scene) Apply(f interaction.Frame) {
	s.yaw = f.Yaw
	l := s.reg.Lights()
	l.Ambient = f.Ambient
	l.PointIntensity = f.Secondary
	l.DirIntensity = s.dirIntensity
	l.ViewPos = [3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}
	s.reg.SetLights(l)
	if s.Variant == config.VariantGallery && f.CameraDistance > 0 {
		s.Camera.Position.Z = f.CameraDistance
	}
}

// Yaw returns the group rotation last applied.
func (s *Scene) Yaw() float32 {
	return s.yaw
}

// Lights returns the lighting last applied.
func (s *Scene) Lights() primitives.Lights {
	return s.reg.Lights()
}

// Draw renders the scene. Call inside Present, before the 2D overlay.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	rl.DisableBackfaceCulling()
	group := rl.MatrixRotateY(s.yaw)
	if s.Variant == config.VariantGallery {
		s.drawGallery(group)
	} else {
		s.drawRoom(group)
	}
	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

func (s *Scene) drawRoom(group rl.Matrix) {
	floorY := float32(-roomHeight / 2)
	s.reg.DrawTextured("floor", primitives.Then(primitives.Place([3]float32{0, floorY, 0}, [3]float32{1, 1, 1}, 0), group), s.floor, floorUVScale)
	s.reg.Draw("wall", primitives.Then(rl.MatrixTranslate(0, floorY-0.01, 0), group), wallColor)
	s.reg.Draw("ceiling", primitives.Then(rl.MatrixTranslate(0, roomHeight/2, 0), group), ceilingColor)
	s.reg.Draw("fixture", primitives.Then(rl.MatrixTranslate(0, fixtureY-0.1, 0), group), fixtureColor)
	for i, p := range framePlacements(frameCount, frameRadius, frameY) {
		frame := primitives.Place(p.Position, [3]float32{2.5, 1.9, 0.15}, p.Yaw)
		s.reg.Draw("cube", primitives.Then(frame, group), s.frameTones[i%len(s.frameTones)])
		// Canvas sits just in front of the frame, on the side facing the room.
		canvas := rl.MatrixMultiply(rl.MatrixScale(2.09, 1.52, 0.01), rl.MatrixTranslate(0, 0, 0.08))
		canvas = rl.MatrixMultiply(canvas, rl.MatrixRotateY(p.Yaw))
		canvas = rl.MatrixMultiply(canvas, rl.MatrixTranslate(p.Position[0], p.Position[1], p.Position[2]))
		s.reg.Draw("cube", primitives.Then(canvas, group), canvasColor)
	}
}

func (s *Scene) drawGallery(group rl.Matrix) {
	floor := primitives.Place([3]float32{0, galleryFloor, 0}, [3]float32{1, 1, 1}, 0)
	s.reg.Draw("floor", floor, slateColor)
	for i, p := range framePlacements(cubeCount, ringRadius, 0) {
		cube := primitives.Place(p.Position, [3]float32{cubeSize, cubeSize, cubeSize}, p.Yaw)
		s.reg.Draw("cube", primitives.Then(cube, group), s.cubeColors[i])
	}
	rl.DrawCylinderWires(rl.NewVector3(0, -ringHeight/2.0, 0), ringRadius, ringRadius, ringHeight, 36, ringColor)
}

// Unload frees GPU resources. Safe to call more than once.
func (s *Scene) Unload() {
	s.reg.Unload()
	if rl.IsTextureValid(s.floor) {
		rl.UnloadTexture(s.floor)
		s.floor = rl.Texture2D{}
	}
}

type placement struct {
	Position [3]float32
	Yaw      float32 // turns local +Z toward the axis
}

// framePlacements spaces n items evenly on a circle of radius r at height y, each facing the centre.
func framePlacements(n int, r, y float32) []placement {
	out := make([]placement, 0, n)
	for i := 0; i < n; i++ {
		a := float32(i) / float32(n) * 2 * math32.Pi
		c, sn := math32.Cos(a), math32.Sin(a)
		out = append(out, placement{
			Position: [3]float32{c * r, y, sn * r},
			Yaw:      math32.Atan2(-c, -sn),
		})
	}
	return out
}
