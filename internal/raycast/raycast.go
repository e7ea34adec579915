package raycast

import "github.com/chewxy/math32"

// epsilon is the smallest ray parameter accepted as a hit, so a ray starting on a surface
// does not report that surface.
const epsilon = 1e-4

// Vec3 is a float32 3D vector. Kept separate from raylib's vector so hit tests run without a GL context.
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Length() float32 { return math32.Sqrt(a.Dot(a)) }

// Cross returns a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns a unit vector in the direction of a. The zero vector is returned unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Camera is a perspective camera pose. FovY is the vertical field of view in degrees.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FovY     float32
}

// Viewport is the drawable area in pixels. Pointer coordinates are relative to its top-left corner.
type Viewport struct {
	Width  float32
	Height float32
}

// Ray is a half-line from Origin along the unit vector Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// ScreenRay returns the ray from the camera through the pixel (x, y).
// The pixel is mapped to normalized device coordinates in [-1, 1] with +Y up.
func ScreenRay(x, y float32, cam Camera, vp Viewport) Ray {
	w, h := vp.Width, vp.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	ndcX := (x/w)*2 - 1
	ndcY := 1 - (y/h)*2

	forward := cam.Target.Sub(cam.Position).Normalize()
	up := cam.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	tanHalf := math32.Tan(cam.FovY * math32.Pi / 360)
	aspect := w / h
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(trueUp.Scale(ndcY * tanHalf))
	return Ray{Origin: cam.Position, Direction: dir.Normalize()}
}

// Cylinder is an open (uncapped) cylinder with a vertical axis. Center is the midpoint of the axis.
// Both the inner and outer faces are hittable.
type Cylinder struct {
	Center Vec3
	Radius float32
	Height float32
}

// Intersect returns the nearest ray parameter t > 0 at which r meets the cylinder wall.
func (c Cylinder) Intersect(r Ray) (t float32, ok bool) {
	if c.Radius <= 0 || c.Height <= 0 {
		return 0, false
	}
	o := r.Origin.Sub(c.Center)
	d := r.Direction
	a := d.X*d.X + d.Z*d.Z
	if a < 1e-12 {
		// Parallel to the axis: never crosses the wall.
		return 0, false
	}
	b := 2 * (o.X*d.X + o.Z*d.Z)
	cc := o.X*o.X + o.Z*o.Z - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	half := c.Height / 2
	for _, cand := range [2]float32{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if cand <= epsilon {
			continue
		}
		y := o.Y + d.Y*cand
		if y >= -half && y <= half {
			return cand, true
		}
	}
	return 0, false
}

// Hits reports whether the ray through pixel (x, y) intersects the cylinder.
// It is a pure function of its arguments and safe to call on every pointer move.
func Hits(x, y float32, cam Camera, vp Viewport, surface Cylinder) bool {
	_, ok := surface.Intersect(ScreenRay(x, y, cam, vp))
	return ok
}
