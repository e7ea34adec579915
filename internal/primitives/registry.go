package primitives

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Lights is the lighting for one frame. Directions and positions are in world space.
type Lights struct {
	ViewPos        [3]float32
	Ambient        float32    // white ambient intensity
	DirToLight     [3]float32 // direction toward the directional light; need not be normalized
	DirIntensity   float32
	PointPos       [3]float32
	PointIntensity float32
}

// Registry maps mesh names to meshes generated on first use, and draws them with one lit material.
// GPU resources are created lazily so that nothing touches OpenGL before the window exists.
type Registry struct {
	gens       map[string]func() rl.Mesh
	meshes     map[string]rl.Mesh
	mtl        rl.Material
	defaultTex rl.Texture2D
	loaded     bool
	shaderErr  error
	lights     Lights
	locs       uniformLocs
}

type uniformLocs struct {
	viewPos, ambient, dirToLight, dirIntensity, pointPos, pointIntensity, useTexture, uvScale int32
}

// NewRegistry returns an empty registry. Register meshes with Define.
func NewRegistry() *Registry {
	return &Registry{
		gens:   make(map[string]func() rl.Mesh),
		meshes: make(map[string]rl.Mesh),
	}
}

// Define names a mesh generator, e.g. Define("wall", func() rl.Mesh { return rl.GenMeshCylinder(12, 8, 36) }).
// Redefining a name that was already generated keeps the existing mesh.
func (r *Registry) Define(name string, gen func() rl.Mesh) {
	r.gens[name] = gen
}

// SetLights sets the lighting for the following Draw calls. Call once per frame.
func (r *Registry) SetLights(l Lights) {
	r.lights = l
}

// Lights returns the lighting last set.
func (r *Registry) Lights() Lights {
	return r.lights
}

func (r *Registry) ensureMaterial() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		r.defaultTex = albedo.Texture
	}
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		r.shaderErr = errors.New("lit shader failed to compile")
		return
	}
	r.mtl.Shader = shader
	r.locs = uniformLocs{
		viewPos:        rl.GetShaderLocation(shader, "viewPos"),
		ambient:        rl.GetShaderLocation(shader, "ambient"),
		dirToLight:     rl.GetShaderLocation(shader, "dirToLight"),
		dirIntensity:   rl.GetShaderLocation(shader, "dirIntensity"),
		pointPos:       rl.GetShaderLocation(shader, "pointPos"),
		pointIntensity: rl.GetShaderLocation(shader, "pointIntensity"),
		useTexture:     rl.GetShaderLocation(shader, "useTexture"),
		uvScale:        rl.GetShaderLocation(shader, "uvScale"),
	}
}

// Load creates the material now instead of on the first Draw. An error means the lit shader was rejected;
// drawing still works with raylib's default shader, without lighting.
func (r *Registry) Load() error {
	r.ensureMaterial()
	return r.shaderErr
}

func (r *Registry) mesh(name string) (rl.Mesh, bool) {
	if m, ok := r.meshes[name]; ok {
		return m, true
	}
	gen, ok := r.gens[name]
	if !ok {
		return rl.Mesh{}, false
	}
	m := gen()
	r.meshes[name] = m
	return m, true
}

// setUniforms pushes the frame lighting and the per-draw texture flag.
func (r *Registry) setUniforms(textured bool, uvScale float32) {
	if r.shaderErr != nil {
		return
	}
	shader := r.mtl.Shader
	l := r.lights
	vec3 := func(loc int32, v [3]float32) {
		if loc >= 0 {
			rl.SetShaderValueV(shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3, 1)
		}
	}
	float := func(loc int32, v float32) {
		if loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3(r.locs.viewPos, l.ViewPos)
	vec3(r.locs.dirToLight, l.DirToLight)
	vec3(r.locs.pointPos, l.PointPos)
	float(r.locs.ambient, l.Ambient)
	float(r.locs.dirIntensity, l.DirIntensity)
	float(r.locs.pointIntensity, l.PointIntensity)
	useTex := float32(0)
	if textured {
		useTex = 1
	}
	float(r.locs.useTexture, useTex)
	float(r.locs.uvScale, uvScale)
}

// Draw draws the named mesh with transform and a flat tint. Unknown names are skipped.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(name string, transform rl.Matrix, tint color.RGBA) {
	r.ensureMaterial()
	m, ok := r.mesh(name)
	if !ok {
		return
	}
	albedo := r.mtl.GetMap(rl.MapAlbedo)
	albedo.Color = tint
	r.setUniforms(false, 1)
	rl.DrawMesh(m, r.mtl, transform)
}

// DrawTextured draws the named mesh with tex as albedo, its texture coordinates multiplied by uvScale.
// The texture should use repeat wrapping when uvScale > 1. Falls back to Draw for an invalid texture.
func (r *Registry) DrawTextured(name string, transform rl.Matrix, tex rl.Texture2D, uvScale float32) {
	if !rl.IsTextureValid(tex) {
		r.Draw(name, transform, rl.White)
		return
	}
	r.ensureMaterial()
	m, ok := r.mesh(name)
	if !ok {
		return
	}
	albedo := r.mtl.GetMap(rl.MapAlbedo)
	albedo.Color = rl.White
	albedo.Texture = tex
	r.setUniforms(true, uvScale)
	rl.DrawMesh(m, r.mtl, transform)
	// The material must never own a caller's texture, or Unload would free it.
	albedo.Texture = r.defaultTex
}

// Unload frees every generated mesh and the material (including its shader). The registry can be reused;
// resources are recreated on the next Draw.
func (r *Registry) Unload() {
	for name, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, name)
	}
	if r.loaded {
		rl.UnloadMaterial(r.mtl)
		r.loaded = false
		r.shaderErr = nil
	}
}

// Place returns the transform that scales, yaws (radians, about +Y) and then translates a mesh.
func Place(position, scale [3]float32, yaw float32) rl.Matrix {
	m := rl.MatrixScale(scale[0], scale[1], scale[2])
	if yaw != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(yaw))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position[0], position[1], position[2]))
}

// Then applies parent after local, e.g. Then(frameTransform, roomYaw).
func Then(local, parent rl.Matrix) rl.Matrix {
	return rl.MatrixMultiply(local, parent)
}

// litVS/litFS: ambient + one directional + one point light, double-sided.
// Uniform and attribute names follow raylib's defaults so DrawMesh fills mvp, matModel, matNormal, colDiffuse and texture0.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
uniform float uvScale;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord * uvScale;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float useTexture;
uniform vec3 viewPos;
uniform float ambient;
uniform vec3 dirToLight;
uniform float dirIntensity;
uniform vec3 pointPos;
uniform float pointIntensity;
out vec4 finalColor;
void main() {
  vec4 base = colDiffuse;
  if (useTexture > 0.5) {
    base *= texture(texture0, fragTexCoord);
  }
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) {
    N = -N;
  }
  float dir = max(dot(N, normalize(dirToLight)), 0.0) * dirIntensity;
  vec3 toPoint = pointPos - fragPosition;
  float dist = length(toPoint);
  float point = max(dot(N, toPoint / max(dist, 0.0001)), 0.0) * pointIntensity / (1.0 + 0.01 * dist * dist);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 H = normalize(normalize(dirToLight) + V);
  float highlight = pow(max(dot(N, H), 0.0), 32.0) * 0.15 * dirIntensity;
  vec3 lit = base.rgb * (0.55 * ambient + 0.35 * dir + 0.8 * point) + vec3(highlight);
  finalColor = vec4(min(lit, vec3(1.0)), base.a);
}
`
)
