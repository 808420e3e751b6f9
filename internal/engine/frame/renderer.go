package frame

import (
	"github.com/Faultbox/skydrop/internal/engine/camera"
	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/pkg/math"
)

// Uniform names shared with the GLSL sources.
const (
	UniformModel          = "transform.model"
	UniformNormal         = "transform.normal"
	UniformViewProjection = "transform.viewProjection"
	UniformViewPosition   = "transform.viewPosition"

	UniformLightPosition      = "light.position"
	UniformLightAmbient       = "light.ambient"
	UniformLightDiffuse       = "light.diffuse"
	UniformLightSpecular      = "light.specular"
	UniformLightAttenuation   = "light.attenuation"
	UniformLightSpotDirection = "light.spotDirection"
	UniformLightSpotCosCutoff = "light.spotCosCutoff"
	UniformLightSpotExponent  = "light.spotExponent"

	UniformMaterialTexture   = "material.texture"
	UniformMaterialAmbient   = "material.ambient"
	UniformMaterialDiffuse   = "material.diffuse"
	UniformMaterialSpecular  = "material.specular"
	UniformMaterialEmission  = "material.emission"
	UniformMaterialShininess = "material.shininess"

	UniformRoughness = "roughness"
)

// UniformSink receives uniform values for the bound program.
type UniformSink interface {
	Use()
	SetMat4(name string, m math.Mat4)
	SetMat3(name string, m math.Mat3)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v math.Vec4)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Mesh issues its own draw call with the current uniforms.
type Mesh interface {
	Draw()
}

// Drawable pairs a mesh with where to put it.
type Drawable struct {
	Mesh      Mesh
	Transform Transform
}

// Projection holds the perspective parameters.
type Projection struct {
	FovY float32 // radians
	Near float32
	Far  float32
}

// DefaultProjection is a 45° vertical field of view over [0.1, 100].
func DefaultProjection() Projection {
	return Projection{FovY: math.Radians(45), Near: 0.1, Far: 100}
}

// Renderer draws one frame for a fixed lighting pipeline.
type Renderer struct {
	sink       UniformSink
	pipeline   lighting.Config
	material   lighting.Material
	roughness  float32
	projection Projection
	aspect     float32
}

// NewRenderer creates a frame renderer pushing to sink. pipeline must match
// the program behind sink; it decides which light fields are pushed.
func NewRenderer(sink UniformSink, pipeline lighting.Config, material lighting.Material, roughness float32) *Renderer {
	return &Renderer{
		sink:       sink,
		pipeline:   pipeline,
		material:   material,
		roughness:  roughness,
		projection: DefaultProjection(),
		aspect:     1,
	}
}

// SetAspect updates the projection aspect ratio. Non-positive values are ignored.
func (r *Renderer) SetAspect(aspect float32) {
	if aspect > 0 {
		r.aspect = aspect
	}
}

// Aspect returns the current aspect ratio.
func (r *Renderer) Aspect() float32 { return r.aspect }

// Pipeline returns the lighting configuration the renderer pushes for.
func (r *Renderer) Pipeline() lighting.Config { return r.pipeline }

// ViewProjection returns projection * view for v.
func (r *Renderer) ViewProjection(v camera.View) math.Mat4 {
	p := math.Perspective(r.projection.FovY, r.aspect, r.projection.Near, r.projection.Far)
	return p.Mul(v.ViewMatrix())
}

// Render pushes the per-frame uniforms once, then each drawable's transform
// followed by its draw call.
func (r *Renderer) Render(view camera.View, light lighting.Light, drawables []Drawable) {
	s := r.sink
	s.Use()

	s.SetMat4(UniformViewProjection, r.ViewProjection(view))
	s.SetVec3(UniformViewPosition, view.Position)

	r.pushLight(light.ForKind(r.pipeline.Light))
	r.pushMaterial()
	if r.pipeline.Shading == lighting.OrenNayar {
		s.SetFloat(UniformRoughness, r.roughness)
	}

	for _, d := range drawables {
		if d.Mesh == nil {
			continue
		}
		s.SetMat4(UniformModel, d.Transform.Model())
		s.SetMat3(UniformNormal, d.Transform.Normal())
		d.Mesh.Draw()
	}
}

// pushLight sends only the fields the compiled light kind reads.
func (r *Renderer) pushLight(l lighting.Light) {
	s := r.sink
	s.SetVec4(UniformLightPosition, l.Position)
	s.SetVec4(UniformLightAmbient, l.Ambient)
	s.SetVec4(UniformLightDiffuse, l.Diffuse)
	s.SetVec4(UniformLightSpecular, l.Specular)

	if r.pipeline.Light == lighting.Directional {
		return
	}
	s.SetVec3(UniformLightAttenuation, l.Attenuation)

	if r.pipeline.Light == lighting.Spot {
		s.SetVec3(UniformLightSpotDirection, l.SpotDirection)
		s.SetFloat(UniformLightSpotCosCutoff, l.SpotCosCutoff)
		s.SetFloat(UniformLightSpotExponent, l.SpotExponent)
	}
}

func (r *Renderer) pushMaterial() {
	s, m := r.sink, r.material
	s.SetInt(UniformMaterialTexture, m.Texture)
	s.SetVec4(UniformMaterialAmbient, m.Ambient)
	s.SetVec4(UniformMaterialDiffuse, m.Diffuse)
	s.SetVec4(UniformMaterialSpecular, m.Specular)
	s.SetVec4(UniformMaterialEmission, m.Emission)
	s.SetFloat(UniformMaterialShininess, m.Shininess)
}
