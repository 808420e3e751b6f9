package frame

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydrop/internal/engine/camera"
	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/pkg/math"
)

// recorder logs every call in order and keeps the last value per uniform.
type recorder struct {
	log    []string
	values map[string]any
}

func newRecorder() *recorder {
	return &recorder{values: make(map[string]any)}
}

func (r *recorder) set(name string, v any) {
	r.log = append(r.log, name)
	r.values[name] = v
}

func (r *recorder) Use() { r.log = append(r.log, "use") }
func (r *recorder) SetMat4(name string, m math.Mat4) { r.set(name, m) }
func (r *recorder) SetMat3(name string, m math.Mat3) { r.set(name, m) }
func (r *recorder) SetVec3(name string, v math.Vec3) { r.set(name, v) }
func (r *recorder) SetVec4(name string, v math.Vec4) { r.set(name, v) }
func (r *recorder) SetFloat(name string, v float32) { r.set(name, v) }
func (r *recorder) SetInt(name string, v int32) { r.set(name, v) }

func (r *recorder) pushed(name string) bool {
	_, ok := r.values[name]
	return ok
}

type fakeMesh struct {
	name string
	rec  *recorder
}

func (m fakeMesh) Draw() { m.rec.log = append(m.rec.log, "draw:"+m.name) }

func testView() camera.View {
	return camera.View{
		Position: math.Vec3{X: 0, Y: 2, Z: 8},
		Forward:  math.Vec3{X: 0, Y: 0, Z: -1},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

func render(t *testing.T, cfg lighting.Config, drawables func(*recorder) []Drawable) *recorder {
	t.Helper()
	rec := newRecorder()
	r := NewRenderer(rec, cfg, lighting.DefaultMaterial(), lighting.DefaultRoughness)
	var ds []Drawable
	if drawables != nil {
		ds = drawables(rec)
	}
	r.Render(testView(), lighting.DefaultLight(), ds)
	return rec
}

func TestLightFieldGatingByKind(t *testing.T) {
	always := []string{UniformLightPosition, UniformLightAmbient, UniformLightDiffuse, UniformLightSpecular}
	spot := []string{UniformLightSpotDirection, UniformLightSpotCosCutoff, UniformLightSpotExponent}

	tests := []struct {
		light       lighting.LightKind
		attenuation bool
		spot        bool
	}{
		{lighting.Point, true, false},
		{lighting.Spot, true, true},
		{lighting.Directional, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.light.String(), func(t *testing.T) {
			rec := render(t, lighting.Config{Light: tt.light, Shading: lighting.Phong}, nil)
			for _, name := range always {
				assert.True(t, rec.pushed(name), name)
			}
			assert.Equal(t, tt.attenuation, rec.pushed(UniformLightAttenuation))
			for _, name := range spot {
				assert.Equal(t, tt.spot, rec.pushed(name), name)
			}
		})
	}
}

func TestRoughnessOnlyForOrenNayar(t *testing.T) {
	for _, shading := range lighting.ShadingKinds() {
		rec := render(t, lighting.Config{Light: lighting.Point, Shading: shading}, nil)
		assert.Equal(t, shading == lighting.OrenNayar, rec.pushed(UniformRoughness), shading.String())
		if shading == lighting.OrenNayar {
			assert.Equal(t, lighting.DefaultRoughness, rec.values[UniformRoughness])
		}
	}
}

func TestDirectionalPositionHasZeroW(t *testing.T) {
	rec := render(t, lighting.Config{Light: lighting.Directional, Shading: lighting.Toon}, nil)
	pos := rec.values[UniformLightPosition].(math.Vec4)
	assert.Equal(t, float32(0), pos[3])

	rec = render(t, lighting.Config{Light: lighting.Spot, Shading: lighting.Toon}, nil)
	pos = rec.values[UniformLightPosition].(math.Vec4)
	assert.Equal(t, float32(1), pos[3])
}

func TestMaterialConstants(t *testing.T) {
	rec := render(t, lighting.Config{Light: lighting.Point, Shading: lighting.Phong}, nil)
	assert.Equal(t, int32(0), rec.values[UniformMaterialTexture])
	assert.Equal(t, math.Vec4{1, 1, 1, 1}, rec.values[UniformMaterialDiffuse])
	assert.Equal(t, math.Vec4{0, 0, 0, 1}, rec.values[UniformMaterialEmission])
	assert.Equal(t, float32(32), rec.values[UniformMaterialShininess])
	assert.Equal(t, testView().Position, rec.values[UniformViewPosition])
}

func TestPerFrameUniformsPrecedeDraws(t *testing.T) {
	rec := render(t, lighting.Config{Light: lighting.Spot, Shading: lighting.OrenNayar}, func(rec *recorder) []Drawable {
		return []Drawable{
			{Mesh: fakeMesh{"a", rec}, Transform: At(math.Vec3{X: 1})},
			{Mesh: fakeMesh{"b", rec}, Transform: At(math.Vec3{X: 2}).Scaled(3)},
		}
	})

	require.Equal(t, "use", rec.log[0])
	firstModel := indexOf(rec.log, UniformModel)
	require.Positive(t, firstModel)
	for _, name := range rec.log[1:firstModel] {
		assert.NotEqual(t, UniformNormal, name)
	}
	for _, name := range []string{UniformViewProjection, UniformLightPosition, UniformMaterialShininess, UniformRoughness} {
		assert.Less(t, indexOf(rec.log, name), firstModel, name)
	}

	tail := rec.log[firstModel:]
	assert.Equal(t, []string{
		UniformModel, UniformNormal, "draw:a",
		UniformModel, UniformNormal, "draw:b",
	}, tail)

	want := At(math.Vec3{X: 2}).Scaled(3)
	assert.Equal(t, want.Model(), rec.values[UniformModel])
	assert.Equal(t, want.Normal(), rec.values[UniformNormal])
}

func TestNilMeshSkipped(t *testing.T) {
	rec := render(t, lighting.Config{}, func(rec *recorder) []Drawable {
		return []Drawable{{}, {Mesh: fakeMesh{"x", rec}}}
	})
	assert.Equal(t, 1, count(rec.log, UniformModel))
	assert.Equal(t, 1, count(rec.log, "draw:x"))
}

func TestEveryPipelineRenders(t *testing.T) {
	for _, lk := range lighting.LightKinds() {
		for _, sk := range lighting.ShadingKinds() {
			cfg := lighting.Config{Light: lk, Shading: sk}
			t.Run(fmt.Sprint(cfg), func(t *testing.T) {
				rec := render(t, cfg, func(rec *recorder) []Drawable {
					return []Drawable{{Mesh: fakeMesh{"m", rec}, Transform: At(math.Vec3{})}}
				})
				assert.Equal(t, "draw:m", rec.log[len(rec.log)-1])
			})
		}
	}
}

func TestViewProjectionMapsForwardPointInsideClip(t *testing.T) {
	r := NewRenderer(newRecorder(), lighting.Config{}, lighting.DefaultMaterial(), 0)
	r.SetAspect(16.0 / 9.0)
	r.SetAspect(-1)
	assert.InDelta(t, 16.0/9.0, r.Aspect(), 1e-6)

	v := testView()
	clip := r.ViewProjection(v).MulVec4(math.Vec4{0, 2, 0, 1})
	ndcZ := clip[2] / clip[3]
	assert.Greater(t, clip[3], float32(0))
	assert.Greater(t, ndcZ, float32(-1))
	assert.Less(t, ndcZ, float32(1))
}

func indexOf(log []string, name string) int {
	for i, n := range log {
		if n == name {
			return i
		}
	}
	return -1
}

func count(log []string, name string) int {
	n := 0
	for _, s := range log {
		if s == name {
			n++
		}
	}
	return n
}
