package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineDistinctForEveryPair(t *testing.T) {
	seen := make(map[Sources]Config)
	for _, lk := range LightKinds() {
		for _, sk := range ShadingKinds() {
			src, err := Pipeline(lk, sk)
			require.NoError(t, err)
			assert.NotEmpty(t, src.Vertex)
			assert.NotEmpty(t, src.Fragment)

			cfg := Config{Light: lk, Shading: sk}
			if prev, dup := seen[src]; dup {
				t.Errorf("%v and %v both map to %v", prev, cfg, src)
			}
			seen[src] = cfg
		}
	}
	assert.Len(t, seen, len(LightKinds())*len(ShadingKinds()))
}

func TestPipelineDeterministic(t *testing.T) {
	for _, lk := range LightKinds() {
		for _, sk := range ShadingKinds() {
			a, err := Pipeline(lk, sk)
			require.NoError(t, err)
			b, err := Config{Light: lk, Shading: sk}.Sources()
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
}

func TestPipelineVertexStageFollowsLightKind(t *testing.T) {
	tests := []struct {
		light LightKind
		want  string
	}{
		{Point, "phong_point.vert"},
		{Spot, "phong_spot.vert"},
		{Directional, "phong_dir.vert"},
	}
	for _, tt := range tests {
		for _, sk := range ShadingKinds() {
			src, err := Pipeline(tt.light, sk)
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Vertex, "%v/%v", tt.light, sk)
		}
	}
}

func TestPipelineKnownPairs(t *testing.T) {
	src, err := Pipeline(Spot, OrenNayar)
	require.NoError(t, err)
	assert.Equal(t, Sources{Vertex: "phong_spot.vert", Fragment: "oren_nayar_spot.frag"}, src)

	src, err = Pipeline(Directional, ToonSpecular)
	require.NoError(t, err)
	assert.Equal(t, Sources{Vertex: "phong_dir.vert", Fragment: "toon_spec_dir.frag"}, src)
}

func TestPipelineRejectsOutOfRangeKinds(t *testing.T) {
	_, err := Pipeline(LightKind(7), Phong)
	assert.ErrorIs(t, err, ErrUnknownPipeline)

	_, err = Pipeline(Point, ShadingKind(9))
	assert.ErrorIs(t, err, ErrUnknownPipeline)
}

func TestParseKinds(t *testing.T) {
	lk, err := ParseLightKind(" Spot ")
	require.NoError(t, err)
	assert.Equal(t, Spot, lk)

	sk, err := ParseShadingKind("toon-specular")
	require.NoError(t, err)
	assert.Equal(t, ToonSpecular, sk)

	_, err = ParseLightKind("area")
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = ParseShadingKind("pbr")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, lk := range LightKinds() {
		got, err := ParseLightKind(lk.String())
		require.NoError(t, err)
		assert.Equal(t, lk, got)
	}
	for _, sk := range ShadingKinds() {
		got, err := ParseShadingKind(sk.String())
		require.NoError(t, err)
		assert.Equal(t, sk, got)
	}
	assert.Equal(t, "LightKind(5)", LightKind(5).String())
}
