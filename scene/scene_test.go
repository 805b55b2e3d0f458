package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablescene/config"
)

func TestBuild(t *testing.T) {
	sc, err := Build(config.Defaults())
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, o := range sc.Objects {
		names[o.Name] = true
		require.NotNil(t, o.Mesh, "%s mesh", o.Name)
		assert.Greater(t, o.Mesh.TriangleCount(), 0, "%s triangles", o.Name)
		if o.Lamp() {
			assert.Less(t, o.LightIndex, len(sc.Lights), "%s light index", o.Name)
		} else {
			assert.NotEmpty(t, o.Texture, "%s texture", o.Name)
		}
	}
	for _, want := range []string{"plane", "case", "logo", "can", "ball", "notes", "main-light", "fill-light"} {
		assert.True(t, names[want], "missing object %q", want)
	}

	require.Len(t, sc.Lights, 2)
	assert.True(t, sc.Lights[0].Orbit, "main light orbits")
	assert.False(t, sc.Lights[1].Orbit, "fill light is fixed")
	assert.Greater(t, sc.Lights[0].Intensity, sc.Lights[1].Intensity)
}

func TestBuildHonorsMeshSettings(t *testing.T) {
	cfg := config.Defaults()
	cfg.Meshes.BallSectors = 8
	cfg.Meshes.BallStacks = 4
	sc, err := Build(cfg)
	require.NoError(t, err)

	ball := sc.Meshes()["ball"]
	require.NotNil(t, ball)
	// Smooth UV sphere: (stacks+1) rows x (sectors+1) columns.
	assert.Equal(t, 5*9, ball.VertexCount())
}

func TestBuildRejectsBadResolution(t *testing.T) {
	cfg := config.Defaults()
	cfg.Meshes.CanSectors = 2
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(config.Defaults())
	require.NoError(t, err)
	b, err := Build(config.Defaults())
	require.NoError(t, err)
	require.Equal(t, len(a.Objects), len(b.Objects))
	for i := range a.Objects {
		assert.Equal(t, a.Objects[i].Model, b.Objects[i].Model, "object %s", a.Objects[i].Name)
		assert.Equal(t, a.Objects[i].Mesh.Vertices, b.Objects[i].Mesh.Vertices, "object %s", a.Objects[i].Name)
	}
}
