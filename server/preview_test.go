package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablescene/geom"
)

func testPreview(t *testing.T) *Preview {
	sphere, err := geom.NewSphere(1, 8, 4, true)
	require.NoError(t, err)
	can, err := geom.NewCylinder(0.5, 0.5, 1, 12, 1, true)
	require.NoError(t, err)
	return NewPreview(map[string]*geom.Mesh{
		"ball": sphere,
		"can":  can,
	})
}

func TestListIsSorted(t *testing.T) {
	p := testPreview(t)
	l := p.list()
	assert.Equal(t, "list", l.Type)
	assert.Equal(t, []string{"ball", "can"}, l.Meshes)
}

func TestHandleCommandMesh(t *testing.T) {
	p := testPreview(t)
	reply := p.handleCommand("mesh ball")
	payload, ok := reply.(MeshPayload)
	require.True(t, ok, "expected mesh payload, got %T", reply)
	assert.Equal(t, "mesh", payload.Type)
	assert.Equal(t, "ball", payload.Name)
	assert.Equal(t, geom.Stride, payload.Stride)
	assert.Equal(t, payload.Vertices*geom.Stride, len(payload.Data))
	assert.Equal(t, payload.Triangles*3, len(payload.Indices))
}

func TestHandleCommandErrors(t *testing.T) {
	p := testPreview(t)
	cases := []struct {
		cmd string
	}{
		{""},
		{"mesh"},
		{"mesh nope"},
		{"mesh too many args"},
		{"frobnicate"},
	}
	for _, tc := range cases {
		reply := p.handleCommand(tc.cmd)
		e, ok := reply.(ErrorPayload)
		require.True(t, ok, "command %q should error, got %T", tc.cmd, reply)
		assert.Equal(t, "error", e.Type)
		assert.NotEmpty(t, e.Message)
	}
}

func TestHandleCommandList(t *testing.T) {
	p := testPreview(t)
	reply := p.handleCommand("list")
	l, ok := reply.(ListPayload)
	require.True(t, ok)
	assert.Len(t, l.Meshes, 2)
}
