package geom

import (
	"errors"
	"reflect"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCylinderCounts(t *testing.T) {
	tests := []struct {
		name       string
		base, top  float32
		height     float32
		sectors    int
		stacks     int
		smooth     bool
		wantVerts  int
		wantTris   int
	}{
		{
			// 4-sided prism: 2x5 side grid + two caps of 1 center + 5 ring
			// vertices; 8 side triangles + 4 per cap.
			name: "square prism smooth", base: 1, top: 1, height: 2,
			sectors: 4, stacks: 1, smooth: true,
			wantVerts: 10 + 6 + 6, wantTris: 8 + 4 + 4,
		},
		{
			name: "can resolution smooth", base: 0.27, top: 0.27, height: 0.9,
			sectors: 36, stacks: 1, smooth: true,
			wantVerts: 2*37 + 2*38, wantTris: 2*36 + 2*36,
		},
		{
			// Cone: top row collapses, so each top-row quad keeps one
			// triangle and there is no top cap.
			name: "cone smooth", base: 1, top: 0, height: 1,
			sectors: 8, stacks: 2, smooth: true,
			wantVerts: 3*9 + 10, wantTris: (2*8*2 - 8) + 8,
		},
		{
			// Faceted: three duplicated vertices per side triangle.
			name: "square prism faceted", base: 1, top: 1, height: 2,
			sectors: 4, stacks: 1, smooth: false,
			wantVerts: 3*8 + 6 + 6, wantTris: 8 + 4 + 4,
		},
		{
			name: "cone faceted", base: 1, top: 0, height: 1,
			sectors: 6, stacks: 1, smooth: false,
			wantVerts: 3*6 + 8, wantTris: 6 + 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewCylinder(tt.base, tt.top, tt.height, tt.sectors, tt.stacks, tt.smooth)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVerts, m.VertexCount(), "vertex count")
			assert.Equal(t, tt.wantTris, m.TriangleCount(), "triangle count")
			// Generation must fill exactly the preallocated capacity.
			assert.Equal(t, cap(m.Vertices), len(m.Vertices), "vertex slice capacity")
			assert.Equal(t, cap(m.Indices), len(m.Indices), "index slice capacity")
		})
	}
}

func TestCylinderInvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		base, top float32
		height    float32
		sectors   int
		stacks    int
	}{
		{"two sectors", 1, 1, 1, 2, 1},
		{"zero stacks", 1, 1, 1, 8, 0},
		{"zero height", 1, 1, 0, 8, 1},
		{"negative height", 1, 1, -2, 8, 1},
		{"negative base radius", -1, 1, 1, 8, 1},
		{"negative top radius", 1, -0.5, 1, 8, 1},
		{"both radii zero", 0, 0, 1, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewCylinder(tt.base, tt.top, tt.height, tt.sectors, tt.stacks, true)
			if m != nil {
				t.Fatalf("NewCylinder returned a mesh for invalid parameters")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("NewCylinder error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestCylinderNormalsAreUnit(t *testing.T) {
	for _, smooth := range []bool{true, false} {
		m, err := NewCylinder(0.5, 0.27, 1.2, 16, 3, smooth)
		require.NoError(t, err)
		for i := 0; i < m.VertexCount(); i++ {
			n := m.Normal(i)
			l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
			assert.InDelta(t, 1.0, l, 1e-5, "vertex %d (smooth=%v)", i, smooth)
		}
	}
}

func TestCylinderSlantNormal(t *testing.T) {
	// A 45-degree cone's smooth side normal tilts up by 45 degrees.
	m, err := NewCylinder(1, 0, 1, 8, 1, true)
	require.NoError(t, err)
	want := math32.Sqrt(2) / 2
	// Side grid rows precede cap vertices.
	for i := 0; i < 2*9; i++ {
		assert.InDelta(t, want, m.Normal(i)[2], 1e-5, "side vertex %d", i)
	}
}

func TestCylinderSeamDuplicatesFirstColumn(t *testing.T) {
	const sectors, stacks = 12, 2
	m, err := NewCylinder(0.8, 0.8, 2, sectors, stacks, true)
	require.NoError(t, err)
	for i := 0; i <= stacks; i++ {
		first := i * (sectors + 1)
		last := first + sectors
		assert.Equal(t, m.Position(first), m.Position(last), "row %d position", i)
		assert.Equal(t, m.Normal(first), m.Normal(last), "row %d normal", i)
		assert.Equal(t, float32(0), m.TexCoord(first)[0], "row %d first s", i)
		assert.Equal(t, float32(1), m.TexCoord(last)[0], "row %d last s", i)
	}
}

func TestCylinderNoDegenerateTriangles(t *testing.T) {
	for _, smooth := range []bool{true, false} {
		// Cone tip is the degenerate-prone case.
		m, err := NewCylinder(1, 0, 2, 10, 3, smooth)
		require.NoError(t, err)
		requireNonDegenerate(t, m)
	}
}

func TestCylinderIndexBounds(t *testing.T) {
	m, err := NewCylinder(0.3, 0.3, 1, 36, 4, true)
	require.NoError(t, err)
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			t.Fatalf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
}

func TestCylinderDeterminism(t *testing.T) {
	a, err := NewCylinder(0.27, 0.27, 0.9, 36, 1, true)
	require.NoError(t, err)
	b, err := NewCylinder(0.27, 0.27, 0.9, 36, 1, true)
	require.NoError(t, err)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical parameters produced different meshes")
	}
}
