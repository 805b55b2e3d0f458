// Package geom generates CPU-side triangle meshes for the scene's
// primitives. Vertex data is interleaved position/normal/texture
// coordinate, 8 floats per vertex, ready for upload as a single VBO.
package geom

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrInvalidParameter is returned when a generator is called with
// parameters outside its documented range. Generators never clamp.
var ErrInvalidParameter = errors.New("invalid mesh parameter")

// Interleaved vertex layout: x, y, z, nx, ny, nz, s, t.
const (
	FloatsPerPosition = 3
	FloatsPerNormal   = 3
	FloatsPerUV       = 2

	// Stride is the number of floats per vertex.
	Stride = FloatsPerPosition + FloatsPerNormal + FloatsPerUV
)

// Mesh holds interleaved vertex data and triangle indices. A Mesh is
// built once by a generator and treated as immutable afterwards; the
// renderer reads it exactly once to fill GPU buffers.
type Mesh struct {
	// Vertices is interleaved per-vertex data, Stride floats per vertex.
	Vertices []float32
	// Indices reference vertices by ordinal; three consecutive entries
	// form one counter-clockwise (viewed from outside) triangle.
	Indices []uint32
}

// newMesh returns a mesh with capacity for the given vertex and index
// counts so generation never reallocates.
func newMesh(nVerts, nIndices int) *Mesh {
	return &Mesh{
		Vertices: make([]float32, 0, nVerts*Stride),
		Indices:  make([]uint32, 0, nIndices),
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / Stride }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Position returns the object-space position of vertex i.
func (m *Mesh) Position(i int) [3]float32 {
	o := i * Stride
	return [3]float32{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns the unit normal of vertex i.
func (m *Mesh) Normal(i int) [3]float32 {
	o := i*Stride + FloatsPerPosition
	return [3]float32{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// TexCoord returns the texture coordinate of vertex i.
func (m *Mesh) TexCoord(i int) [2]float32 {
	o := i*Stride + FloatsPerPosition + FloatsPerNormal
	return [2]float32{m.Vertices[o], m.Vertices[o+1]}
}

func (m *Mesh) addVertex(px, py, pz, nx, ny, nz, s, t float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz, s, t)
	return idx
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// vertex is a pre-interleave staging value used by the faceted paths,
// which need positions and UVs in hand before the shared flat normal
// is known.
type vertex struct {
	pos [3]float32
	uv  [2]float32
}

// addFlatTriangle emits triangle (a, b, c) with duplicated vertices all
// carrying the face normal from the winding order. Callers must not
// pass degenerate triangles.
func (m *Mesh) addFlatTriangle(a, b, c vertex) {
	n := flatNormal(a.pos, b.pos, c.pos)
	i0 := m.addVertex(a.pos[0], a.pos[1], a.pos[2], n[0], n[1], n[2], a.uv[0], a.uv[1])
	i1 := m.addVertex(b.pos[0], b.pos[1], b.pos[2], n[0], n[1], n[2], b.uv[0], b.uv[1])
	i2 := m.addVertex(c.pos[0], c.pos[1], c.pos[2], n[0], n[1], n[2], c.uv[0], c.uv[1])
	m.addTriangle(i0, i1, i2)
}

// flatNormal returns the unit normal of triangle (a, b, c), oriented by
// the right-hand rule over the winding order.
func flatNormal(a, b, c [3]float32) [3]float32 {
	ux, uy, uz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	vx, vy, vz := c[0]-a[0], c[1]-a[1], c[2]-a[2]
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	if l == 0 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32{nx / l, ny / l, nz / l}
}

// unitCircle precomputes cos/sin for each sector subdivision. The
// lookup wraps, so the duplicated seam column (j == sectors) reuses the
// j == 0 values and seam vertices come out bit-identical.
type unitCircle struct {
	cos, sin []float32
}

func newUnitCircle(sectors int) unitCircle {
	uc := unitCircle{
		cos: make([]float32, sectors),
		sin: make([]float32, sectors),
	}
	step := 2 * math32.Pi / float32(sectors)
	for j := 0; j < sectors; j++ {
		theta := float32(j) * step
		uc.cos[j] = math32.Cos(theta)
		uc.sin[j] = math32.Sin(theta)
	}
	return uc
}

func (uc unitCircle) at(j int) (cos, sin float32) {
	j %= len(uc.cos)
	return uc.cos[j], uc.sin[j]
}
