package opengl

import (
	"math"

	"github.com/go-gl/gl/v4.3-core/gl"

	"tablescene/geom"
)

// meshBuffers holds the GPU-side copy of one mesh: a VAO with an
// interleaved VBO and an element buffer. Buffers are immutable after
// upload.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	indexType  uint32 // gl.UNSIGNED_SHORT or gl.UNSIGNED_INT
}

const floatSize = 4

// uploadMesh copies a mesh into GPU buffers. Indices are narrowed to
// 16 bits when every vertex ordinal fits; the generator guarantees no
// index exceeds the vertex count, so narrowing cannot truncate.
func uploadMesh(m *geom.Mesh) meshBuffers {
	var b meshBuffers
	b.indexCount = int32(len(m.Indices))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*floatSize, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(geom.Stride * floatSize)
	gl.VertexAttribPointerWithOffset(0, geom.FloatsPerPosition, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, geom.FloatsPerNormal, gl.FLOAT, false, stride,
		uintptr(geom.FloatsPerPosition*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, geom.FloatsPerUV, gl.FLOAT, false, stride,
		uintptr((geom.FloatsPerPosition+geom.FloatsPerNormal)*floatSize))
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	if m.VertexCount() <= math.MaxUint16 {
		b.indexType = gl.UNSIGNED_SHORT
		short := make([]uint16, len(m.Indices))
		for i, idx := range m.Indices {
			short[i] = uint16(idx)
		}
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(short)*2, gl.Ptr(short), gl.STATIC_DRAW)
	} else {
		b.indexType = gl.UNSIGNED_INT
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return b
}

func (b meshBuffers) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, b.indexType, 0)
	gl.BindVertexArray(0)
}

func (b meshBuffers) destroy() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
}
