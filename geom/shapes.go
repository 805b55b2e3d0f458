package geom

// Fixed-topology primitives for the scene: the ground plane, the cuboid
// used for the note stack and the lamp markers, and the triangular
// wedge case. These share the cylinder/sphere Mesh contract but have no
// subdivision parameters, so they cannot fail.

// NewPlane builds a single quad in the XZ plane, centered on the
// origin, facing +Y, with corner-to-corner texture coordinates.
func NewPlane(width, depth float32) *Mesh {
	hw, hd := width/2, depth/2
	m := newMesh(4, 6)
	m.addVertex(-hw, 0, hd, 0, 1, 0, 0, 0)
	m.addVertex(hw, 0, hd, 0, 1, 0, 1, 0)
	m.addVertex(hw, 0, -hd, 0, 1, 0, 1, 1)
	m.addVertex(-hw, 0, -hd, 0, 1, 0, 0, 1)
	m.addTriangle(0, 1, 2)
	m.addTriangle(0, 2, 3)
	return m
}

// NewBox builds an axis-aligned cuboid centered on the origin, four
// vertices per face so each face carries its flat normal and a full
// texture quad.
func NewBox(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2
	m := newMesh(24, 36)

	quad := func(a, b, c, d [3]float32) {
		n := flatNormal(a, b, c)
		i0 := m.addVertex(a[0], a[1], a[2], n[0], n[1], n[2], 0, 0)
		m.addVertex(b[0], b[1], b[2], n[0], n[1], n[2], 1, 0)
		m.addVertex(c[0], c[1], c[2], n[0], n[1], n[2], 1, 1)
		m.addVertex(d[0], d[1], d[2], n[0], n[1], n[2], 0, 1)
		m.addTriangle(i0, i0+1, i0+2)
		m.addTriangle(i0, i0+2, i0+3)
	}

	// Each face wound counter-clockwise from outside.
	quad([3]float32{-hw, -hh, hd}, [3]float32{hw, -hh, hd}, [3]float32{hw, hh, hd}, [3]float32{-hw, hh, hd})     // +Z
	quad([3]float32{hw, -hh, -hd}, [3]float32{-hw, -hh, -hd}, [3]float32{-hw, hh, -hd}, [3]float32{hw, hh, -hd}) // -Z
	quad([3]float32{hw, -hh, hd}, [3]float32{hw, -hh, -hd}, [3]float32{hw, hh, -hd}, [3]float32{hw, hh, hd})     // +X
	quad([3]float32{-hw, -hh, -hd}, [3]float32{-hw, -hh, hd}, [3]float32{-hw, hh, hd}, [3]float32{-hw, hh, -hd}) // -X
	quad([3]float32{-hw, hh, hd}, [3]float32{hw, hh, hd}, [3]float32{hw, hh, -hd}, [3]float32{-hw, hh, -hd})     // +Y
	quad([3]float32{-hw, -hh, -hd}, [3]float32{hw, -hh, -hd}, [3]float32{hw, -hh, hd}, [3]float32{-hw, -hh, hd}) // -Y
	return m
}

// NewWedge builds a triangular prism centered on the origin: an
// isoceles triangle cross-section (apex up the Y axis) extruded along
// Z. Five faces: front and rear triangles, bottom rectangle, and two
// slanted rectangles meeting at the apex ridge.
func NewWedge(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2
	m := newMesh(18, 24)

	apexF := [3]float32{0, hh, hd}
	apexR := [3]float32{0, hh, -hd}
	blF := [3]float32{-hw, -hh, hd}
	brF := [3]float32{hw, -hh, hd}
	blR := [3]float32{-hw, -hh, -hd}
	brR := [3]float32{hw, -hh, -hd}

	tri := func(a, b, c vertex) { m.addFlatTriangle(a, b, c) }
	quad := func(a, b, c, d vertex) {
		n := flatNormal(a.pos, b.pos, c.pos)
		i0 := m.addVertex(a.pos[0], a.pos[1], a.pos[2], n[0], n[1], n[2], a.uv[0], a.uv[1])
		m.addVertex(b.pos[0], b.pos[1], b.pos[2], n[0], n[1], n[2], b.uv[0], b.uv[1])
		m.addVertex(c.pos[0], c.pos[1], c.pos[2], n[0], n[1], n[2], c.uv[0], c.uv[1])
		m.addVertex(d.pos[0], d.pos[1], d.pos[2], n[0], n[1], n[2], d.uv[0], d.uv[1])
		m.addTriangle(i0, i0+1, i0+2)
		m.addTriangle(i0, i0+2, i0+3)
	}

	// Front and rear triangle ends.
	tri(vertex{blF, [2]float32{0, 0}}, vertex{brF, [2]float32{1, 0}}, vertex{apexF, [2]float32{0.5, 1}})
	tri(vertex{brR, [2]float32{0, 0}}, vertex{blR, [2]float32{1, 0}}, vertex{apexR, [2]float32{0.5, 1}})
	// Bottom, seen from below.
	quad(vertex{blF, [2]float32{0, 0}}, vertex{blR, [2]float32{0, 1}},
		vertex{brR, [2]float32{1, 1}}, vertex{brF, [2]float32{1, 0}})
	// Left slant, apex ridge down to the left base edge.
	quad(vertex{apexF, [2]float32{0, 1}}, vertex{apexR, [2]float32{1, 1}},
		vertex{blR, [2]float32{1, 0}}, vertex{blF, [2]float32{0, 0}})
	// Right slant.
	quad(vertex{apexR, [2]float32{0, 1}}, vertex{apexF, [2]float32{1, 1}},
		vertex{brF, [2]float32{1, 0}}, vertex{brR, [2]float32{0, 0}})
	return m
}

// NewWedgeDecal builds a quad coplanar with the rear half of the right
// slant face of the wedge NewWedge(width, height, depth) produces,
// pushed out along the face normal by a small offset so it draws on top
// without z-fighting. Used for the case logo.
func NewWedgeDecal(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2
	const offset = 0.002

	topF := [3]float32{0, hh, 0}
	topR := [3]float32{0, hh, -hd}
	botF := [3]float32{hw, -hh, 0}
	botR := [3]float32{hw, -hh, -hd}
	n := flatNormal(topR, topF, botF)
	push := func(p [3]float32) [3]float32 {
		return [3]float32{p[0] + n[0]*offset, p[1] + n[1]*offset, p[2] + n[2]*offset}
	}

	m := newMesh(4, 6)
	i0 := m.addVertex(push(topF)[0], push(topF)[1], push(topF)[2], n[0], n[1], n[2], 0, 1)
	m.addVertex(push(topR)[0], push(topR)[1], push(topR)[2], n[0], n[1], n[2], 1, 1)
	m.addVertex(push(botR)[0], push(botR)[1], push(botR)[2], n[0], n[1], n[2], 1, 0)
	m.addVertex(push(botF)[0], push(botF)[1], push(botF)[2], n[0], n[1], n[2], 0, 0)
	m.addTriangle(i0, i0+2, i0+1)
	m.addTriangle(i0, i0+3, i0+2)
	return m
}
