package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// NewSphere builds a UV sphere mesh centered on the origin with its
// poles on the Z axis. sectors is the number of longitude subdivisions
// (minimum 3), stacks the number of latitude subdivisions (minimum 2,
// so an equator exists). Texture coordinates are the standard
// equirectangular mapping; pole pinching is inherent to it and not
// corrected.
//
// With smooth set, vertices are shared on a (stacks+1) x (sectors+1)
// grid and the normal is the normalized position. Otherwise every
// triangle carries its own vertices with an outward flat normal. In
// both modes the pole rows emit single triangles only; the zero-area
// half of each pole quad is skipped.
func NewSphere(radius float32, sectors, stacks int, smooth bool) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius %g, need > 0", ErrInvalidParameter, radius)
	}
	if sectors < 3 {
		return nil, fmt.Errorf("%w: sphere sector count %d, need at least 3", ErrInvalidParameter, sectors)
	}
	if stacks < 2 {
		return nil, fmt.Errorf("%w: sphere stack count %d, need at least 2", ErrInvalidParameter, stacks)
	}

	nVerts, nIndices := sphereCounts(sectors, stacks, smooth)
	m := newMesh(nVerts, nIndices)

	circle := newUnitCircle(sectors)
	stackStep := math32.Pi / float32(stacks)

	// gridPoint evaluates the parametric surface at stack row i (north
	// pole down) and sector column j.
	gridPoint := func(i, j int) (pos [3]float32, uv [2]float32) {
		phi := math32.Pi/2 - float32(i)*stackStep
		cosPhi, sinPhi := math32.Cos(phi), math32.Sin(phi)
		cos, sin := circle.at(j)
		pos = [3]float32{radius * cosPhi * cos, radius * cosPhi * sin, radius * sinPhi}
		uv = [2]float32{float32(j) / float32(sectors), float32(i) / float32(stacks)}
		return pos, uv
	}

	if smooth {
		for i := 0; i <= stacks; i++ {
			for j := 0; j <= sectors; j++ {
				pos, uv := gridPoint(i, j)
				// Centered at the origin, so the unit normal is just
				// the position over the radius.
				m.addVertex(pos[0], pos[1], pos[2],
					pos[0]/radius, pos[1]/radius, pos[2]/radius,
					uv[0], uv[1])
			}
		}
		for i := 0; i < stacks; i++ {
			k1 := uint32(i * (sectors + 1))
			k2 := k1 + uint32(sectors) + 1
			for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
				if i != 0 {
					m.addTriangle(k1, k2, k1+1)
				}
				if i != stacks-1 {
					m.addTriangle(k1+1, k2, k2+1)
				}
			}
		}
		return m, nil
	}

	at := func(i, j int) vertex {
		pos, uv := gridPoint(i, j)
		return vertex{pos, uv}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			if i != 0 {
				addOutwardTriangle(m, at(i, j), at(i+1, j), at(i, j+1))
			}
			if i != stacks-1 {
				addOutwardTriangle(m, at(i, j+1), at(i+1, j), at(i+1, j+1))
			}
		}
	}
	return m, nil
}

// addOutwardTriangle emits a flat triangle, flipping the winding if the
// face normal points toward the origin. The grid winding already faces
// outward, but the cross product direction is verified rather than
// assumed.
func addOutwardTriangle(m *Mesh, a, b, c vertex) {
	n := flatNormal(a.pos, b.pos, c.pos)
	cx := a.pos[0] + b.pos[0] + c.pos[0]
	cy := a.pos[1] + b.pos[1] + c.pos[1]
	cz := a.pos[2] + b.pos[2] + c.pos[2]
	if n[0]*cx+n[1]*cy+n[2]*cz < 0 {
		b, c = c, b
	}
	m.addFlatTriangle(a, b, c)
}

// sphereCounts returns the exact vertex and index counts NewSphere will
// produce for the given subdivision. Each pole row contributes sectors
// triangles, every other row twice that.
func sphereCounts(sectors, stacks int, smooth bool) (nVerts, nIndices int) {
	tris := 2 * sectors * (stacks - 1)
	if smooth {
		nVerts = (stacks + 1) * (sectors + 1)
	} else {
		nVerts = 3 * tris
	}
	return nVerts, 3 * tris
}
