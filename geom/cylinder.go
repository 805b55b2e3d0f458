package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// NewCylinder builds a cylinder mesh centered on the origin with its
// axis along Z, spanning -height/2 to +height/2. Different base and top
// radii give a truncated cone; a radius of zero degenerates that end to
// a tip. Caps are emitted only for ends with a positive radius.
//
// sectors is the number of angular subdivisions (minimum 3), stacks the
// number of subdivisions along the axis (minimum 1). With smooth set,
// side vertices are shared along the wall and carry the analytic slant
// normal; otherwise every triangle gets its own vertices with a flat
// face normal.
func NewCylinder(baseRadius, topRadius, height float32, sectors, stacks int, smooth bool) (*Mesh, error) {
	if sectors < 3 {
		return nil, fmt.Errorf("%w: cylinder sector count %d, need at least 3", ErrInvalidParameter, sectors)
	}
	if stacks < 1 {
		return nil, fmt.Errorf("%w: cylinder stack count %d, need at least 1", ErrInvalidParameter, stacks)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: cylinder height %g, need > 0", ErrInvalidParameter, height)
	}
	if baseRadius < 0 || topRadius < 0 {
		return nil, fmt.Errorf("%w: cylinder radii (%g, %g), need >= 0", ErrInvalidParameter, baseRadius, topRadius)
	}
	if baseRadius == 0 && topRadius == 0 {
		return nil, fmt.Errorf("%w: cylinder with both radii zero has no surface", ErrInvalidParameter)
	}

	nVerts, nIndices := cylinderCounts(baseRadius, topRadius, sectors, stacks, smooth)
	m := newMesh(nVerts, nIndices)

	circle := newUnitCircle(sectors)
	halfH := height / 2

	radiusAt := func(i int) float32 {
		return baseRadius + (topRadius-baseRadius)*float32(i)/float32(stacks)
	}
	zAt := func(i int) float32 {
		return -halfH + height*float32(i)/float32(stacks)
	}

	if smooth {
		// The lateral normal is perpendicular to the slant, tilted out
		// of the XY plane by the cone angle.
		slant := math32.Atan2(baseRadius-topRadius, height)
		nXY := math32.Cos(slant)
		nZ := math32.Sin(slant)

		for i := 0; i <= stacks; i++ {
			r, z := radiusAt(i), zAt(i)
			t := float32(i) / float32(stacks)
			for j := 0; j <= sectors; j++ {
				cos, sin := circle.at(j)
				s := float32(j) / float32(sectors)
				m.addVertex(r*cos, r*sin, z, nXY*cos, nXY*sin, nZ, s, t)
			}
		}
		for i := 0; i < stacks; i++ {
			rowDegenerate := radiusAt(i) == 0
			nextDegenerate := radiusAt(i+1) == 0
			for j := 0; j < sectors; j++ {
				k0 := uint32(i*(sectors+1) + j)
				k1 := k0 + uint32(sectors) + 1
				if !rowDegenerate {
					m.addTriangle(k0, k0+1, k1)
				}
				if !nextDegenerate {
					m.addTriangle(k1, k0+1, k1+1)
				}
			}
		}
	} else {
		for i := 0; i < stacks; i++ {
			r0, r1 := radiusAt(i), radiusAt(i+1)
			z0, z1 := zAt(i), zAt(i+1)
			t0 := float32(i) / float32(stacks)
			t1 := float32(i+1) / float32(stacks)
			for j := 0; j < sectors; j++ {
				cos0, sin0 := circle.at(j)
				cos1, sin1 := circle.at(j + 1)
				s0 := float32(j) / float32(sectors)
				s1 := float32(j+1) / float32(sectors)

				bl := vertex{[3]float32{r0 * cos0, r0 * sin0, z0}, [2]float32{s0, t0}}
				br := vertex{[3]float32{r0 * cos1, r0 * sin1, z0}, [2]float32{s1, t0}}
				tr := vertex{[3]float32{r1 * cos1, r1 * sin1, z1}, [2]float32{s1, t1}}
				tl := vertex{[3]float32{r1 * cos0, r1 * sin0, z1}, [2]float32{s0, t1}}

				if r0 > 0 {
					m.addFlatTriangle(bl, br, tl)
				}
				if r1 > 0 {
					m.addFlatTriangle(tl, br, tr)
				}
			}
		}
	}

	if baseRadius > 0 {
		addCylinderCap(m, circle, baseRadius, -halfH, sectors, false)
	}
	if topRadius > 0 {
		addCylinderCap(m, circle, topRadius, halfH, sectors, true)
	}
	return m, nil
}

// addCylinderCap emits one end disc as a fan around a center vertex.
// Cap UVs map the disc onto the unit square around (0.5, 0.5); the
// bottom cap is mirrored so its texture reads correctly from below.
func addCylinderCap(m *Mesh, circle unitCircle, radius, z float32, sectors int, top bool) {
	nz := float32(-1)
	if top {
		nz = 1
	}
	center := m.addVertex(0, 0, z, 0, 0, nz, 0.5, 0.5)
	for j := 0; j <= sectors; j++ {
		cos, sin := circle.at(j)
		s, t := 0.5-0.5*cos, 0.5-0.5*sin
		if top {
			s, t = 0.5+0.5*cos, 0.5+0.5*sin
		}
		m.addVertex(radius*cos, radius*sin, z, 0, 0, nz, s, t)
	}
	for j := uint32(0); j < uint32(sectors); j++ {
		if top {
			m.addTriangle(center, center+1+j, center+2+j)
		} else {
			m.addTriangle(center, center+2+j, center+1+j)
		}
	}
}

// cylinderCounts returns the exact vertex and index counts NewCylinder
// will produce, so output slices can be sized up front.
func cylinderCounts(baseRadius, topRadius float32, sectors, stacks int, smooth bool) (nVerts, nIndices int) {
	sideTris := 2 * sectors * stacks
	if baseRadius == 0 {
		sideTris -= sectors
	}
	if topRadius == 0 {
		sideTris -= sectors
	}
	if smooth {
		nVerts = (stacks + 1) * (sectors + 1)
	} else {
		nVerts = 3 * sideTris
	}
	nIndices = 3 * sideTris
	if baseRadius > 0 {
		nVerts += sectors + 2
		nIndices += 3 * sectors
	}
	if topRadius > 0 {
		nVerts += sectors + 2
		nIndices += 3 * sectors
	}
	return nVerts, nIndices
}
