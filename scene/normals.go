package scene

import "mesh-generator/math"

// FaceNormal returns the unit normal of the counter-clockwise triangle
// (a, b, c). Degenerate triangles yield the zero vector.
func FaceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// RecomputeNormals regenerates vertex normals of every triangle surface
// according to the mesh shading mode. Line surfaces are left untouched.
//
// Flat shading writes each face normal to the triangle's own vertices.
// Gouraud shading sums area-weighted face normals over all vertices sharing
// a position, so seams duplicated for texturing still shade smoothly.
func (m *Mesh) RecomputeNormals() {
	for _, s := range m.Surfaces {
		if s.Primitive != PrimitiveTriangles {
			continue
		}
		if m.Shading == ShadingFlat {
			recomputeFlat(s)
		} else {
			recomputeGouraud(s)
		}
	}
}

func recomputeFlat(s *Surface) {
	for i := 0; i+2 < len(s.Indices); i += 3 {
		i0, i1, i2 := s.Indices[i], s.Indices[i+1], s.Indices[i+2]
		n := FaceNormal(s.Vertices[i0].Position, s.Vertices[i1].Position, s.Vertices[i2].Position)
		s.Vertices[i0].Normal = n
		s.Vertices[i1].Normal = n
		s.Vertices[i2].Normal = n
	}
}

func recomputeGouraud(s *Surface) {
	sums := make(map[math.Vec3]math.Vec3, len(s.Vertices))

	// accum adds the unnormalized face normal of one triangle to its corners.
	accum := func(i0, i1, i2 uint32) {
		p0 := s.Vertices[i0].Position
		p1 := s.Vertices[i1].Position
		p2 := s.Vertices[i2].Position
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		sums[p0] = sums[p0].Add(n)
		sums[p1] = sums[p1].Add(n)
		sums[p2] = sums[p2].Add(n)
	}

	for i := 0; i+2 < len(s.Indices); i += 3 {
		accum(s.Indices[i], s.Indices[i+1], s.Indices[i+2])
	}

	for i := range s.Vertices {
		s.Vertices[i].Normal = sums[s.Vertices[i].Position].Normalize()
	}
}
