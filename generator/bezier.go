package generator

import "mesh-generator/math"

// bezierPatchFace tessellates a bicubic patch into segments x segments
// cells. Each row is walked as a triangle strip whose triangles get their
// own three vertices; front selects which side the strip faces.
func (c *Context) bezierPatchFace(anchors [4][4]math.Vec3, segments int, front bool) {
	s := c.Surface
	s.SetIndexOffset(uint32(s.VertexCount()))

	n := float32(segments)
	var curve [4]math.Vec3
	for i := range curve {
		curve[i] = anchors[i][3]
	}
	prev := make([]math.Vec3, segments+1)
	for v := range prev {
		prev[v] = math.Bernstein(float32(v)/n, curve)
	}

	points := make([]math.Vec3, 0, 2*(segments+1))
	uvs := make([]math.Vec2, 0, 2*(segments+1))
	ccw := true

	for u := 1; u <= segments; u++ {
		py := float32(u) / n
		lpy := float32(u-1) / n
		for i := range curve {
			curve[i] = math.Bernstein(py, anchors[i])
		}

		points, uvs = points[:0], uvs[:0]
		for v := 0; v <= segments; v++ {
			px := float32(v) / n
			points = append(points, prev[v])
			uvs = append(uvs, math.NewVec2(lpy, px))
			prev[v] = math.Bernstein(px, curve)
			points = append(points, prev[v])
			uvs = append(uvs, math.NewVec2(py, px))
		}

		for i := 0; i+2 < len(points); i++ {
			s.AddVertex(points[i], uvs[i])
			s.AddVertex(points[i+1], uvs[i+1])
			s.AddVertex(points[i+2], uvs[i+2])
			if ccw == front {
				c.tri(2, 1, 0)
			} else {
				c.tri(0, 1, 2)
			}
			c.offset(3)
			ccw = !ccw
		}
	}
}
