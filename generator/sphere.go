package generator

import "mesh-generator/math"

// buildSphere emits a UV sphere with one seam column. Both poles are rows
// of coincident vertices, so the top and bottom bands are single triangles.
func buildSphere(c *Context) {
	detail := math.ClampInt(c.Construct.SegmentsVert, 2, 180) * 2
	r := c.Construct.RadiusInner
	step := 360 / float32(detail)
	degX, degY := detail, detail/2

	for i := 0; i <= degY; i++ {
		lat := float32(i) * step
		y := cos(lat) * r
		for j := 0; j <= degX; j++ {
			lon := float32(j) * step
			c.vertex(
				sin(lon)*sin(lat)*r, y, cos(lon)*sin(lat)*r,
				float32(j)/float32(degX), float32(i)/float32(degY),
			)
		}
	}

	row := uint32(degX + 1)
	rows := uint32(degY)

	for j := uint32(0); j < row-1; j++ {
		c.tri(j+1, row+j, row+j+1)
	}
	for i := uint32(1); i+1 < rows; i++ {
		for j := uint32(0); j < row-1; j++ {
			v0 := i*row + j
			v1 := v0 + 1
			v2 := (i+1)*row + j
			v3 := v2 + 1
			c.tri(v2, v1, v0)
			c.tri(v1, v2, v3)
		}
	}
	for j := uint32(0); j < row-1; j++ {
		v0 := (rows-1)*row + j
		c.tri(rows*row+j, v0+1, v0)
	}
}

const icosphereSize = 0.30902

var icosahedronFaces = [20][3]int{
	{0, 4, 5}, {0, 5, 11}, {3, 11, 6}, {3, 7, 8}, {3, 6, 7},
	{0, 11, 3}, {0, 3, 8}, {8, 4, 0}, {5, 10, 11}, {5, 1, 10},
	{6, 11, 10}, {9, 8, 7}, {1, 4, 9}, {1, 5, 4}, {6, 2, 7},
	{4, 8, 9}, {10, 1, 2}, {2, 1, 9}, {10, 2, 6}, {9, 7, 2},
}

type triangle [3]math.Vec3

func buildIcosphere(c *Context) {
	icosphere(c, math.ClampInt(c.Construct.SegmentsVert, 1, 8))
}

func buildIcosahedron(c *Context) {
	icosphere(c, 1)
}

// icosphere subdivides an icosahedron depth-1 times, pushing every new
// midpoint back out to the base radius. Each final face gets its own
// vertices with planar-projected texture coordinates.
func icosphere(c *Context, depth int) {
	r := c.Construct.RadiusInner
	const s = icosphereSize
	base := [12]math.Vec3{
		{X: 0, Y: 0.5, Z: -0.5 - s}, {X: 0, Y: 0.5, Z: 0.5 + s},
		{X: 0, Y: -0.5, Z: 0.5 + s}, {X: 0, Y: -0.5, Z: -0.5 - s},
		{X: -0.5, Y: 0.5 + s, Z: 0}, {X: 0.5, Y: 0.5 + s, Z: 0},
		{X: 0.5, Y: -0.5 - s, Z: 0}, {X: -0.5, Y: -0.5 - s, Z: 0},
		{X: -0.5 - s, Y: 0, Z: -0.5}, {X: -0.5 - s, Y: 0, Z: 0.5},
		{X: 0.5 + s, Y: 0, Z: 0.5}, {X: 0.5 + s, Y: 0, Z: -0.5},
	}
	for i := range base {
		base[i] = base[i].Mul(r)
	}
	radius := base[0].Length()

	tris := make([]triangle, 0, len(icosahedronFaces))
	for _, f := range icosahedronFaces {
		tris = append(tris, triangle{base[f[0]], base[f[1]], base[f[2]]})
	}

	mid := func(a, b math.Vec3) math.Vec3 {
		return a.Add(b).Mul(0.5).SetLength(radius)
	}
	for i := 1; i < depth; i++ {
		next := make([]triangle, 0, len(tris)*4)
		for _, t := range tris {
			ab, bc, ca := mid(t[0], t[1]), mid(t[1], t[2]), mid(t[2], t[0])
			next = append(next,
				triangle{t[0], ab, ca},
				triangle{ca, ab, bc},
				triangle{t[2], ca, bc},
				triangle{bc, ab, t[1]},
			)
		}
		tris = next
	}

	for _, t := range tris {
		c.planarFace(t[0], t[1], t[2])
	}
}

// buildTorus emits the outer and the inner half of the tube as two grids.
// RadiusInner is the ring radius and RadiusOuter the tube radius.
func buildTorus(c *Context) {
	detail := math.ClampInt(c.Construct.SegmentsVert, 2, 180) * 2
	r1 := c.Construct.RadiusInner
	r2 := c.Construct.RadiusOuter
	step := 360 / float32(detail)
	degX, degY := detail, detail/2

	for _, side := range [2]float32{1, -1} {
		for i := 0; i <= degY; i++ {
			lat := float32(i) * step
			y := cos(lat) * r2
			for j := 0; j <= degX; j++ {
				lon := float32(j) * step
				c.vertex(
					sin(lon)*r1+side*sin(lon)*sin(lat)*r2,
					y,
					cos(lon)*r1+side*cos(lon)*sin(lat)*r2,
					float32(j)/float32(degX), float32(i)/float32(degY),
				)
			}
		}
	}

	row := uint32(degX + 1)
	rows := uint32(degY)

	for i := uint32(0); i < rows; i++ {
		for j := uint32(0); j < row-1; j++ {
			v0 := i*row + j
			v1 := v0 + 1
			v2 := (i+1)*row + j
			v3 := v2 + 1
			c.tri(v2, v1, v0)
			c.tri(v1, v2, v3)
		}
	}

	inner := rows*row + row
	for i := uint32(0); i < rows; i++ {
		for j := uint32(0); j < row-1; j++ {
			v0 := inner + i*row + j
			v1 := v0 + 1
			v2 := inner + (i+1)*row + j
			v3 := v2 + 1
			c.tri(v0, v1, v2)
			c.tri(v3, v2, v1)
		}
	}
}
