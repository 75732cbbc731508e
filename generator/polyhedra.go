package generator

import (
	"github.com/chewxy/math32"

	"mesh-generator/math"
)

func v3(x, y, z float32) math.Vec3 { return math.NewVec3(x, y, z) }
func v2(u, v float32) math.Vec2    { return math.NewVec2(u, v) }

func buildTetrahedron(c *Context) {
	s := math32.Sqrt(0.5)
	verts := [4]math.Vec3{
		v3(s, s, -s),
		v3(-s, s, s),
		v3(s, -s, s),
		v3(-s, -s, -s),
	}
	t0, t1, t2 := v2(0.5, 0), v2(1, 1), v2(0, 1)
	for _, f := range [4][3]int{{1, 0, 3}, {3, 0, 2}, {2, 0, 1}, {2, 1, 3}} {
		c.texturedFace(verts[f[0]], verts[f[1]], verts[f[2]], t0, t1, t2)
	}
}

// polyFace is a flat face with its own vertices. reversed selects the
// (2,1,0) winding over (0,1,2).
type polyFace struct {
	pos      []math.Vec3
	uv       []math.Vec2
	reversed bool
}

func (c *Context) polyFace(f polyFace) {
	for i, p := range f.pos {
		c.Surface.AddVertex(p, f.uv[i])
	}
	switch {
	case len(f.pos) == 4 && f.reversed:
		c.tri(2, 1, 0)
		c.tri(3, 2, 0)
	case len(f.pos) == 4:
		c.quad(0, 1, 2, 3)
	case f.reversed:
		c.tri(2, 1, 0)
	default:
		c.tri(0, 1, 2)
	}
	c.offset(uint32(len(f.pos)))
}

var (
	diamondUV  = []math.Vec2{v2(0.5, 0), v2(1, 0.5), v2(0.5, 1), v2(0, 0.5)}
	cornerUVLo = []math.Vec2{v2(0.5, 0), v2(1, 0), v2(1, 0.5)}
	cornerUVLL = []math.Vec2{v2(0.5, 0), v2(0, 0), v2(0, 0.5)}
	cornerUVHi = []math.Vec2{v2(0.5, 1), v2(1, 1), v2(1, 0.5)}
	cornerUVHL = []math.Vec2{v2(0.5, 1), v2(0, 1), v2(0, 0.5)}
)

// buildCuboctahedron emits six square faces followed by eight triangles,
// each face with unshared vertices.
func buildCuboctahedron(c *Context) {
	const h = 0.5
	faces := []polyFace{
		// squares: back, front, top, bottom, left, right
		{[]math.Vec3{v3(0, h, h), v3(h, 0, h), v3(0, -h, h), v3(-h, 0, h)}, diamondUV, true},
		{[]math.Vec3{v3(0, h, -h), v3(h, 0, -h), v3(0, -h, -h), v3(-h, 0, -h)}, diamondUV, false},
		{[]math.Vec3{v3(0, h, h), v3(h, h, 0), v3(0, h, -h), v3(-h, h, 0)}, diamondUV, false},
		{[]math.Vec3{v3(0, -h, h), v3(h, -h, 0), v3(0, -h, -h), v3(-h, -h, 0)}, diamondUV, true},
		{[]math.Vec3{v3(-h, h, 0), v3(-h, 0, -h), v3(-h, -h, 0), v3(-h, 0, h)}, diamondUV, false},
		{[]math.Vec3{v3(h, h, 0), v3(h, 0, -h), v3(h, -h, 0), v3(h, 0, h)}, diamondUV, true},

		// upper corners
		{[]math.Vec3{v3(0, h, -h), v3(h, h, 0), v3(h, 0, -h)}, cornerUVLo, false},
		{[]math.Vec3{v3(0, h, -h), v3(-h, h, 0), v3(-h, 0, -h)}, cornerUVLL, true},
		{[]math.Vec3{v3(0, h, h), v3(h, h, 0), v3(h, 0, h)}, cornerUVLo, true},
		{[]math.Vec3{v3(0, h, h), v3(-h, h, 0), v3(-h, 0, h)}, cornerUVLL, false},

		// lower corners
		{[]math.Vec3{v3(0, -h, -h), v3(h, -h, 0), v3(h, 0, -h)}, cornerUVHi, true},
		{[]math.Vec3{v3(0, -h, -h), v3(-h, -h, 0), v3(-h, 0, -h)}, cornerUVHL, false},
		{[]math.Vec3{v3(0, -h, h), v3(h, -h, 0), v3(h, 0, h)}, cornerUVHi, false},
		{[]math.Vec3{v3(0, -h, h), v3(-h, -h, 0), v3(-h, 0, h)}, cornerUVHL, true},
	}
	for _, f := range faces {
		c.polyFace(f)
	}
}

const dodecahedronSize = 0.3090169943749473

var dodecahedronFaces = [12][5]int{
	{18, 5, 9, 8, 4},
	{16, 0, 8, 9, 1},
	{19, 7, 10, 11, 6},
	{17, 2, 11, 10, 3},
	{9, 5, 13, 12, 1},
	{11, 2, 12, 13, 6},
	{8, 0, 14, 15, 4},
	{10, 7, 15, 14, 3},
	{13, 5, 18, 19, 6},
	{15, 7, 19, 18, 4},
	{12, 2, 17, 16, 1},
	{14, 0, 16, 17, 3},
}

// buildDodecahedron places a cube of half-size RadiusInner and pushes out
// twelve roof points along the axes, giving twelve pentagons.
func buildDodecahedron(c *Context) {
	r := c.Construct.RadiusInner
	const s = dodecahedronSize
	verts := []math.Vec3{
		v3(-r, -r, -r), v3(r, -r, -r), v3(r, -r, r), v3(-r, -r, r),
		v3(-r, r, -r), v3(r, r, -r), v3(r, r, r), v3(-r, r, r),
	}
	roof := [12]math.Vec3{
		v3(-s, 0, -0.5-s), v3(s, 0, -0.5-s), v3(-s, 0, 0.5+s), v3(s, 0, 0.5+s),
		v3(0.5+s, -s, 0), v3(0.5+s, s, 0), v3(-0.5-s, -s, 0), v3(-0.5-s, s, 0),
		v3(0, -0.5-s, -s), v3(0, -0.5-s, s), v3(0, 0.5+s, -s), v3(0, 0.5+s, s),
	}
	for _, p := range roof {
		verts = append(verts, p.Mul(r*2))
	}
	for _, f := range dodecahedronFaces {
		c.pentagonFace(verts, f[0], f[1], f[2], f[3], f[4])
	}
}

const octahedronApex = 0.707106781

// buildOctahedron is the only polyhedron with shared vertices.
func buildOctahedron(c *Context) {
	c.vertex(-0.5, 0, 0.5, 1, 1)
	c.vertex(0.5, 0, 0.5, 0, 1)
	c.vertex(0.5, 0, -0.5, 1, 1)
	c.vertex(-0.5, 0, -0.5, 0, 1)
	c.vertex(0, octahedronApex, 0, 0.5, 0)
	c.vertex(0, -octahedronApex, 0, 0.5, 0)

	for _, t := range [8][3]uint32{
		{3, 4, 2}, {3, 2, 5}, {0, 3, 5}, {0, 4, 3},
		{1, 4, 0}, {1, 0, 5}, {2, 4, 1}, {2, 1, 5},
	} {
		c.tri(t[0], t[1], t[2])
	}
}
