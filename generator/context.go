package generator

import (
	"mesh-generator/math"
	"mesh-generator/scene"
)

// Context is the state of one generation: the target mesh, the surface being
// filled and the resolved parameters. Builders receive a fresh Context per
// call, so a Generator holds no per-call state.
type Context struct {
	Mesh      *scene.Mesh
	Surface   *scene.Surface
	Construct Construct
}

// ── Emitter helpers ──

func (c *Context) vertex(x, y, z, u, v float32) uint32 {
	return c.Surface.AddVertex(math.NewVec3(x, y, z), math.NewVec2(u, v))
}

func (c *Context) tri(i0, i1, i2 uint32) {
	c.Surface.AddTriangle(i0, i1, i2)
}

func (c *Context) quad(i0, i1, i2, i3 uint32) {
	c.Surface.AddTriangle(i0, i1, i2)
	c.Surface.AddTriangle(i0, i2, i3)
}

func (c *Context) pentagon(i0, i1, i2, i3, i4 uint32) {
	c.Surface.AddTriangle(i0, i1, i2)
	c.Surface.AddTriangle(i0, i2, i3)
	c.Surface.AddTriangle(i0, i3, i4)
}

func (c *Context) offset(n uint32) {
	c.Surface.AddIndexOffset(n)
}

// texturedFace emits a standalone triangle with explicit texture coordinates.
func (c *Context) texturedFace(p0, p1, p2 math.Vec3, t0, t1, t2 math.Vec2) {
	c.Surface.AddVertex(p0, t0)
	c.Surface.AddVertex(p1, t1)
	c.Surface.AddVertex(p2, t2)
	c.tri(0, 1, 2)
	c.offset(3)
}

// planarFace emits a standalone triangle and projects its texture
// coordinates onto the axis plane the face is most aligned with.
func (c *Context) planarFace(p0, p1, p2 math.Vec3) {
	n := p0.Sub(p1).Cross(p1.Sub(p2)).Normalize().Abs()
	project := func(p math.Vec3) math.Vec2 {
		switch {
		case n.X >= n.Y && n.X >= n.Z:
			return math.NewVec2(p.Z, -p.Y)
		case n.Y >= n.X && n.Y >= n.Z:
			return math.NewVec2(p.X, -p.Z)
		default:
			return math.NewVec2(p.X, -p.Y)
		}
	}
	c.texturedFace(p0, p1, p2, project(p0), project(p1), project(p2))
}

var pentagonUV = [5]math.Vec2{
	{X: 0.5, Y: 0}, {X: 1, Y: 0.4}, {X: 0.7, Y: 1}, {X: 0.2, Y: 1}, {X: 0, Y: 0.4},
}

// pentagonFace emits five vertices picked from verts as a triangle fan.
func (c *Context) pentagonFace(verts []math.Vec3, i0, i1, i2, i3, i4 int) {
	for k, i := range [5]int{i0, i1, i2, i3, i4} {
		c.Surface.AddVertex(verts[i], pentagonUV[k])
	}
	c.pentagon(0, 1, 2, 3, 4)
	c.offset(5)
}
