package generator

import "mesh-generator/math"

// quadFace emits a (SegmentsHorz+1) x (SegmentsVert+1) grid spanning the
// rectangle from v0 to v1. dirU and dirV select which axes vary along the
// grid's columns and rows; reversed flips the winding.
func (c *Context) quadFace(v0 math.Vec3, t0 math.Vec2, v1 math.Vec3, t1 math.Vec2, dirU, dirV math.Vec3, reversed bool) {
	vert := c.Construct.SegmentsVert
	horz := c.Construct.SegmentsHorz
	d := v1.Sub(v0)
	var n uint32

	for y := 0; y <= vert; y++ {
		fy := float32(y) / float32(vert)
		v := dirV.Mul(fy)
		for x := 0; x <= horz; x++ {
			fx := float32(x) / float32(horz)
			u := dirU.Mul(fx)
			c.vertex(
				v0.X+d.X*(u.X+v.X),
				v0.Y+d.Y*(u.Y+v.Y),
				v0.Z+d.Z*(u.Z+v.Z),
				t0.X+(t1.X-t0.X)*fx,
				t0.Y+(t1.Y-t0.Y)*fy,
			)
			n++
		}
	}

	row := uint32(horz + 1)
	for y := uint32(0); y < uint32(vert); y++ {
		for x := uint32(0); x < uint32(horz); x++ {
			i0 := y*row + x
			i1 := i0 + 1
			i2 := (y+1)*row + x + 1
			i3 := (y+1)*row + x
			if reversed {
				c.quad(i3, i2, i1, i0)
			} else {
				c.quad(i0, i1, i2, i3)
			}
		}
	}
	c.offset(n)
}

var (
	uv00 = math.NewVec2(0, 0)
	uv11 = math.NewVec2(1, 1)
)

func buildCube(c *Context) {
	r := c.Construct.RadiusInner
	x, y, z := math.Vec3Right, math.Vec3Up, math.Vec3Front

	// back, front, top, bottom, left, right
	faces := [6]struct {
		from, to   math.Vec3
		dirU, dirV math.Vec3
		reversed   bool
	}{
		{math.NewVec3(r, r, r), math.NewVec3(-r, -r, r), x, y, false},
		{math.NewVec3(-r, r, -r), math.NewVec3(r, -r, -r), x, y, false},
		{math.NewVec3(-r, r, r), math.NewVec3(r, r, -r), x, z, false},
		{math.NewVec3(-r, -r, r), math.NewVec3(r, -r, -r), x, z, true},
		{math.NewVec3(-r, r, r), math.NewVec3(-r, -r, -r), z, y, false},
		{math.NewVec3(r, r, -r), math.NewVec3(r, -r, r), z, y, false},
	}
	for _, f := range faces {
		c.quadFace(f.from, uv00, f.to, uv11, f.dirU, f.dirV, f.reversed)
	}
}

func buildPlane(c *Context) {
	c.quadFace(
		math.NewVec3(-0.5, 0, 0.5), uv00,
		math.NewVec3(0.5, 0, -0.5), uv11,
		math.Vec3Right, math.Vec3Front, false,
	)
}
