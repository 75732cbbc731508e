package generator

import "mesh-generator/math"

var (
	sin = math.SinDeg
	cos = math.CosDeg
)

// Angles in the ring builders below accumulate in float32, so the number of
// ring steps can differ by one from the segment count when 360 is not an
// exact multiple of the step.

func buildCone(c *Context) {
	segs := max(3, c.Construct.SegmentsVert)
	r := c.Construct.RadiusInner
	step := 360 / float32(segs)

	c.vertex(0, 0.5, 0, 0.5, 0)

	var v uint32
	for a := float32(0); a < 360; a, v = a+step, v+2 {
		c.vertex(sin(a+step)*r, -0.5, cos(a+step)*r, (360-a-step)/360, 1)
		c.vertex(sin(a)*r, -0.5, cos(a)*r, (360-a)/360, 1)
		c.tri(v+2, v+1, 0)
	}

	if !c.Construct.HasCap {
		return
	}
	c.offset(v + 1)
	c.vertex(0, -0.5, r, 0.5, 1)
	c.vertex(sin(step)*r, -0.5, cos(step)*r, 0.5+sin(step)*r, 0.5+cos(step)*r)
	v = 0
	for a := step * 2; a < 360; a, v = a+step, v+1 {
		c.vertex(sin(a)*r, -0.5, cos(a)*r, 0.5+sin(a)*r, 0.5+cos(a)*r)
		c.tri(v+2, v+1, 0)
	}
}

func buildCylinder(c *Context) {
	detail := math.ClampInt(c.Construct.SegmentsVert, 3, 360)
	r := c.Construct.RadiusInner
	step := 360 / float32(detail)

	// Seam column; the side band closes against it.
	c.vertex(0, 0.5, 0.5, 3, 0)
	c.vertex(0, -0.5, 0.5, 3, 1)

	for a := step; a <= 360; a += step {
		u := (360 - a) / 360 * 3
		c.vertex(sin(a)*r, 0.5, cos(a)*r, u, 0)
		c.vertex(sin(a)*r, -0.5, cos(a)*r, u, 1)
		c.tri(3, 2, 0)
		c.tri(1, 3, 0)
		c.offset(2)
	}

	if !c.Construct.HasCap {
		return
	}

	// Top
	c.offset(2)
	c.vertex(0, 0.5, r, 0.5, 0)
	c.vertex(sin(step)*r, 0.5, cos(step)*r, 0.5+sin(step)*0.5, 0.5-cos(step)*0.5)
	var v uint32
	for a := step * 2; a < 360; a, v = a+step, v+1 {
		c.vertex(sin(a)*r, 0.5, cos(a)*r, 0.5+sin(a)*0.5, 0.5-cos(a)*0.5)
		c.tri(0, v+1, v+2)
	}
	c.offset(v + 2)

	// Bottom
	c.vertex(0, -0.5, r, 0.5, 1)
	c.vertex(sin(step)*r, -0.5, cos(step)*r, 0.5+sin(step)*0.5, 0.5+cos(step)*0.5)
	v = 0
	for a := step * 2; a < 360; a, v = a+step, v+1 {
		c.vertex(sin(a)*r, -0.5, cos(a)*r, 0.5+sin(a)*0.5, 0.5+cos(a)*0.5)
		c.tri(v+2, v+1, 0)
	}
}

// buildPipe emits every wall and cap segment as its own quad, so adjacent
// segments do not share vertices.
func buildPipe(c *Context) {
	detail := math.ClampInt(c.Construct.SegmentsVert, 3, 360)
	r1 := c.Construct.RadiusInner
	r2 := c.Construct.RadiusOuter
	step := 360 / float32(detail)

	wall := func(r float32, a, b float32, outward bool) {
		ua, ub := (360-a)/360*3, (360-b)/360*3
		c.vertex(sin(a)*r, 0.5, cos(a)*r, ua, 0)
		c.vertex(sin(b)*r, 0.5, cos(b)*r, ub, 0)
		c.vertex(sin(b)*r, -0.5, cos(b)*r, ub, 1)
		c.vertex(sin(a)*r, -0.5, cos(a)*r, ua, 1)
		if outward {
			c.tri(2, 1, 0)
			c.tri(3, 2, 0)
		} else {
			c.quad(0, 1, 2, 3)
		}
		c.offset(4)
	}
	ring := func(y, a, b float32) {
		// UV v runs downwards on the top cap and upwards on the bottom one.
		sv := float32(-1)
		if y < 0 {
			sv = 1
		}
		corner := func(r, ang float32) {
			c.vertex(sin(ang)*r, y, cos(ang)*r, 0.5+sin(ang)*r, 0.5+sv*cos(ang)*r)
		}
		corner(r1, a)
		corner(r1, b)
		corner(r2, b)
		corner(r2, a)
		if y > 0 {
			c.quad(0, 1, 2, 3)
		} else {
			c.tri(2, 1, 0)
			c.tri(3, 2, 0)
		}
		c.offset(4)
	}

	for a := float32(0); a < 360; a += step {
		wall(r1, a, a+step, true)
		wall(r2, a, a+step, false)
		if c.Construct.HasCap {
			ring(0.5, a, a+step)
			ring(-0.5, a, a+step)
		}
	}
}

func buildDisk(c *Context) {
	detail := math.ClampInt(c.Construct.SegmentsVert, 3, 360)
	r1 := c.Construct.RadiusInner
	r2 := c.Construct.RadiusOuter
	step := 360 / float32(detail)

	rim := func(r float32, i int) {
		x := sin(float32(i)*step) * r
		z := cos(float32(i)*step) * r
		c.vertex(x, 0, z, 0.5+x, 0.5-z)
	}

	if c.Construct.HasCap {
		// The filled disk ignores both radii and always spans 0.5.
		c.vertex(0, 0, 0.5, 0.5, 0)
		rim(0.5, 1)
		for i := 2; i < detail; i++ {
			rim(0.5, i)
			c.tri(0, uint32(i-1), uint32(i))
		}
		return
	}

	for i := 0; i < detail; i++ {
		rim(r1, i)
		rim(r1, i+1)
		rim(r2, i+1)
		rim(r2, i)
		c.quad(0, 1, 2, 3)
		c.offset(4)
	}
}
