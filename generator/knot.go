package generator

import (
	"github.com/chewxy/math32"

	"mesh-generator/math"
)

const (
	knotTurns  = 7
	knotSlices = 16
	knotStacks = 256
)

// buildTorusKnot sweeps a circular tube of radius RadiusOuter along a closed
// (2, 7) knot curve. RadiusInner scales the knot's wobble.
func buildTorusKnot(c *Context) {
	r1 := c.Construct.RadiusInner
	r2 := c.Construct.RadiusOuter

	var centers [knotStacks]math.Vec3
	for i := range centers {
		t := 2 * math32.Pi * float32(i) / knotStacks
		w := 1 + r1*math32.Cos(t*knotTurns)
		centers[i] = math.NewVec3(
			w*math32.Cos(t*2),
			w*math32.Sin(t*knotTurns)*r1,
			w*math32.Sin(t*2),
		)
	}

	for i := 0; i < knotStacks; i++ {
		tangent := centers[(i+1)%knotStacks].Sub(centers[i])
		side := math.Vec3Up.Cross(tangent)
		radial := tangent.Cross(side).SetLength(r2)
		for j := 0; j < knotSlices; j++ {
			p := centers[i].Add(radial.RotatedAxis(360*float32(j)/knotSlices, tangent))
			c.Surface.AddVertex(p, math.NewVec2(float32(i)/5, float32(j)/knotSlices*3))
		}
	}

	next := func(k, n int) int { return (k + 1) % n }
	for i := 0; i < knotStacks; i++ {
		for j := 0; j < knotSlices; j++ {
			v0 := uint32(i*knotSlices + j)
			v1 := uint32(i*knotSlices + next(j, knotSlices))
			v2 := uint32(next(i, knotStacks)*knotSlices + j)
			v3 := uint32(next(i, knotStacks)*knotSlices + next(j, knotSlices))
			c.tri(v0, v1, v2)
			c.tri(v3, v2, v1)
		}
	}
}

// buildSpiral sweeps a tube of radius RadiusOuter along a helix of radius
// RadiusInner. RotationDegree is the total sweep and RotationDistance the
// rise per full turn; the helix is centered on y = 0.
func buildSpiral(c *Context) {
	detail := math.ClampInt(c.Construct.SegmentsVert, 2, 180) * 2
	r1 := c.Construct.RadiusInner
	r2 := c.Construct.RadiusOuter
	sweep := c.Construct.RotationDegree
	rise := c.Construct.RotationDistance

	step := 360 / float32(detail)
	height := sweep * rise / 360 / 2
	length := int(float32(detail)*sweep/360) + 1

	ringPoint := func(i, j int) math.Vec3 {
		a := float32(i) * step
		b := float32(j) * step
		return math.NewVec3(
			sin(a)*(r1+cos(b)*r2),
			a*rise/360+sin(b)*r2-height,
			cos(a)*(r1+cos(b)*r2),
		)
	}

	for i := 0; i < length; i++ {
		for j := 0; j <= detail; j++ {
			b := float32(j) * step
			c.Surface.AddVertex(ringPoint(i, j), math.NewVec2(float32(i)*step*3/360, 0.5+sin(b)*0.5))
		}
	}

	if c.Construct.HasCap {
		for j := 0; j <= detail; j++ {
			b := float32(j) * step
			c.vertex(0, sin(b)*r2-height, r1+cos(b)*r2, 0.5+sin(b-90)*0.5, 0.5-cos(b-90)*0.5)
		}
		for j := 0; j <= detail; j++ {
			b := float32(j) * step
			c.Surface.AddVertex(ringPoint(length-1, j), math.NewVec2(0.5+sin(b+90)*0.5, 0.5+cos(b+90)*0.5))
		}
	}

	row := uint32(detail + 1)
	for i := uint32(0); i+1 < uint32(length); i++ {
		for j := uint32(0); j < uint32(detail); j++ {
			v0 := i*row + j
			v1 := (i+1)*row + j
			c.tri(v0, v1, v1+1)
			c.tri(v0, v1+1, v0+1)
		}
	}

	if c.Construct.HasCap {
		bottom := uint32(length) * row
		for j := uint32(1); j+1 < uint32(detail); j++ {
			c.tri(bottom, bottom+j, bottom+j+1)
		}
		top := uint32(length+1) * row
		for j := uint32(1); j+1 < uint32(detail); j++ {
			c.tri(top+j+1, top+j, top)
		}
	}
}
