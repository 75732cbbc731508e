package generator

import (
	"mesh-generator/core"
	"mesh-generator/math"
	"mesh-generator/scene"
)

// buildWireCube emits the twelve edges of a cube as a line list and
// switches the mesh to an unlit white material.
func buildWireCube(c *Context) {
	r := c.Construct.RadiusInner

	c.Mesh.Material = scene.UnlitMaterial("wirecube")

	s := c.Surface
	s.Primitive = scene.PrimitiveLines

	corner := func(on bool) float32 {
		if on {
			return r
		}
		return -r
	}
	for i := 0; i < 8; i++ {
		idx := s.AddVertex(math.NewVec3(corner(i >= 4), corner(i%4 >= 2), corner(i%2 == 1)), math.Vec2{})
		s.SetVertexColor(int(idx), core.ColorWhite)
	}

	for i := uint32(0); i < 4; i++ {
		s.AddLine(i*2, i*2+1)
		s.AddLine(i, i+4)
	}
	s.AddLine(0, 2)
	s.AddLine(1, 3)
	s.AddLine(4, 6)
	s.AddLine(5, 7)
}
