package scene

import (
	"mesh-generator/core"
	"mesh-generator/math"
)

// CreateGrid builds a flat line grid on the XZ plane spanning size units
// with the given number of cells per axis. The X axis is red, the Z axis
// blue, every other line dark gray. The preview draws it under a mesh.
func CreateGrid(size float32, divisions int) *Mesh {
	if divisions < 1 {
		divisions = 1
	}

	half := size / 2.0
	step := size / float32(divisions)

	gray := core.Color{R: 0.35, G: 0.35, B: 0.35, A: 1}
	red := core.Color{R: 0.8, G: 0.15, B: 0.15, A: 1}
	blue := core.Color{R: 0.15, G: 0.35, B: 0.9, A: 1}

	m := NewMesh("Grid")
	m.Material = UnlitMaterial("GridUnlit")
	s := m.CreateSurface()
	s.Primitive = PrimitiveLines

	addLine := func(a, b math.Vec3, c core.Color) {
		i0 := s.AddVertex(a, math.Vec2{})
		i1 := s.AddVertex(b, math.Vec2{})
		s.SetVertexColor(int(i0), c)
		s.SetVertexColor(int(i1), c)
		s.Vertices[i0].Normal = math.Vec3Up
		s.Vertices[i1].Normal = math.Vec3Up
		s.AddLine(0, 1)
		s.AddIndexOffset(2)
	}

	for i := 0; i <= divisions; i++ {
		x := -half + float32(i)*step
		c := gray
		if divisions%2 == 0 && i == divisions/2 {
			c = blue
		}
		addLine(math.Vec3{X: x, Z: -half}, math.Vec3{X: x, Z: half}, c)
	}
	for i := 0; i <= divisions; i++ {
		z := -half + float32(i)*step
		c := gray
		if divisions%2 == 0 && i == divisions/2 {
			c = red
		}
		addLine(math.Vec3{X: -half, Z: z}, math.Vec3{X: half, Z: z}, c)
	}

	m.RebuildIndexBuffer()
	return m
}
