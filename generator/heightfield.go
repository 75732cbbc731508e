package generator

import (
	"mesh-generator/math"
	"mesh-generator/scene"
)

// HeightField builds a segments x segments grid over the unit square in XZ,
// centered on the origin. Vertex height is the brightness of the height map
// sampled at the matching texel, scaled to [0, 1]. A nil or empty height map
// yields an empty mesh.
func (g *Generator) HeightField(heightMap *scene.Texture, segments int) *scene.Mesh {
	mesh := scene.NewMesh("heightfield")
	if heightMap == nil || len(heightMap.Pixels) == 0 {
		g.log.Warn("heightfield: no height map, returning empty mesh")
		return mesh
	}
	if segments <= 0 {
		g.log.Warn("heightfield: invalid segment count", "segments", segments)
		return mesh
	}

	size := 1 / float32(segments)
	w, h := float32(heightMap.Width), float32(heightMap.Height)
	s := mesh.CreateSurface()

	for z := 0; z <= segments; z++ {
		fz := size * float32(z)
		for x := 0; x <= segments; x++ {
			fx := size * float32(x)
			y := float32(heightMap.Brightness(int(fx*w), int(fz*h))) / 255
			s.AddVertex(math.NewVec3(fx-0.5, y, -fz+0.5), math.NewVec2(fx, fz))
		}
	}

	row := uint32(segments + 1)
	for z := uint32(0); z < uint32(segments); z++ {
		for x := uint32(0); x < uint32(segments); x++ {
			v0 := z*row + x
			v3 := (z+1)*row + x
			s.AddTriangle(v0, v0+1, v3+1)
			s.AddTriangle(v0, v3+1, v3)
		}
	}

	mesh.RebuildIndexBuffer()
	mesh.RecomputeNormals()
	g.log.Debug("heightfield built", "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
	return mesh
}
