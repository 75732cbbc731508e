package generator

import "mesh-generator/math"

const (
	teapotVertexCount   = 1178
	teapotTriangleCount = 2256

	teapotPatchScale = 0.02
)

// buildTeapot replays the precomputed teapot table, or tessellates the
// Bézier control nets when DynamicTeapot is set.
func buildTeapot(c *Context) {
	if c.Construct.DynamicTeapot {
		buildDynamicTeapot(c)
		return
	}
	for i := 0; i < teapotVertexCount; i++ {
		x, y, z := teapotVertices[i*3], teapotVertices[i*3+1], teapotVertices[i*3+2]
		c.vertex(x, y, z, x, y)
	}
	for i := 0; i < teapotTriangleCount; i++ {
		c.tri(uint32(teapotIndices[i*3]), uint32(teapotIndices[i*3+1]), uint32(teapotIndices[i*3+2]))
	}
}

func buildDynamicTeapot(c *Context) {
	segments := math.ClampInt(c.Construct.SegmentsVert, 1, 100)
	scale := teapotPatchScale * c.Construct.RadiusInner

	var anchors [4][4]math.Vec3
	for _, patch := range teapotPatches {
		for j := range patch {
			for k, p := range patch[j] {
				anchors[j][k] = math.NewVec3(p[0], p[1], p[2]).Mul(scale)
			}
		}
		c.bezierPatchFace(anchors, segments, true)
	}

	// The control nets are Z-up.
	c.Surface.Turn(math.NewVec3(-90, 0, 0))
}
