package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/core"
	"mesh-generator/math"
)

// unitQuad builds a two-triangle quad on the XY plane facing +Z.
func unitQuad(m *Mesh) *Surface {
	s := m.CreateSurface()
	s.AddVertex(math.Vec3{X: -1, Y: -1}, math.Vec2{X: 0, Y: 1})
	s.AddVertex(math.Vec3{X: 1, Y: -1}, math.Vec2{X: 1, Y: 1})
	s.AddVertex(math.Vec3{X: 1, Y: 1}, math.Vec2{X: 1, Y: 0})
	s.AddVertex(math.Vec3{X: -1, Y: 1}, math.Vec2{X: 0, Y: 0})
	s.AddTriangle(0, 1, 2)
	s.AddTriangle(0, 2, 3)
	s.AddIndexOffset(4)
	return s
}

func TestSurfaceIndexOffset(t *testing.T) {
	m := NewMesh("offset")
	s := unitQuad(m)

	assert.Equal(t, uint32(4), s.IndexOffset())
	s.AddVertex(math.Vec3{}, math.Vec2{})
	s.AddVertex(math.Vec3{X: 1}, math.Vec2{})
	s.AddVertex(math.Vec3{Y: 1}, math.Vec2{})
	s.AddTriangle(0, 1, 2)

	assert.Equal(t, [3]uint32{4, 5, 6}, s.Triangle(2))
	assert.Equal(t, 3, s.TriangleCount())
	assert.Equal(t, 0, s.LineCount())

	s.SetIndexOffset(0)
	s.AddTriangle(3, 2, 1)
	assert.Equal(t, [3]uint32{3, 2, 1}, s.Triangle(3))
}

func TestSurfaceVertexDefaults(t *testing.T) {
	s := newSurface()
	i := s.AddVertex(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec2{X: 0.5, Y: 0.25})

	assert.Equal(t, uint32(0), i)
	assert.Equal(t, core.ColorWhite, s.Vertices[0].Color)
	assert.Equal(t, math.Vec2{X: 0.5, Y: 0.25}, s.Vertices[0].UV)

	s.SetVertexColor(0, core.ColorBlack)
	assert.Equal(t, core.ColorBlack, s.Vertices[0].Color)
}

func TestSurfaceLines(t *testing.T) {
	s := newSurface()
	s.Primitive = PrimitiveLines
	s.AddVertex(math.Vec3{}, math.Vec2{})
	s.AddVertex(math.Vec3{X: 1}, math.Vec2{})
	s.AddLine(0, 1)

	assert.Equal(t, 1, s.LineCount())
	assert.Equal(t, 0, s.TriangleCount())
	assert.Equal(t, "lines", s.Primitive.String())
}

func TestMeshSurfaceAccess(t *testing.T) {
	m := NewMesh("access")
	assert.Nil(t, m.Surface(0))
	assert.Nil(t, m.LastSurface())
	assert.True(t, m.IsEmpty())

	a := m.CreateSurface()
	b := m.CreateSurface()
	assert.Same(t, a, m.Surface(0))
	assert.Same(t, b, m.LastSurface())
	assert.Nil(t, m.Surface(-1))
	assert.Nil(t, m.Surface(2))
	assert.True(t, m.IsEmpty())
}

func TestMeshCounts(t *testing.T) {
	m := NewMesh("counts")
	unitQuad(m)
	unitQuad(m)

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 4, m.TriangleCount())
	assert.False(t, m.IsEmpty())

	st := m.Stats()
	assert.Equal(t, 2, st.Surfaces)
	assert.Equal(t, 8, st.Vertices)
	assert.Equal(t, 4, st.Triangles)
}

func TestMeshRebuildIndexBuffer(t *testing.T) {
	m := NewMesh("rebuild")
	unitQuad(m)
	big := m.CreateSurface()
	for i := 0; i < 0x10000; i++ {
		big.AddVertex(math.Vec3{X: float32(i)}, math.Vec2{})
	}

	m.RebuildIndexBuffer()
	assert.Equal(t, IndexUint16, m.Surface(0).Format)
	assert.Equal(t, IndexUint32, big.Format)
	require.True(t, m.HasLocalAABB)
	assert.Equal(t, float32(0xFFFF), m.LocalAABB.Max.X)
	assert.Equal(t, float32(-1), m.LocalAABB.Min.X)
}

func TestMeshBounds(t *testing.T) {
	m := NewMesh("bounds")
	assert.Equal(t, AABB{}, m.Bounds())

	unitQuad(m)
	b := m.Bounds()
	assert.Equal(t, math.Vec3{X: -1, Y: -1}, b.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 1}, b.Max)
	assert.Equal(t, math.Vec3{}, b.Center())
	assert.InDelta(t, 1.4142135, b.Radius(), 1e-5)
	assert.True(t, b.Contains(math.Vec3{X: 1.0005}, 1e-3))
	assert.False(t, b.Contains(math.Vec3{X: 1.1}, 1e-3))
}

func TestRecomputeNormalsFlat(t *testing.T) {
	m := NewMesh("flat")
	m.SetShading(ShadingFlat)
	unitQuad(m)

	m.RecomputeNormals()
	for i, v := range m.Surface(0).Vertices {
		assert.InDelta(t, 1, v.Normal.Z, 1e-6, "vertex %d", i)
	}
}

func TestRecomputeNormalsGouraudWeldsSeams(t *testing.T) {
	// Two faces of a roof sharing an edge, with the edge vertices
	// duplicated like a texture seam.
	m := NewMesh("roof")
	s := m.CreateSurface()
	s.AddVertex(math.Vec3{X: -1, Y: 0, Z: 1}, math.Vec2{})
	s.AddVertex(math.Vec3{X: 0, Y: 1, Z: 1}, math.Vec2{})
	s.AddVertex(math.Vec3{X: 0, Y: 1, Z: -1}, math.Vec2{})
	s.AddTriangle(0, 1, 2)
	s.AddIndexOffset(3)
	s.AddVertex(math.Vec3{X: 0, Y: 1, Z: 1}, math.Vec2{X: 1})
	s.AddVertex(math.Vec3{X: 1, Y: 0, Z: 1}, math.Vec2{X: 1})
	s.AddVertex(math.Vec3{X: 0, Y: 1, Z: -1}, math.Vec2{X: 1})
	s.AddTriangle(0, 1, 2)

	m.SetShading(ShadingGouraud)
	m.RecomputeNormals()

	ridgeA := s.Vertices[1].Normal
	ridgeB := s.Vertices[3].Normal
	assert.Equal(t, ridgeA, ridgeB)
	assert.InDelta(t, 1, ridgeA.Y, 1e-6)
	assert.InDelta(t, 0, ridgeA.X, 1e-6)

	// Eave vertices keep their own face normal.
	assert.InDelta(t, -0.70710677, s.Vertices[0].Normal.X, 1e-6)
	assert.InDelta(t, 0.70710677, s.Vertices[4].Normal.X, 1e-6)
}

func TestRecomputeNormalsSkipsLines(t *testing.T) {
	m := NewMesh("lines")
	s := m.CreateSurface()
	s.Primitive = PrimitiveLines
	s.AddVertex(math.Vec3{}, math.Vec2{})
	s.AddVertex(math.Vec3{X: 1}, math.Vec2{})
	s.AddLine(0, 1)

	m.RecomputeNormals()
	assert.Equal(t, math.Vec3{}, s.Vertices[0].Normal)
}

func TestMeshTurn(t *testing.T) {
	m := NewMesh("turn")
	unitQuad(m)
	m.RecomputeNormals()
	m.RebuildIndexBuffer()

	// -90 degrees about X takes +Z to +Y.
	m.Turn(math.Vec3{X: -90})
	for _, v := range m.Surface(0).Vertices {
		assert.InDelta(t, 1, v.Normal.Y, 1e-5)
		assert.InDelta(t, 0, v.Position.Y, 1e-5)
	}
	assert.InDelta(t, -1, m.LocalAABB.Min.Z, 1e-5)
	assert.InDelta(t, 1, m.LocalAABB.Max.Z, 1e-5)
}

func TestSurfaceTurnLeavesSiblings(t *testing.T) {
	m := NewMesh("turn")
	first := unitQuad(m)
	second := unitQuad(m)
	m.RecomputeNormals()

	second.Turn(math.Vec3{X: -90})
	for _, v := range first.Vertices {
		assert.InDelta(t, 1, v.Normal.Z, 1e-5)
		assert.InDelta(t, 0, v.Position.Z, 1e-5)
	}
	for _, v := range second.Vertices {
		assert.InDelta(t, 1, v.Normal.Y, 1e-5)
		assert.InDelta(t, 0, v.Position.Y, 1e-5)
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	p := math.Vec3{X: 1}
	assert.Equal(t, math.Vec3{}, FaceNormal(p, p, p))
}

func TestCreateGrid(t *testing.T) {
	g := CreateGrid(10, 4)
	s := g.Surface(0)
	require.NotNil(t, s)

	assert.Equal(t, PrimitiveLines, s.Primitive)
	assert.Equal(t, 10, s.LineCount())
	assert.Equal(t, 20, s.VertexCount())
	assert.False(t, g.Material.Lighting)
	assert.Equal(t, math.Vec3{X: -5, Z: -5}, g.LocalAABB.Min)
}

func TestShadingString(t *testing.T) {
	assert.Equal(t, "flat", ShadingFlat.String())
	assert.Equal(t, "gouraud", ShadingGouraud.String())
}
