package generator

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/math"
	"mesh-generator/scene"
)

func quietGenerator(opts ...Option) *Generator {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(opts...)
}

func generate(t *testing.T, kind Kind, c Construct) *scene.Mesh {
	t.Helper()
	m := scene.NewMesh(kind.String())
	require.NoError(t, quietGenerator().Generate(m, kind, c))
	require.Len(t, m.Surfaces, 1)
	return m
}

// outwardFailures counts non-degenerate triangles whose winding normal does
// not point away from the origin.
func outwardFailures(s *scene.Surface) int {
	bad := 0
	for i := 0; i < s.TriangleCount(); i++ {
		tri := s.Triangle(i)
		a := s.Vertices[tri[0]].Position
		b := s.Vertices[tri[1]].Position
		c := s.Vertices[tri[2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Length() < 1e-7 {
			continue
		}
		centroid := a.Add(b).Add(c).Div(3)
		if n.Dot(centroid) <= 0 {
			bad++
		}
	}
	return bad
}

func TestGenerateDefaultCounts(t *testing.T) {
	tests := []struct {
		kind      Kind
		vertices  int
		triangles int
	}{
		{Cube, 24, 12},
		{Plane, 4, 2},
		{Cone, 61, 38},
		{Cylinder, 82, 76},
		{Sphere, 231, 360},
		{Icosphere, 960, 320},
		{Torus, 462, 800},
		{TorusKnot, 4096, 8192},
		{Spiral, 483, 836},
		{Pipe, 320, 160},
		{Disk, 20, 18},
		{Tetrahedron, 12, 4},
		{Cuboctahedron, 48, 20},
		{Dodecahedron, 60, 36},
		{Octahedron, 6, 8},
		{Icosahedron, 60, 20},
		{Teapot, teapotVertexCount, teapotTriangleCount},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := generate(t, tt.kind, DefaultConstruct())
			assert.Equal(t, tt.vertices, m.VertexCount())
			assert.Equal(t, tt.triangles, m.TriangleCount())
		})
	}
}

func TestGenerateIndicesInRange(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			m := generate(t, k, DefaultConstruct())
			s := m.Surfaces[0]
			require.NotEmpty(t, s.Indices)
			for _, idx := range s.Indices {
				require.Less(t, int(idx), s.VertexCount())
			}
		})
	}
}

func TestClosedShapesFaceOutward(t *testing.T) {
	kinds := []Kind{
		Cube, Sphere, Icosphere, Tetrahedron, Cuboctahedron,
		Dodecahedron, Octahedron, Icosahedron, Cone, Cylinder,
	}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			m := generate(t, k, DefaultConstruct())
			assert.Zero(t, outwardFailures(m.Surfaces[0]))
		})
	}
}

func TestFlatShapesFaceUp(t *testing.T) {
	for _, k := range []Kind{Plane, Disk} {
		for _, hasCap := range []bool{true, false} {
			c := DefaultConstruct()
			c.HasCap = hasCap
			m := generate(t, k, c)
			for _, v := range m.Surfaces[0].Vertices {
				assert.InDelta(t, 1, v.Normal.Y, 1e-5, "%s cap=%v", k, hasCap)
			}
		}
	}
}

func TestCapAddsGeometry(t *testing.T) {
	tests := []struct {
		kind      Kind
		segments  int
		vertices  int
		triangles int
	}{
		{Cone, 20, 20, 18},
		{Cone, 8, 8, 6},
		{Cylinder, 20, 40, 36},
		{Cylinder, 12, 24, 20},
		{Pipe, 20, 160, 80},
		{Pipe, 36, 288, 144},
		{Spiral, 10, 42, 36},
		{Spiral, 4, 18, 12},
	}

	for _, tt := range tests {
		c := DefaultConstruct()
		c.SegmentsVert, c.SegmentsHorz = tt.segments, tt.segments
		capped := generate(t, tt.kind, c)
		c.HasCap = false
		open := generate(t, tt.kind, c)

		assert.Equal(t, tt.vertices, capped.VertexCount()-open.VertexCount(), "%s/%d", tt.kind, tt.segments)
		assert.Equal(t, tt.triangles, capped.TriangleCount()-open.TriangleCount(), "%s/%d", tt.kind, tt.segments)
	}
}

func TestDiskWithoutCapIsAnnulus(t *testing.T) {
	c := DefaultConstruct()
	c.HasCap = false
	m := generate(t, Disk, c)

	assert.Equal(t, 80, m.VertexCount())
	assert.Equal(t, 40, m.TriangleCount())
	for _, v := range m.Surfaces[0].Vertices {
		r := math.NewVec3(v.Position.X, 0, v.Position.Z).Length()
		assert.True(t, math32Near(r, 0.5) || math32Near(r, 0.25), "radius %v", r)
	}
}

func math32Near(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}

func TestSphereCounts(t *testing.T) {
	for _, s := range []int{2, 5, 10, 16} {
		m := generate(t, Sphere, NewConstruct(s, 1, true, scene.ShadingGouraud))
		assert.Equal(t, (s+1)*(2*s+1), m.VertexCount(), "segments %d", s)
		assert.Equal(t, 4*s*(s-1), m.TriangleCount(), "segments %d", s)
	}
}

func TestSphereRadius(t *testing.T) {
	m := generate(t, Sphere, NewConstruct(8, 2, true, scene.ShadingGouraud))
	for _, v := range m.Surfaces[0].Vertices {
		assert.InDelta(t, 2, v.Position.Length(), 1e-5)
	}
}

func TestIcosphereSubdivision(t *testing.T) {
	for depth, tris := range map[int]int{1: 20, 2: 80, 3: 320, 4: 1280} {
		m := generate(t, Icosphere, NewConstruct(depth, 0.5, true, scene.ShadingGouraud))
		assert.Equal(t, tris, m.TriangleCount(), "depth %d", depth)
		assert.Equal(t, tris*3, m.VertexCount(), "depth %d", depth)

		want := math.NewVec3(0, 0.5, -0.5-icosphereSize).Mul(0.5).Length()
		for _, v := range m.Surfaces[0].Vertices {
			require.InDelta(t, want, v.Position.Length(), 1e-5)
		}
	}
}

func TestIcosahedronIgnoresSegments(t *testing.T) {
	m := generate(t, Icosahedron, NewConstruct(5, 0.5, true, scene.ShadingGouraud))
	assert.Equal(t, 20, m.TriangleCount())
}

func TestForcedFlatShading(t *testing.T) {
	for _, k := range Kinds() {
		m := generate(t, k, DefaultConstruct())
		if k.ForcesFlatShading() {
			assert.Equal(t, scene.ShadingFlat, m.Shading, k.String())
		} else {
			assert.Equal(t, scene.ShadingGouraud, m.Shading, k.String())
		}
	}
}

func TestCubeRadius(t *testing.T) {
	m := generate(t, Cube, NewConstruct(3, 2, true, scene.ShadingGouraud))
	b := m.Bounds()
	assert.Equal(t, math.NewVec3(-2, -2, -2), b.Min)
	assert.Equal(t, math.NewVec3(2, 2, 2), b.Max)
	assert.Equal(t, 6*16, m.VertexCount())
	assert.Equal(t, 6*18, m.TriangleCount())
}

func TestQuadFaceUVs(t *testing.T) {
	m := generate(t, Plane, NewConstruct(2, 0.5, true, scene.ShadingFlat))
	s := m.Surfaces[0]
	require.Equal(t, 9, s.VertexCount())

	assert.Equal(t, math.NewVec2(0, 0), s.Vertices[0].UV)
	assert.Equal(t, math.NewVec2(0.5, 0.5), s.Vertices[4].UV)
	assert.Equal(t, math.NewVec2(1, 1), s.Vertices[8].UV)
	assert.Equal(t, math.NewVec3(-0.5, 0, 0.5), s.Vertices[0].Position)
	assert.Equal(t, math.NewVec3(0.5, 0, -0.5), s.Vertices[8].Position)
}

func TestTorusKnotIgnoresSegments(t *testing.T) {
	a := generate(t, TorusKnot, NewConstruct(3, 0.5, true, scene.ShadingGouraud))
	b := generate(t, TorusKnot, DefaultConstruct())
	assert.Equal(t, b.VertexCount(), a.VertexCount())
	assert.Equal(t, knotStacks*knotSlices*2, a.TriangleCount())
}

func TestSpiralSweep(t *testing.T) {
	c := DefaultConstruct()
	c.SegmentsVert, c.SegmentsHorz = 4, 4
	c.RotationDegree = 720
	c.RotationDistance = 2
	c.HasCap = false
	m := generate(t, Spiral, c)

	// 8 steps per turn over two turns, plus the closing ring.
	assert.Equal(t, 17*9, m.VertexCount())
	assert.Equal(t, 16*8*2, m.TriangleCount())

	b := m.Bounds()
	assert.InDelta(t, 0, b.Center().Y, 1e-4)
	assert.InDelta(t, 4+0.5, b.Size().Y, 1e-4)
}

func TestPipeDuplicatesVertices(t *testing.T) {
	c := DefaultConstruct()
	c.SegmentsVert, c.SegmentsHorz = 8, 8
	m := generate(t, Pipe, c)
	assert.Equal(t, 8*16, m.VertexCount())
	assert.Equal(t, 8*8, m.TriangleCount())
}

func TestTeapot(t *testing.T) {
	m := generate(t, Teapot, DefaultConstruct())
	s := m.Surfaces[0]
	assert.Equal(t, math.NewVec2(s.Vertices[0].Position.X, s.Vertices[0].Position.Y), s.Vertices[0].UV)

	c := DefaultConstruct()
	c.DynamicTeapot = true
	d := generate(t, Teapot, c)
	assert.Equal(t, 32*2*6*6, d.TriangleCount())
	assert.Equal(t, 32*6*6*6, d.VertexCount())

	// After the turn the teapot stands on the XZ plane with its lid up.
	b := d.Bounds()
	assert.InDelta(t, 0, b.Min.Y, 1e-4)
	assert.InDelta(t, 1.2, b.Max.Y, 1e-4)
	assert.InDelta(t, 0.8, b.Max.Z, 1e-3)
}

func TestWireCube(t *testing.T) {
	m := generate(t, WireCube, NewConstruct(1, 2, true, scene.ShadingGouraud))
	s := m.Surfaces[0]

	assert.Equal(t, scene.PrimitiveLines, s.Primitive)
	assert.Equal(t, 8, s.VertexCount())
	assert.Equal(t, 12, s.LineCount())
	assert.Equal(t, 0, m.TriangleCount())
	assert.False(t, m.Material.Lighting)

	// Every edge joins two corners that differ in exactly one axis.
	for i := 0; i < len(s.Indices); i += 2 {
		a := s.Vertices[s.Indices[i]].Position
		b := s.Vertices[s.Indices[i+1]].Position
		assert.InDelta(t, 4, a.Distance(b), 1e-6)
	}
}

func TestGenerateErrors(t *testing.T) {
	g := quietGenerator()
	assert.ErrorIs(t, g.Generate(nil, Cube, DefaultConstruct()), ErrNilMesh)

	m := scene.NewMesh("bad")
	c := DefaultConstruct()
	c.SegmentsVert = 0
	assert.ErrorIs(t, g.Generate(m, Sphere, c), ErrInvalidSegments)
	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.Surfaces)

	c = DefaultConstruct()
	c.RadiusInner = 0
	assert.ErrorIs(t, g.Generate(m, Sphere, c), ErrInvalidRadius)
	assert.Empty(t, m.Surfaces)
}

func TestWithoutShape(t *testing.T) {
	g := quietGenerator(WithoutShape(Teapot))
	assert.False(t, g.Has(Teapot))
	assert.NotContains(t, g.Registered(), Teapot)

	m := scene.NewMesh("none")
	err := g.Generate(m, Teapot, DefaultConstruct())
	assert.True(t, errors.Is(err, ErrNotRegistered))
	assert.Empty(t, m.Surfaces)

	require.NoError(t, g.Generate(m, Cube, DefaultConstruct()))
}

func TestWithShape(t *testing.T) {
	var got Construct
	g := quietGenerator(WithShape(Plane, func(ctx *Context) {
		got = ctx.Construct
		ctx.vertex(0, 0, 0, 0, 0)
		ctx.vertex(1, 0, 0, 1, 0)
		ctx.vertex(0, 0, -1, 0, 1)
		ctx.tri(0, 1, 2)
	}))

	m, err := g.NewMesh(Plane, DefaultConstruct())
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, 1, got.SegmentsVert)
	assert.Equal(t, scene.ShadingFlat, got.Shading)
	assert.InDelta(t, 1, m.Surfaces[0].Vertices[0].Normal.Y, 1e-6)
}

func TestGenerateAppendsSurfaces(t *testing.T) {
	g := quietGenerator()
	m := scene.NewMesh("multi")
	require.NoError(t, g.Generate(m, Cube, DefaultConstruct()))
	require.NoError(t, g.Generate(m, Octahedron, DefaultConstruct()))

	assert.Len(t, m.Surfaces, 2)
	assert.Equal(t, 12+8, m.TriangleCount())
	assert.Equal(t, [3]uint32{3, 4, 2}, m.Surfaces[1].Triangle(0))
}

func TestGenerateDeterministic(t *testing.T) {
	tests := []struct {
		kind Kind
		c    Construct
	}{
		{Cube, NewConstruct(3, 0.5, true, scene.ShadingFlat)},
		{Torus, DefaultConstruct()},
	}
	for _, tt := range tests {
		a := generate(t, tt.kind, tt.c)
		b := generate(t, tt.kind, tt.c)
		assert.Equal(t, a.Surfaces[0].Vertices, b.Surfaces[0].Vertices, tt.kind.String())
		assert.Equal(t, a.Surfaces[0].Indices, b.Surfaces[0].Indices, tt.kind.String())
	}
}

func TestDynamicTeapotKeepsOtherSurfaces(t *testing.T) {
	g := quietGenerator()
	m := scene.NewMesh("shared")
	require.NoError(t, g.Generate(m, Cone, DefaultConstruct()))

	before := make([]math.Vec3, 0, m.Surfaces[0].VertexCount())
	for _, v := range m.Surfaces[0].Vertices {
		before = append(before, v.Position)
	}

	c := DefaultConstruct()
	c.DynamicTeapot = true
	require.NoError(t, g.Generate(m, Teapot, c))
	require.Len(t, m.Surfaces, 2)

	for i, v := range m.Surfaces[0].Vertices {
		assert.Equal(t, before[i], v.Position, "cone vertex %d", i)
	}
	assert.Equal(t, math.NewVec3(0, 0.5, 0), m.Surfaces[0].Vertices[0].Position)

	// The teapot surface is still turned upright.
	tb := scene.NewMesh("teapot")
	tb.Surfaces = append(tb.Surfaces, m.Surfaces[1])
	assert.InDelta(t, 0, tb.Bounds().Min.Y, 1e-4)
	assert.InDelta(t, 1.2, tb.Bounds().Max.Y, 1e-4)
}

func BenchmarkGenerateSphere(b *testing.B) {
	g := quietGenerator()
	c := NewConstruct(32, 1, true, scene.ShadingGouraud)
	for i := 0; i < b.N; i++ {
		_ = g.Generate(scene.NewMesh("bench"), Sphere, c)
	}
}

func BenchmarkGenerateTorusKnot(b *testing.B) {
	g := quietGenerator()
	for i := 0; i < b.N; i++ {
		_ = g.Generate(scene.NewMesh("bench"), TorusKnot, DefaultConstruct())
	}
}
