package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/math"
)

// flatPatch is a unit square in the XY plane, rows along Y.
func flatPatch() [4][4]math.Vec3 {
	var a [4][4]math.Vec3
	for row := range a {
		for col := range a[row] {
			a[row][col] = math.NewVec3(float32(col)/3, float32(row)/3, 0)
		}
	}
	return a
}

func TestBezierPatchSingleSegment(t *testing.T) {
	m := quietGenerator().BezierPatch(flatPatch(), 1, true)
	require.Len(t, m.Surfaces, 1)
	s := m.Surfaces[0]

	assert.Equal(t, 6, s.VertexCount())
	assert.Equal(t, 2, s.TriangleCount())

	uvs := map[math.Vec2]bool{}
	for _, v := range s.Vertices {
		uvs[v.UV] = true
	}
	assert.Len(t, uvs, 4)
	for _, uv := range []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		assert.True(t, uvs[uv], "missing uv %v", uv)
	}
}

func TestBezierPatchFacing(t *testing.T) {
	for front, z := range map[bool]float32{true: -1, false: 1} {
		m := quietGenerator().BezierPatch(flatPatch(), 4, front)
		s := m.Surfaces[0]
		require.Equal(t, 96, s.VertexCount())
		require.Equal(t, 32, s.TriangleCount())
		for _, v := range s.Vertices {
			assert.InDelta(t, z, v.Normal.Z, 1e-5, "front=%v", front)
		}
	}
}

func TestBezierPatchCounts(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		m := quietGenerator().BezierPatch(flatPatch(), n, true)
		assert.Equal(t, 6*n*n, m.VertexCount())
		assert.Equal(t, 2*n*n, m.TriangleCount())
	}
}

func TestBezierPatchStaysInHull(t *testing.T) {
	m := quietGenerator().BezierPatch(flatPatch(), 5, true)
	b := m.Bounds()
	assert.True(t, b.Contains(math.NewVec3(0.5, 0.5, 0), 1e-6))
	assert.InDelta(t, 0, b.Min.X, 1e-6)
	assert.InDelta(t, 1, b.Max.X, 1e-6)
	assert.InDelta(t, 0, b.Min.Y, 1e-6)
	assert.InDelta(t, 1, b.Max.Y, 1e-6)
}

func TestBezierPatchInvalidSegments(t *testing.T) {
	m := quietGenerator().BezierPatch(flatPatch(), 0, true)
	assert.True(t, m.IsEmpty())
}

func TestBezierAppendsToSurface(t *testing.T) {
	m := quietGenerator().BezierPatch(flatPatch(), 1, true)
	ctx := &Context{Mesh: m, Surface: m.Surfaces[0]}
	ctx.bezierPatchFace(flatPatch(), 1, true)

	s := m.Surfaces[0]
	assert.Equal(t, 12, s.VertexCount())
	for _, idx := range s.Indices[6:] {
		assert.GreaterOrEqual(t, idx, uint32(6))
	}
}
