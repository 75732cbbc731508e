package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/math"
	"mesh-generator/scene"
)

func superShape(t *testing.T, p Preset, segments int) *scene.Surface {
	t.Helper()
	values, err := SuperShapeValues(p, nil)
	require.NoError(t, err)
	m := scene.NewMesh(p.String())
	require.NoError(t, quietGenerator().SuperShape(m, values, segments))
	require.Len(t, m.Surfaces, 1)
	return m.Surfaces[0]
}

func TestSuperShapeCounts(t *testing.T) {
	for _, n := range []int{4, 10, 20, 40} {
		s := superShape(t, SmallCrystal1, n)
		assert.Equal(t, (n/2+1)*n, s.VertexCount(), "segments %d", n)
		assert.Equal(t, n/2*2*n, s.TriangleCount(), "segments %d", n)
	}
}

// weld maps every vertex to the first earlier vertex within eps.
func weld(s *scene.Surface, eps float32) []int {
	ids := make([]int, len(s.Vertices))
	for i, v := range s.Vertices {
		ids[i] = i
		for j := 0; j < i; j++ {
			if v.Position.Distance(s.Vertices[j].Position) < eps {
				ids[i] = ids[j]
				break
			}
		}
	}
	return ids
}

func TestSuperShapeClosedSurface(t *testing.T) {
	s := superShape(t, SmallCrystal1, DefaultSuperShapeSegments)
	ids := weld(s, 1e-4)

	type edge struct{ a, b int }
	edges := map[edge]int{}
	degenerate := 0
	for i := 0; i < s.TriangleCount(); i++ {
		tri := s.Triangle(i)
		a, b, c := ids[tri[0]], ids[tri[1]], ids[tri[2]]
		if a == b || b == c || c == a {
			degenerate++
			continue
		}
		edges[edge{a, b}]++
		edges[edge{b, c}]++
		edges[edge{c, a}]++
	}

	// Each pole ring collapses to a point, flattening one triangle per
	// column at either end.
	assert.Equal(t, 2*DefaultSuperShapeSegments, degenerate)
	for e, n := range edges {
		require.Equal(t, 1, n, "edge %v used twice in one direction", e)
		require.Equal(t, 1, edges[edge{e.b, e.a}], "edge %v has no twin", e)
	}
	assert.Zero(t, outwardFailures(s))
}

func TestSuperShapeQuarterTurnSymmetry(t *testing.T) {
	const n = DefaultSuperShapeSegments
	s := superShape(t, SmallCrystal1, n)

	for ring := 0; ring <= n/2; ring++ {
		for j := 0; j < n; j++ {
			p := s.Vertices[ring*n+j].Position
			q := s.Vertices[ring*n+(j+n/4)%n].Position
			assert.InDelta(t, -p.Y, q.X, 1e-4)
			assert.InDelta(t, p.X, q.Y, 1e-4)
			assert.InDelta(t, p.Z, q.Z, 1e-4)
		}
	}
}

func TestSuperShapeUVFromPosition(t *testing.T) {
	s := superShape(t, Cushion1, 12)
	for _, v := range s.Vertices {
		assert.Equal(t, math.NewVec2(v.Position.X, v.Position.Y), v.UV)
	}
}

func TestSuperShapeErrors(t *testing.T) {
	g := quietGenerator()
	values, err := SuperShapeValues(SmallStar1, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SuperShape(nil, values, 20), ErrNilMesh)

	m := scene.NewMesh("bad")
	assert.ErrorIs(t, g.SuperShape(m, values, 0), ErrInvalidSegments)
	assert.Empty(t, m.Surfaces)
}

func TestSuperShapePresets(t *testing.T) {
	assert.Len(t, Presets(), 10)
	assert.Equal(t, RandomShape, Presets()[9])

	v, err := SuperShapeValues(SmallCrystal2, nil)
	require.NoError(t, err)
	assert.Equal(t, [12]float32{8, 60, 100, 30, 1, 1, 12, 10, 10, 10, 1, 0.1}, v)

	_, err = SuperShapeValues(Preset(42), nil)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestSuperShapeRandomDeterministic(t *testing.T) {
	a, err := SuperShapeValues(RandomShape, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	b, err := SuperShapeValues(RandomShape, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for i, r := range randomRanges {
		assert.GreaterOrEqual(t, a[i], r[0])
		assert.LessOrEqual(t, a[i], r[1])
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]Preset{
		"small_crystal1": SmallCrystal1,
		"SmallStar3":     SmallStar3,
		"big-star1":      BigStar1,
		"URCHIN1":        Urchin1,
		"random":         RandomShape,
	}
	for name, want := range tests {
		got, err := ParsePreset(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParsePreset("blob")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
