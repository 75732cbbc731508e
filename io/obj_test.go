package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/generator"
	"mesh-generator/scene"
)

func generated(t *testing.T, kind generator.Kind) *scene.Mesh {
	t.Helper()
	m, err := generator.New().NewMesh(kind, generator.DefaultConstruct())
	require.NoError(t, err)
	return m
}

func TestWriteReadOBJ(t *testing.T) {
	src := generated(t, generator.Cube)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, src, ""))
	text := buf.String()
	assert.Equal(t, 24, strings.Count(text, "\nv "))
	assert.Equal(t, 12, strings.Count(text, "\nf "))
	assert.Contains(t, text, "s off")

	got, err := ReadOBJ(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, "cube", got.Name)
	require.Len(t, got.Surfaces, 1)
	assert.Equal(t, src.VertexCount(), got.VertexCount())
	assert.Equal(t, src.TriangleCount(), got.TriangleCount())
	assert.Equal(t, scene.ShadingFlat, got.Shading)

	// Vertices are renumbered in first-use order, so compare per corner.
	gs, ss := got.Surfaces[0], src.Surfaces[0]
	for i := 0; i < ss.TriangleCount(); i++ {
		gt, st := gs.Triangle(i), ss.Triangle(i)
		for k := range gt {
			g, s := gs.Vertices[gt[k]], ss.Vertices[st[k]]
			assert.InDelta(t, s.Position.Distance(g.Position), 0, 1e-5)
			assert.InDelta(t, s.Normal.Distance(g.Normal), 0, 1e-5)
			assert.InDelta(t, s.UV.Sub(g.UV).Length(), 0, 1e-5)
		}
	}
}

func TestWriteOBJLines(t *testing.T) {
	src := generated(t, generator.WireCube)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, src, ""))
	assert.Equal(t, 12, strings.Count(buf.String(), "\nl "))
	assert.NotContains(t, buf.String(), "\nvn ")

	got, err := ReadOBJ(&buf, "")
	require.NoError(t, err)
	require.Len(t, got.Surfaces, 1)
	assert.Equal(t, scene.PrimitiveLines, got.Surfaces[0].Primitive)
	assert.Equal(t, 12, got.LineCount())
	assert.Equal(t, 8, got.VertexCount())
}

func TestWriteOBJMultipleSurfaces(t *testing.T) {
	g := generator.New()
	m := scene.NewMesh("pair")
	require.NoError(t, g.Generate(m, generator.Octahedron, generator.DefaultConstruct()))
	require.NoError(t, g.Generate(m, generator.Tetrahedron, generator.DefaultConstruct()))

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m, ""))

	got, err := ReadOBJ(&buf, "")
	require.NoError(t, err)
	require.Len(t, got.Surfaces, 2)
	assert.Equal(t, 6, got.Surfaces[0].VertexCount())
	assert.Equal(t, 12, got.Surfaces[1].VertexCount())
	assert.Equal(t, [3]uint32{0, 1, 2}, got.Surfaces[0].Triangle(0))
	assert.Equal(t, [3]uint32{0, 2, 3}, got.Surfaces[0].Triangle(1))
	assert.Equal(t, [3]uint32{0, 1, 2}, got.Surfaces[1].Triangle(0))
}

func TestSaveLoadOBJWithMaterial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wire.obj")
	require.NoError(t, SaveOBJ(path, generated(t, generator.WireCube)))

	_, err := os.Stat(filepath.Join(dir, "wire.mtl"))
	require.NoError(t, err)

	got, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, "wirecube", got.Material.Name)
	assert.False(t, got.Material.Lighting)
	assert.Equal(t, float32(0), got.Material.Diffuse.R)
	assert.Equal(t, float32(1), got.Material.Ambient.G)
}

func TestReadOBJPolygonsAndNegativeIndices(t *testing.T) {
	src := `
o quad
v 0 0 0
v 1 0 0
v 1 0 -1
v 0 0 -1
vt 0 0
f -4 -3 -2 -1
`
	m, err := ReadOBJ(strings.NewReader(src), "")
	require.NoError(t, err)
	assert.Equal(t, "quad", m.Name)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, [3]uint32{0, 2, 3}, m.Surfaces[0].Triangle(1))

	// No normals in the file: they are derived from the winding.
	for _, v := range m.Surfaces[0].Vertices {
		assert.InDelta(t, 1, v.Normal.Y, 1e-6)
	}
}

func TestReadOBJErrors(t *testing.T) {
	_, err := ReadOBJ(strings.NewReader("v 0 0 0\n"), "")
	assert.Error(t, err)

	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"), "")
	assert.ErrorContains(t, err, "out of range")

	_, err = ReadOBJ(strings.NewReader("v 0 zero 0\n"), "")
	assert.ErrorContains(t, err, "line 1")

	_, err = LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
