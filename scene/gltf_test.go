package scene

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/math"
)

func TestExportGLTF(t *testing.T) {
	m := NewMesh("quads")
	unitQuad(m)
	unitQuad(m).AddTexture(NewSolidTexture("tex.png", 10, 20, 30, 255))
	m.RecomputeNormals()
	m.RebuildIndexBuffer()

	doc, err := ExportGLTF(m)
	require.NoError(t, err)

	require.Len(t, doc.Meshes, 1)
	assert.Equal(t, "quads", doc.Meshes[0].Name)
	require.Len(t, doc.Meshes[0].Primitives, 2)
	assert.Len(t, doc.Materials, 2)
	assert.Len(t, doc.Textures, 1)
	assert.Len(t, doc.Images, 1)
	assert.Len(t, doc.Nodes, 1)

	prim := doc.Meshes[0].Primitives[0]
	assert.Equal(t, gltf.PrimitiveTriangles, prim.Mode)
	assert.Contains(t, prim.Attributes, "NORMAL")
	assert.Equal(t, 6, doc.Accessors[*prim.Indices].Count)
}

func TestExportGLTFLines(t *testing.T) {
	g := CreateGrid(2, 2)
	doc, err := ExportGLTF(g)
	require.NoError(t, err)

	prim := doc.Meshes[0].Primitives[0]
	assert.Equal(t, gltf.PrimitiveLines, prim.Mode)
	assert.NotContains(t, prim.Attributes, "NORMAL")
	assert.False(t, doc.Materials[0].DoubleSided)
}

func TestSaveLoadGLTFRoundTrip(t *testing.T) {
	m := NewMesh("roundtrip")
	unitQuad(m)
	m.SetShading(ShadingFlat)
	m.RecomputeNormals()
	m.RebuildIndexBuffer()

	path := filepath.Join(t.TempDir(), "quad.glb")
	require.NoError(t, SaveGLTF(m, path))

	back, err := LoadGLTF(path)
	require.NoError(t, err)

	assert.Equal(t, "roundtrip", back.Name)
	assert.Equal(t, m.VertexCount(), back.VertexCount())
	assert.Equal(t, m.TriangleCount(), back.TriangleCount())
	assert.Equal(t, m.Surface(0).Indices, back.Surface(0).Indices)
	assert.Equal(t, m.Bounds(), back.Bounds())
	assert.Equal(t, math.Vec3{Z: 1}, back.Surface(0).Vertices[2].Normal)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "nope.glb"))
	assert.Error(t, err)
}
