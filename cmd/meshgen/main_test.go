package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/config"
	"mesh-generator/generator"
	meshio "mesh-generator/io"
	"mesh-generator/scene"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeRamp(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 32)})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestShapesCommand(t *testing.T) {
	out, err := execute(t, "shapes")
	require.NoError(t, err)
	for _, k := range generator.Kinds() {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "small_crystal1")
}

func TestGenCommandGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.glb")
	_, err := execute(t, "gen", "cube", "-o", path)
	require.NoError(t, err)

	m, err := scene.LoadGLTF(path)
	require.NoError(t, err)
	assert.Equal(t, 24, m.VertexCount())
	assert.Equal(t, 12, m.TriangleCount())
}

func TestGenCommandTurnOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "plane.obj")
	_, err := execute(t, "gen", "plane", "--turn", "90,0,0", "-o", path)
	require.NoError(t, err)

	m, err := meshio.LoadOBJ(path)
	require.NoError(t, err)
	size := m.Bounds().Size()
	assert.InDelta(t, 1, size.X, 1e-4)
	assert.InDelta(t, 1, size.Y, 1e-4)
	assert.InDelta(t, 0, size.Z, 1e-4)
}

func TestGenCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "gen", "blob", "-o", filepath.Join(dir, "x.glb"))
	assert.ErrorIs(t, err, generator.ErrUnknownShape)

	_, err = execute(t, "gen", "cube", "-o", filepath.Join(dir, "x.stl"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = execute(t, "gen", "cube", "--turn", "1,2", "-o", filepath.Join(dir, "x.glb"))
	assert.Error(t, err)

	_, err = execute(t, "gen", "cube")
	assert.Error(t, err)
}

func TestSuperShapeCommandSeeded(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.obj")
	b := filepath.Join(dir, "b.obj")
	_, err := execute(t, "supershape", "random", "--seed", "7", "-s", "6", "-o", a)
	require.NoError(t, err)
	_, err = execute(t, "supershape", "random", "--seed", "7", "-s", "6", "-o", b)
	require.NoError(t, err)

	ma, err := meshio.LoadOBJ(a)
	require.NoError(t, err)
	mb, err := meshio.LoadOBJ(b)
	require.NoError(t, err)
	require.Equal(t, ma.VertexCount(), mb.VertexCount())
	for i, v := range ma.Surfaces[0].Vertices {
		assert.Equal(t, v.Position, mb.Surfaces[0].Vertices[i].Position)
	}
}

func TestHeightFieldCommand(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "ramp.png")
	writeRamp(t, img)

	out := filepath.Join(dir, "terrain.glb")
	_, err := execute(t, "heightfield", img, "-s", "4", "-o", out)
	require.NoError(t, err)

	m, err := scene.LoadGLTF(out)
	require.NoError(t, err)
	assert.Equal(t, 25, m.VertexCount())
	assert.Equal(t, 32, m.TriangleCount())
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	writeRamp(t, filepath.Join(dir, "ramp.png"))

	job := `
log_level = "error"
output_dir = "out"
workers = 2

[[mesh]]
name = "ball"
shape = "sphere"
segments = 6

[[mesh]]
name = "urchin"
supershape = "urchin1"
segments = 8
format = "obj"

[[mesh]]
name = "ground"
heightmap = "ramp.png"
segments = 2
format = "gltf"
`
	jobPath := filepath.Join(dir, "job.toml")
	require.NoError(t, os.WriteFile(jobPath, []byte(job), 0o644))

	_, err := execute(t, "batch", jobPath)
	require.NoError(t, err)

	for _, name := range []string{"ball.glb", "urchin.obj", "urchin.mtl", "ground.gltf"} {
		assert.FileExists(t, filepath.Join(dir, "out", name))
	}
}

func TestBatchStopsOnError(t *testing.T) {
	dir := t.TempDir()
	job := `{"workers": 1, "mesh": [{"name": "ground", "heightmap": "missing.png"}]}`
	jobPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(job), 0o644))

	_, err := execute(t, "batch", jobPath)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `mesh "ground"`), err.Error())
}

func TestViewSource(t *testing.T) {
	gen := generator.New()

	m, err := viewSource(gen, config.MeshSpec{}, "torus")
	require.NoError(t, err)
	assert.Equal(t, "torus", m.Name)

	m, err = viewSource(gen, config.MeshSpec{Segments: 4}, "urchin1")
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())

	_, err = viewSource(gen, config.MeshSpec{}, "nothing")
	assert.Error(t, err)
}
